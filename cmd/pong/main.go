//go:build sdl2

// Pong opens a full HD window and reports every mouse click on stdout.
package main

import (
	"fmt"
	"log"

	"github.com/ushitora-anqou/simple/event"
	"github.com/ushitora-anqou/simple/util"
	"github.com/ushitora-anqou/simple/window"
)

const (
	WIDTH  = 1920
	HEIGHT = 1080
)

func describeMouse(e event.Mouse) string {
	state := "up"
	if e.IsDown {
		state = "down"
	}
	return fmt.Sprintf("Mouse %d %d %s", e.X, e.Y, state)
}

func run() error {
	util.EnableTraceFromEnv("SIMPLE_TRACE")

	wind, err := window.Open("November", WIDTH, HEIGHT)
	if err != nil {
		return err
	}
	defer wind.Close()

	for wind.NextFrame() {
		for ev := wind.NextEvent(); ev != nil; ev = wind.NextEvent() {
			switch e := ev.(type) {
			case event.Mouse:
				fmt.Println(describeMouse(e))
			case event.Keyboard:
				if e.Key == event.KEY_ESCAPE {
					wind.Quit()
				}
			}
		}
	}
	return nil
}

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

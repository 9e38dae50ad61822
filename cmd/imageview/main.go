//go:build sdl2

// Imageview draws an image with a slowly cycling tint.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/ushitora-anqou/simple/event"
	"github.com/ushitora-anqou/simple/util"
	"github.com/ushitora-anqou/simple/window"
)

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return fmt.Errorf("Usage: %s PATH", os.Args[0])
	}
	util.EnableTraceFromEnv("SIMPLE_TRACE")
	stop, err := util.StartCPUProfileFromEnv("SIMPLE_CPUPROFILE")
	if err != nil {
		return err
	}
	defer stop()

	wind, err := window.Open("Image Viewer", 640, 480)
	if err != nil {
		return err
	}
	defer wind.Close()

	pic, err := wind.LoadImage(flag.Arg(0))
	if err != nil {
		return err
	}

	frame := 0
	for wind.NextFrame() {
		for wind.HasEvent() {
			if e, ok := wind.NextEvent().(event.Keyboard); ok && e.Key == event.KEY_ESCAPE {
				wind.Quit()
			}
		}
		wind.Clear()

		c := uint8(math.Abs(math.Sin(float64(frame)/150.0)) * 255)
		wind.SetColor(100+c/3, c, 255-c, 255)
		wind.DrawImage(pic, 0, 0)
		frame++
	}
	return nil
}

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

//go:build sdl2

// Fontdemo prints text with the built-in bitmap font, or with a reference
// image given as FONT-PATH CHARS.
package main

import (
	"flag"
	"log"

	"golang.org/x/image/colornames"

	"github.com/ushitora-anqou/simple/event"
	"github.com/ushitora-anqou/simple/util"
	"github.com/ushitora-anqou/simple/window"
)

func run() error {
	flag.Parse()
	util.EnableTraceFromEnv("SIMPLE_TRACE")

	wind, err := window.Open("Image Font Demo", 640, 480)
	if err != nil {
		return err
	}
	defer wind.Close()

	if flag.NArg() >= 2 {
		font, err := wind.LoadFont(flag.Arg(0), flag.Arg(1))
		if err != nil {
			return err
		}
		wind.SetFont(font)
	}

	for wind.NextFrame() {
		for wind.HasEvent() {
			if e, ok := wind.NextEvent().(event.Keyboard); ok && e.Key == event.KEY_ESCAPE {
				wind.Quit()
			}
		}
		wind.ClearToColor(32, 64, 32)

		wind.SetColorRGBA(colornames.White)
		wind.Print("Hello world!", 32, 32)
		wind.Print("This example demonstrates ImageFont rendering :)", 32, 64)
		wind.Print("You can even write symbols: !@#$%^&*()", 32, 96)

		wind.SetColorRGBA(colornames.Cyan)
		wind.Print("16777216 possible rendering colors!", 32, 128)
	}
	return nil
}

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

//go:build sdl2

// Squares bounces colored squares around the window. Click to add one.
package main

import (
	"log"
	"math"
	"math/rand"

	"github.com/ushitora-anqou/simple/event"
	"github.com/ushitora-anqou/simple/shape"
	"github.com/ushitora-anqou/simple/util"
	"github.com/ushitora-anqou/simple/window"
)

const (
	WIDTH       = 1280
	HEIGHT      = 720
	SQUARE_SIZE = 64
	SPEED       = 8.0
)

type Square struct {
	x, y, speedX, speedY float64
	r, g, b              uint8
}

func NewSquareAt(x, y float64) *Square {
	angle := rand.Float64() * 2 * math.Pi
	return &Square{
		x:      x,
		y:      y,
		speedX: math.Sin(angle) * SPEED,
		speedY: math.Cos(angle) * SPEED,
		r:      uint8(rand.Intn(256)),
		g:      uint8(rand.Intn(256)),
		b:      uint8(rand.Intn(256)),
	}
}

func NewSquare() *Square {
	return NewSquareAt(rand.Float64()*WIDTH, rand.Float64()*HEIGHT)
}

func (s *Square) Update() {
	s.x += s.speedX
	s.y += s.speedY
	if s.x < 0 || s.x > WIDTH {
		s.speedX = -s.speedX
	}
	if s.y < 0 || s.y > HEIGHT {
		s.speedY = -s.speedY
	}
}

func (s *Square) Draw(wind *window.Window) {
	wind.SetColor(s.r, s.g, s.b, 0xff)
	wind.FillRect(shape.NewRect(int32(s.x), int32(s.y), SQUARE_SIZE, SQUARE_SIZE))
}

func run() error {
	util.EnableTraceFromEnv("SIMPLE_TRACE")
	stop, err := util.StartCPUProfileFromEnv("SIMPLE_CPUPROFILE")
	if err != nil {
		return err
	}
	defer stop()

	wind, err := window.Open("Squares", WIDTH, HEIGHT)
	if err != nil {
		return err
	}
	defer wind.Close()

	squares := []*Square{NewSquare(), NewSquare(), NewSquare()}
	for wind.NextFrame() {
		for wind.HasEvent() {
			switch e := wind.NextEvent().(type) {
			case event.Mouse:
				if e.IsDown {
					squares = append(squares, NewSquareAt(float64(e.X), float64(e.Y)))
				}
			case event.Keyboard:
				if e.Key == event.KEY_ESCAPE {
					wind.Quit()
				}
			}
		}

		wind.Clear()
		for _, s := range squares {
			s.Update()
			s.Draw(wind)
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

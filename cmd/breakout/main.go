//go:build sdl2

// Breakout keeps two balls in play with a paddle that follows the mouse.
package main

import (
	"log"
	"math"
	"math/rand"

	"golang.org/x/image/colornames"

	"github.com/ushitora-anqou/simple/event"
	"github.com/ushitora-anqou/simple/shape"
	"github.com/ushitora-anqou/simple/util"
	"github.com/ushitora-anqou/simple/window"
)

const (
	SCREEN_WIDTH  = 1024
	SCREEN_HEIGHT = 768
	BALL_SIZE     = 24
	BALL_SPEED    = 9
)

type Ball struct {
	rect  shape.Rect
	speed int32
	angle float64
}

func NewBall(x, y int32) *Ball {
	return &Ball{
		rect:  shape.NewRect(x-BALL_SIZE/2, y-BALL_SIZE/2, BALL_SIZE, BALL_SIZE),
		speed: BALL_SPEED,
		angle: rand.Float64() * 2 * math.Pi,
	}
}

func (b *Ball) Update() {
	bounceX := b.rect.X < 0 || b.rect.X+b.rect.W > SCREEN_WIDTH
	bounceY := b.rect.Y < 0 || b.rect.Y+b.rect.H > SCREEN_HEIGHT
	b.Bounce(bounceX, bounceY)
	b.clampOnScreen()

	b.rect.X += int32(float64(b.speed) * math.Sin(b.angle))
	b.rect.Y += int32(float64(b.speed) * math.Cos(b.angle))
}

// clampOnScreen keeps angle fuzzing from trapping the ball outside the window.
func (b *Ball) clampOnScreen() {
	if b.rect.X < 0 {
		b.rect.X = 0
	}
	if b.rect.X+b.rect.W > SCREEN_WIDTH {
		b.rect.X = SCREEN_WIDTH - b.rect.W
	}
	if b.rect.Y < 0 {
		b.rect.Y = 0
	}
	if b.rect.Y+b.rect.H > SCREEN_HEIGHT {
		b.rect.Y = SCREEN_HEIGHT - b.rect.H
	}
}

func (b *Ball) Bounce(bounceX, bounceY bool) {
	if !bounceX && !bounceY {
		return
	}
	xVel := math.Sin(b.angle)
	yVel := math.Cos(b.angle)
	if bounceX {
		xVel = -xVel
	}
	if bounceY {
		yVel = -yVel
	}
	b.angle = math.Atan2(xVel, yVel) + float64(rand.Intn(256))/750.0
}

func (b *Ball) Draw(wind *window.Window) {
	wind.SetColorRGBA(colornames.Yellow)
	wind.FillRect(b.rect)
}

func run() error {
	util.EnableTraceFromEnv("SIMPLE_TRACE")
	stop, err := util.StartCPUProfileFromEnv("SIMPLE_CPUPROFILE")
	if err != nil {
		return err
	}
	defer stop()

	wind, err := window.Open("Breakout", SCREEN_WIDTH, SCREEN_HEIGHT)
	if err != nil {
		return err
	}
	defer wind.Close()

	balls := []*Ball{
		NewBall(SCREEN_WIDTH*2/3, SCREEN_HEIGHT/2),
		NewBall(SCREEN_WIDTH/3, SCREEN_HEIGHT/2),
	}
	player := shape.NewRect(0, 700, 100, 8)

	for wind.NextFrame() {
		for wind.HasEvent() {
			if e, ok := wind.NextEvent().(event.Keyboard); ok && e.Key == event.KEY_ESCAPE {
				wind.Quit()
			}
		}
		wind.Clear()

		// Glide the paddle towards the cursor.
		mouseX, _ := wind.MousePosition()
		player.X += (mouseX - player.W/2 - player.X) / 3

		for _, ball := range balls {
			ball.Update()
			ball.Draw(wind)
			if ball.rect.HasIntersection(player) {
				ball.Bounce(false, true)
				ball.rect.Y = player.Y - ball.rect.H
			}
		}

		wind.SetColorRGBA(colornames.White)
		wind.FillRect(player)
	}
	return nil
}

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

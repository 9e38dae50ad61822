//go:build sdl2

// Mouseaccuracy counts how many times the moving square is clicked before
// time runs out.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/image/colornames"

	"github.com/ushitora-anqou/simple/event"
	"github.com/ushitora-anqou/simple/shape"
	"github.com/ushitora-anqou/simple/util"
	"github.com/ushitora-anqou/simple/window"
)

const (
	WIDTH          = 640
	HEIGHT         = 480
	RECT_SIZE      = 32
	COUNTDOWN_TIME = 1500 * time.Millisecond
	GAME_TIME      = 8000 * time.Millisecond
)

func randomPoint() shape.Point {
	return shape.NewPoint(
		rand.Int31n(WIDTH-RECT_SIZE),
		rand.Int31n(HEIGHT-RECT_SIZE),
	)
}

type Game struct {
	successes, misses int
	target            shape.Point
	rect              shape.Rect
	start             time.Time
}

func NewGame() *Game {
	target := randomPoint()
	return &Game{
		target: target,
		rect:   shape.NewRect(target.X, target.Y, RECT_SIZE, RECT_SIZE),
		start:  time.Now(),
	}
}

func (g *Game) playing(elapsed time.Duration) bool {
	return elapsed > COUNTDOWN_TIME && elapsed < COUNTDOWN_TIME+GAME_TIME
}

func (g *Game) Click(e event.Mouse, elapsed time.Duration) {
	if !e.IsDown || e.Button != event.MOUSE_LEFT || !g.playing(elapsed) {
		return
	}
	if g.rect.ContainsPoint(shape.NewPoint(e.X, e.Y)) {
		g.successes++
	} else {
		g.misses++
	}
	g.target = randomPoint()
}

func (g *Game) Draw(wind *window.Window, elapsed time.Duration) {
	wind.ClearToColor(130, 130, 130)

	// Move a fifth of the way towards the target every frame.
	center := g.rect.Center()
	g.rect = shape.FromCenter(
		shape.NewPoint(
			center.X+(g.target.X-center.X)/5,
			center.Y+(g.target.Y-center.Y)/5,
		),
		RECT_SIZE,
		RECT_SIZE,
	)

	switch {
	case elapsed < COUNTDOWN_TIME:
		wind.SetColorRGBA(colornames.White)
		wind.Print("Get Ready!", WIDTH/2-50, HEIGHT/2-30)
		wind.Print(fmt.Sprint(3-int(elapsed*2/time.Second)), WIDTH/2-10, HEIGHT/2)

	case g.playing(elapsed):
		wind.SetColorRGBA(colornames.White)
		wind.FillRect(g.rect)
		wind.SetColorRGBA(colornames.Black)
		wind.DrawRect(g.rect)
		wind.SetColorRGBA(colornames.White)
		wind.Print(fmt.Sprintf("Successes: %d  Misses: %d", g.successes, g.misses), 15, 15)
		remaining := COUNTDOWN_TIME + GAME_TIME - elapsed
		wind.Print(fmt.Sprintf("Seconds Remaining: %d", int(remaining/time.Second)), 15, HEIGHT-25)

	default:
		wind.SetColorRGBA(colornames.White)
		wind.Print("Time's up!", WIDTH/2-40, HEIGHT/2-30)
		wind.Print(fmt.Sprintf("You had %d accurate clicks and %d misses", g.successes, g.misses), WIDTH/5, HEIGHT/2)
	}
}

func run() error {
	util.EnableTraceFromEnv("SIMPLE_TRACE")

	wind, err := window.Open("Mouse Accuracy Game", WIDTH, HEIGHT)
	if err != nil {
		return err
	}
	defer wind.Close()

	game := NewGame()
	for wind.NextFrame() {
		elapsed := time.Since(game.start)
		for wind.HasEvent() {
			switch e := wind.NextEvent().(type) {
			case event.Mouse:
				game.Click(e, elapsed)
			case event.Keyboard:
				if e.Key == event.KEY_ESCAPE {
					wind.Quit()
				}
			}
		}
		game.Draw(wind, elapsed)
	}
	return nil
}

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

// Package window provides Window, a frame loop with an event queue, primitive
// drawing, image blitting and bitmap font text on top of a native Backend.
//
// A typical program looks like
//
//	wind, err := window.Open("demo", 640, 480)
//	if err != nil {
//		return err
//	}
//	defer wind.Close()
//	for wind.NextFrame() {
//		for wind.HasEvent() {
//			switch e := wind.NextEvent().(type) {
//			case event.Mouse:
//				...
//			}
//		}
//		wind.Clear()
//		wind.Print("hello", 10, 10)
//	}
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/ushitora-anqou/simple/bitfont"
	"github.com/ushitora-anqou/simple/constant"
	"github.com/ushitora-anqou/simple/event"
	"github.com/ushitora-anqou/simple/util"
)

var (
	// ErrAlreadyOpen is returned when a Window is created while another one
	// is still open. The native backend is process-global.
	ErrAlreadyOpen = errors.New("window: another window is already open")

	// ErrClosed is returned by loaders called after Close.
	ErrClosed = errors.New("window: window is closed")
)

// instance guards the process-global backend.
var instance = util.NewAtomicBool(false)

type Config struct {
	Title         string
	Width, Height int32
	FrameRate     uint32
}

func DefaultConfig() Config {
	return Config{
		Title:     constant.WINDOW_TITLE,
		Width:     constant.WINDOW_WIDTH,
		Height:    constant.WINDOW_HEIGHT,
		FrameRate: constant.FRAME_RATE,
	}
}

func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.FrameRate == 0 {
		cfg.FrameRate = def.FrameRate
	}
	return cfg
}

// Font is a bitmap font: an atlas image plus the rectangle of every glyph in
// it. It does not change after loading.
type Font struct {
	atlas  *Image
	glyphs bitfont.GlyphMap
}

func (f *Font) Glyphs() bitfont.GlyphMap {
	return f.glyphs
}

type Window struct {
	backend  Backend
	running  bool
	closed   bool
	queue    *event.Queue
	sync     *TimeSynchronizer
	fg       color.RGBA
	font     *Font
	textures []Texture
}

// New wraps an already initialised backend. The Window takes ownership of
// backend and destroys it on Close, or right away if New fails after the
// instance check.
func New(backend Backend, cfg Config) (*Window, error) {
	if !instance.CompareAndSwap(false, true) {
		return nil, ErrAlreadyOpen
	}
	wind, err := newWindow(backend, cfg)
	if err != nil {
		backend.Destroy()
		instance.Set(false)
		return nil, err
	}
	return wind, nil
}

func newWindow(backend Backend, cfg Config) (*Window, error) {
	cfg = cfg.withDefaults()
	wind := &Window{
		backend: backend,
		running: true,
		queue:   event.NewQueue(),
		sync:    NewTimeSynchronizer(backend, cfg.FrameRate),
	}

	atlas, chars, err := bitfont.DefaultAtlas(constant.FONT_SIZE)
	if err != nil {
		return nil, err
	}
	img, err := wind.createImage(atlas)
	if err != nil {
		return nil, fmt.Errorf("failed to upload default font: %w", err)
	}
	wind.font = &Font{atlas: img, glyphs: bitfont.Build(atlas, chars)}
	util.Trace("window: default font has %d glyphs", len(wind.font.glyphs))

	wind.SetColor(0xff, 0xff, 0xff, 0xff)
	wind.Clear()
	return wind, nil
}

// NextFrame presents what was drawn since the last call, waits out the rest
// of the frame budget and collects pending input. It returns false, without
// doing anything, once the Window has stopped running.
func (wind *Window) NextFrame() bool {
	if !wind.running {
		return false
	}
	wind.backend.Present()
	wind.sync.MaySleep()
	wind.handleEvents()
	return true
}

// handleEvents drains every pending native event. Quit stops the Window
// instead of being queued.
func (wind *Window) handleEvents() {
	for {
		ev, pending := wind.backend.PollEvent()
		if !pending {
			return
		}
		switch ev.(type) {
		case nil:
		case event.Quit:
			util.Trace("window: quit requested")
			wind.Quit()
		default:
			wind.queue.Push(ev)
		}
	}
}

// Quit stops the frame loop. The Window stays usable for drawing until Close.
func (wind *Window) Quit() {
	wind.running = false
}

func (wind *Window) Running() bool {
	return wind.running
}

// Close releases every texture and the backend. Calling it again does nothing.
func (wind *Window) Close() error {
	if wind.closed {
		return nil
	}
	wind.closed = true
	wind.running = false

	for _, tex := range wind.textures {
		tex.Destroy()
	}
	util.Trace("window: released %d textures", len(wind.textures))
	wind.textures = nil
	wind.font = nil

	wind.backend.Destroy()
	instance.Set(false)
	return nil
}

func (wind *Window) HasEvent() bool {
	return !wind.queue.Empty()
}

// NextEvent removes and returns the oldest queued event, or nil if there is
// none.
func (wind *Window) NextEvent() event.Event {
	ev, _ := wind.queue.Pop()
	return ev
}

func (wind *Window) IsKeyDown(key event.Key) bool {
	return wind.backend.IsKeyDown(key)
}

func (wind *Window) IsMouseButtonDown(button event.MouseButton) bool {
	return wind.backend.IsMouseButtonDown(button)
}

func (wind *Window) MousePosition() (x, y int32) {
	return wind.backend.MousePosition()
}

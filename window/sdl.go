//go:build sdl2

package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/simple/event"
	"github.com/ushitora-anqou/simple/shape"
	"github.com/ushitora-anqou/simple/util"
)

// Open initialises SDL and creates a window of the given size.
func Open(title string, width, height int32) (*Window, error) {
	cfg := DefaultConfig()
	cfg.Title = title
	cfg.Width = width
	cfg.Height = height
	return OpenConfig(cfg)
}

func OpenConfig(cfg Config) (*Window, error) {
	// Take the instance before touching SDL: a second backend would tear
	// down the first one's SDL state on failure.
	if !instance.CompareAndSwap(false, true) {
		return nil, ErrAlreadyOpen
	}
	backend, err := NewSDLBackend(cfg.withDefaults())
	if err != nil {
		instance.Set(false)
		return nil, err
	}
	wind, err := newWindow(backend, cfg)
	if err != nil {
		backend.Destroy()
		instance.Set(false)
		return nil, err
	}
	return wind, nil
}

type SDLBackend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
}

func NewSDLBackend(cfg Config) (*SDLBackend, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to initialise SDL: %w", err)
	}

	window, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		cfg.Width,
		cfg.Height,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	if err := renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		util.Trace("sdl: SetDrawBlendMode: %v", err)
	}

	return &SDLBackend{
		window:   window,
		renderer: renderer,
	}, nil
}

func (b *SDLBackend) GetTicks() uint32 {
	return sdl.GetTicks()
}

func (b *SDLBackend) Delay(ms uint32) {
	sdl.Delay(ms)
}

func (b *SDLBackend) PollEvent() (event.Event, bool) {
	native := sdl.PollEvent()
	if native == nil {
		return nil, false
	}
	return translateEvent(native), true
}

// translateEvent maps an SDL event to its portable equivalent, or nil if there
// is none.
func translateEvent(native sdl.Event) event.Event {
	return translate(toNativeEvent(native))
}

func toNativeEvent(native sdl.Event) nativeEvent {
	switch e := native.(type) {
	case *sdl.QuitEvent:
		return nativeEvent{kind: nativeQuit}

	case *sdl.KeyboardEvent:
		n := nativeEvent{scancode: uint32(e.Keysym.Scancode)}
		switch e.Type {
		case sdl.KEYDOWN:
			n.kind = nativeKeyDown
		case sdl.KEYUP:
			n.kind = nativeKeyUp
		}
		return n

	case *sdl.MouseButtonEvent:
		n := nativeEvent{button: e.Button, x: e.X, y: e.Y}
		switch e.Type {
		case sdl.MOUSEBUTTONDOWN:
			n.kind = nativeButtonDown
		case sdl.MOUSEBUTTONUP:
			n.kind = nativeButtonUp
		}
		return n
	}
	return nativeEvent{kind: nativeOther}
}

func (b *SDLBackend) SetDrawColor(c color.RGBA) {
	if b.renderer == nil {
		return
	}
	b.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (b *SDLBackend) Clear() {
	if b.renderer == nil {
		return
	}
	b.renderer.Clear()
}

func (b *SDLBackend) DrawRect(r shape.Rect) {
	if b.renderer == nil {
		return
	}
	b.renderer.DrawRect(toSDLRect(r))
}

func (b *SDLBackend) FillRect(r shape.Rect) {
	if b.renderer == nil {
		return
	}
	b.renderer.FillRect(toSDLRect(r))
}

func (b *SDLBackend) DrawPoint(p shape.Point) {
	if b.renderer == nil {
		return
	}
	b.renderer.DrawPoint(p.X, p.Y)
}

func (b *SDLBackend) DrawLines(points []shape.Point) {
	if b.renderer == nil {
		return
	}
	sdlPoints := make([]sdl.Point, len(points))
	for i, p := range points {
		sdlPoints[i] = sdl.Point{X: p.X, Y: p.Y}
	}
	b.renderer.DrawLines(sdlPoints)
}

func (b *SDLBackend) Present() {
	if b.renderer == nil {
		return
	}
	b.renderer.Present()
}

func (b *SDLBackend) CreateTexture(img *image.NRGBA) (Texture, error) {
	if b.renderer == nil {
		return nil, ErrClosed
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// ABGR8888 is R, G, B, A in memory on little-endian hosts, the layout
	// of image.NRGBA.
	texture, err := b.renderer.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(width),
		int32(height),
	)
	if err != nil {
		return nil, err
	}

	pixels, pitch, err := texture.Lock(nil)
	if err != nil {
		texture.Destroy()
		return nil, err
	}
	for row := 0; row < height; row++ {
		src := img.Pix[img.PixOffset(bounds.Min.X, bounds.Min.Y+row):]
		copy(pixels[row*pitch:row*pitch+width*4], src[:width*4])
	}
	texture.Unlock()

	if err := texture.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		texture.Destroy()
		return nil, err
	}
	return &sdlTexture{texture: texture}, nil
}

func (b *SDLBackend) Copy(tex Texture, src, dst shape.Rect) {
	if b.renderer == nil {
		return
	}
	t, ok := tex.(*sdlTexture)
	if !ok || t.texture == nil {
		return
	}
	if err := b.renderer.Copy(t.texture, toSDLRect(src), toSDLRect(dst)); err != nil {
		util.Trace("sdl: Copy: %v", err)
	}
}

func (b *SDLBackend) IsKeyDown(key event.Key) bool {
	state := sdl.GetKeyboardState()
	return int(key) < len(state) && state[key] != 0
}

func (b *SDLBackend) IsMouseButtonDown(button event.MouseButton) bool {
	if button == 0 {
		return false
	}
	_, _, state := sdl.GetMouseState()
	return state&(1<<(uint32(button)-1)) != 0
}

func (b *SDLBackend) MousePosition() (x, y int32) {
	x, y, _ = sdl.GetMouseState()
	return x, y
}

func (b *SDLBackend) Destroy() {
	if b.renderer != nil {
		b.renderer.Destroy()
		b.renderer = nil
	}
	if b.window != nil {
		b.window.Destroy()
		b.window = nil
		sdl.Quit()
	}
}

type sdlTexture struct {
	texture *sdl.Texture
}

func (t *sdlTexture) SetColorMod(c color.RGBA) {
	if t.texture == nil {
		return
	}
	t.texture.SetColorMod(c.R, c.G, c.B)
	t.texture.SetAlphaMod(c.A)
}

func (t *sdlTexture) Destroy() {
	if t.texture != nil {
		t.texture.Destroy()
		t.texture = nil
	}
}

func toSDLRect(r shape.Rect) *sdl.Rect {
	return &sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

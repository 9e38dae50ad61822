package window

import (
	"image"
	"image/color"

	"github.com/ushitora-anqou/simple/event"
	"github.com/ushitora-anqou/simple/shape"
)

// Backend is the native drawing, input and timing surface a Window drives.
// The SDL implementation lives in sdl.go.
type Backend interface {
	Clock

	// PollEvent takes the next pending native event without blocking.
	// pending is false once nothing is left. ev is nil when the native event
	// has no portable equivalent.
	PollEvent() (ev event.Event, pending bool)

	SetDrawColor(c color.RGBA)
	Clear()
	DrawRect(r shape.Rect)
	FillRect(r shape.Rect)
	DrawPoint(p shape.Point)
	DrawLines(points []shape.Point)
	Present()

	// CreateTexture uploads img as a blendable texture.
	CreateTexture(img *image.NRGBA) (Texture, error)
	Copy(tex Texture, src, dst shape.Rect)

	IsKeyDown(key event.Key) bool
	IsMouseButtonDown(button event.MouseButton) bool
	MousePosition() (x, y int32)

	// Destroy releases the native window and renderer.
	Destroy()
}

type Texture interface {
	SetColorMod(c color.RGBA)
	Destroy()
}

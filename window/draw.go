package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ushitora-anqou/simple/bitfont"
	"github.com/ushitora-anqou/simple/shape"
)

// SetColor sets the foreground color used by every following draw call.
// Images and text are tinted with it.
func (wind *Window) SetColor(r, g, b, a uint8) {
	wind.fg = color.RGBA{r, g, b, a}
	wind.backend.SetDrawColor(wind.fg)
}

func (wind *Window) SetColorRGBA(c color.RGBA) {
	wind.SetColor(c.R, c.G, c.B, c.A)
}

func (wind *Window) Color() color.RGBA {
	return wind.fg
}

// Clear fills the screen with opaque black.
func (wind *Window) Clear() {
	wind.ClearToColor(0, 0, 0)
}

func (wind *Window) ClearToColor(r, g, b uint8) {
	wind.backend.SetDrawColor(color.RGBA{r, g, b, 0xff})
	wind.backend.Clear()
	wind.backend.SetDrawColor(wind.fg)
}

func (wind *Window) DrawRect(r shape.Rect) {
	wind.backend.DrawRect(r)
}

func (wind *Window) FillRect(r shape.Rect) {
	wind.backend.FillRect(r)
}

func (wind *Window) DrawPoint(p shape.Point) {
	wind.backend.DrawPoint(p)
}

// DrawPolygon draws the closed outline through every point of polygon.
func (wind *Window) DrawPolygon(polygon shape.Polygon) {
	switch len(polygon) {
	case 0:
		return
	case 1:
		wind.backend.DrawPoint(polygon[0])
		return
	}
	points := make([]shape.Point, 0, len(polygon)+1)
	points = append(points, polygon...)
	points = append(points, polygon[0])
	wind.backend.DrawLines(points)
}

func (wind *Window) DrawImage(img *Image, x, y int32) {
	img.texture.SetColorMod(wind.fg)
	wind.backend.Copy(
		img.texture,
		shape.NewRect(0, 0, img.width, img.height),
		shape.NewRect(x, y, img.width, img.height),
	)
}

// Print draws text with the current font, starting at (x, y). Characters the
// font has no glyph for are skipped and take no space.
func (wind *Window) Print(text string, x, y int32) {
	if wind.font == nil {
		return
	}
	atlas := wind.font.atlas
	cursor := x
	for _, r := range text {
		glyph, ok := wind.font.glyphs[r]
		if !ok {
			continue
		}
		atlas.texture.SetColorMod(wind.fg)
		wind.backend.Copy(atlas.texture, glyph, shape.NewRect(cursor, y, glyph.W, glyph.H))
		cursor += glyph.W
	}
}

// TextSize returns the extent Print would cover for text.
func (wind *Window) TextSize(text string) (width, height int32) {
	if wind.font == nil {
		return 0, 0
	}
	return wind.font.glyphs.Width(text), wind.font.atlas.height
}

// SetFont selects the font used by Print. A nil font keeps the current one.
func (wind *Window) SetFont(f *Font) {
	if f != nil {
		wind.font = f
	}
}

func (wind *Window) Font() *Font {
	return wind.font
}

func (wind *Window) LoadImage(path string) (*Image, error) {
	if wind.closed {
		return nil, ErrClosed
	}
	src, err := readImageFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return wind.createImage(src)
}

func (wind *Window) LoadImageBytes(data []byte) (*Image, error) {
	if wind.closed {
		return nil, ErrClosed
	}
	src, err := decodeImage(data)
	if err != nil {
		return nil, err
	}
	return wind.createImage(src)
}

// LoadFont reads a font reference image from path. chars lists, left to
// right, the characters the image depicts.
func (wind *Window) LoadFont(path, chars string) (*Font, error) {
	if wind.closed {
		return nil, ErrClosed
	}
	src, err := readImageFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", path, err)
	}
	return wind.createFont(src, chars)
}

func (wind *Window) LoadFontBytes(data []byte, chars string) (*Font, error) {
	if wind.closed {
		return nil, ErrClosed
	}
	src, err := decodeImage(data)
	if err != nil {
		return nil, err
	}
	return wind.createFont(src, chars)
}

func (wind *Window) createFont(src *image.NRGBA, chars string) (*Font, error) {
	atlas, err := wind.createImage(src)
	if err != nil {
		return nil, err
	}
	return &Font{atlas: atlas, glyphs: bitfont.Build(src, chars)}, nil
}

func (wind *Window) createImage(src *image.NRGBA) (*Image, error) {
	tex, err := wind.backend.CreateTexture(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}
	wind.textures = append(wind.textures, tex)
	bounds := src.Bounds()
	return &Image{
		texture: tex,
		width:   int32(bounds.Dx()),
		height:  int32(bounds.Dy()),
	}, nil
}

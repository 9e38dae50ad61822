package bitfont

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ushitora-anqou/simple/constant"
)

// trackColor marks glyph columns in the top row of a generated atlas. It is
// fully transparent so the track never shows up on screen, and it differs
// from the zero border color only in its color channels.
var trackColor = color.NRGBA{0xff, 0xff, 0xff, 0x00}

// DefaultChars lists the characters of the built-in atlas: printable ASCII.
func DefaultChars() string {
	runes := make([]rune, 0, constant.FONT_LAST_CHAR-constant.FONT_FIRST_CHAR+1)
	for r := rune(constant.FONT_FIRST_CHAR); r <= constant.FONT_LAST_CHAR; r++ {
		runes = append(runes, r)
	}
	return string(runes)
}

// DefaultAtlas rasterises Go Mono at size pixels into a white-on-transparent
// reference image laid out for Build, and returns it with its character string.
func DefaultAtlas(size float64) (*image.NRGBA, string, error) {
	parsed, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, "", fmt.Errorf("bitfont: failed to parse Go Mono: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, "", fmt.Errorf("bitfont: failed to create face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	glyphHeight := (metrics.Ascent + metrics.Descent).Ceil()
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, "", fmt.Errorf("bitfont: Go Mono has no glyph for 'M'")
	}
	cell := advance.Ceil()

	chars := DefaultChars()
	runes := []rune(chars)

	// Row 0 is the boundary track, glyphs sit below it. Column 0 and one
	// column after every cell stay at the zero (border) color.
	atlas := image.NewNRGBA(image.Rect(0, 0, 1+len(runes)*(cell+1), 1+glyphHeight))
	for i, r := range runes {
		x := 1 + i*(cell+1)
		for col := x; col < x+cell; col++ {
			atlas.SetNRGBA(col, 0, trackColor)
		}

		// Clip to the cell so overshooting glyphs cannot touch the track.
		dst := atlas.SubImage(image.Rect(x, 1, x+cell, 1+glyphHeight)).(*image.NRGBA)
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(color.White),
			Face: face,
			Dot:  fixed.P(x, 1+ascent),
		}
		d.DrawString(string(r))
	}
	return atlas, chars, nil
}

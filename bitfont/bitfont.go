// Package bitfont derives bitmap fonts from a single reference image.
//
// The top row of the image is a boundary track: the color of its leftmost
// pixel is the border color, and every maximal run of columns whose top pixel
// differs from it holds one glyph. Glyphs span the full image height and are
// matched, left to right, to the characters of a string supplied alongside the
// image.
package bitfont

import (
	"image"

	"github.com/ushitora-anqou/simple/shape"
)

// GlyphMap locates each character's sub-image inside a font atlas.
type GlyphMap map[rune]shape.Rect

// Build scans the top row of img and assigns the characters of chars, in
// order, to the glyph runs it finds. Scanning stops once chars is exhausted;
// surplus characters are left unassigned. A repeated character keeps the
// rectangle of its last occurrence. A run that reaches the right edge without a
// closing border column is not a glyph.
func Build(img image.Image, chars string) GlyphMap {
	glyphs := GlyphMap{}
	bounds := img.Bounds()
	if bounds.Empty() {
		return glyphs
	}

	runes := []rune(chars)
	height := int32(bounds.Dy())
	border := ToNRGBA(img.At(bounds.Min.X, bounds.Min.Y))

	next := 0
	runStart := -1
	for x := bounds.Min.X; x < bounds.Max.X && next < len(runes); x++ {
		isBorder := ToNRGBA(img.At(x, bounds.Min.Y)) == border
		switch {
		case !isBorder && runStart < 0:
			runStart = x
		case isBorder && runStart >= 0:
			glyphs[runes[next]] = shape.Rect{
				X: int32(runStart - bounds.Min.X),
				Y: 0,
				W: int32(x - runStart),
				H: height,
			}
			next++
			runStart = -1
		}
	}
	return glyphs
}

// Advance returns the horizontal distance Print moves after drawing r, or 0
// if r has no glyph.
func (m GlyphMap) Advance(r rune) int32 {
	return m[r].W
}

// Width is the total advance of text, skipping characters without a glyph.
func (m GlyphMap) Width(text string) int32 {
	var w int32
	for _, r := range text {
		w += m.Advance(r)
	}
	return w
}

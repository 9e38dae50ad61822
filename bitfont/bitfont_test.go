package bitfont

import (
	"image"
	"image/color"
	"testing"

	"github.com/ushitora-anqou/simple/shape"
)

var (
	border = color.NRGBA{0xff, 0x00, 0xff, 0xff}
	ink    = color.NRGBA{0x00, 0x00, 0x00, 0xff}
)

// newReference builds a len(track) by height image whose top row follows
// track: 'b' is a border column and anything else a glyph column.
func newReference(track string, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(track), height))
	for x, c := range track {
		if c == 'b' {
			img.SetNRGBA(x, 0, border)
		} else {
			img.SetNRGBA(x, 0, ink)
		}
		// Lower rows must not influence the scan.
		for y := 1; y < height; y++ {
			img.SetNRGBA(x, y, ink)
		}
	}
	return img
}

func TestBuild(t *testing.T) {
	const h = 7
	table := []struct {
		track    string
		chars    string
		expected GlyphMap
	}{
		{
			"bXXbbXXXb", "ab",
			GlyphMap{'a': {X: 1, Y: 0, W: 2, H: h}, 'b': {X: 5, Y: 0, W: 3, H: h}},
		},
		{"bbbbbbbbb", "abc", GlyphMap{}},
		{
			"bXXbbXXXb", "abcdef",
			GlyphMap{'a': {X: 1, Y: 0, W: 2, H: h}, 'b': {X: 5, Y: 0, W: 3, H: h}},
		},
		{"bXXbbXXXb", "a", GlyphMap{'a': {X: 1, Y: 0, W: 2, H: h}}},
		{"bXXbbXXXb", "aa", GlyphMap{'a': {X: 5, Y: 0, W: 3, H: h}}},
		{"bXbXbXXX", "abc", GlyphMap{'a': {X: 1, Y: 0, W: 1, H: h}, 'b': {X: 3, Y: 0, W: 1, H: h}}},
		{"bXXXb", "", GlyphMap{}},
		{"bXbXb", "ü€", GlyphMap{'ü': {X: 1, Y: 0, W: 1, H: h}, '€': {X: 3, Y: 0, W: 1, H: h}}},
	}

	for _, entry := range table {
		got := Build(newReference(entry.track, h), entry.chars)
		if len(got) != len(entry.expected) {
			t.Fatalf("Build(%q, %q): got %v, expected %v", entry.track, entry.chars, got, entry.expected)
		}
		for r, rect := range entry.expected {
			if got[r] != rect {
				t.Fatalf("Build(%q, %q)[%q]: got %v, expected %v", entry.track, entry.chars, r, got[r], rect)
			}
		}
	}
}

func TestBuildOffsetBounds(t *testing.T) {
	img := newReference("bbXXbXb", 4)
	sub := img.SubImage(image.Rect(1, 0, 7, 4))
	got := Build(sub, "xy")
	expected := GlyphMap{'x': {X: 1, Y: 0, W: 2, H: 4}, 'y': {X: 4, Y: 0, W: 1, H: 4}}
	for r, rect := range expected {
		if got[r] != rect {
			t.Fatalf("Build on sub-image [%q]: got %v, expected %v", r, got[r], rect)
		}
	}
}

func TestBuildEmptyImage(t *testing.T) {
	if got := Build(image.NewNRGBA(image.Rect(0, 0, 0, 0)), "abc"); len(got) != 0 {
		t.Fatalf("Build on empty image: got %v", got)
	}
}

func TestWidth(t *testing.T) {
	m := GlyphMap{'a': shape.NewRect(0, 0, 3, 5), 'b': shape.NewRect(3, 0, 4, 5)}
	if w := m.Width("ab?a"); w != 10 {
		t.Fatalf("Width: got %d, expected 10", w)
	}
}

func TestDefaultAtlas(t *testing.T) {
	atlas, chars, err := DefaultAtlas(14)
	if err != nil {
		t.Fatal(err)
	}
	if chars != DefaultChars() {
		t.Fatalf("DefaultAtlas chars: got %q", chars)
	}

	glyphs := Build(atlas, chars)
	if len(glyphs) != len(chars) {
		t.Fatalf("glyph count: got %d, expected %d", len(glyphs), len(chars))
	}

	space := glyphs[' ']
	if space.X != 1 || space.W <= 0 || space.H != int32(atlas.Bounds().Dy()) {
		t.Fatalf("glyph for ' ': got %v", space)
	}
	for _, r := range chars {
		if glyphs[r].W != space.W {
			t.Fatalf("glyph %q: width %d differs from %d in a monospaced atlas", r, glyphs[r].W, space.W)
		}
	}

	// Some ink must land inside the 'M' cell.
	m := glyphs['M']
	inked := false
	for y := int(m.Y) + 1; y < int(m.Y+m.H) && !inked; y++ {
		for x := int(m.X); x < int(m.X+m.W); x++ {
			if atlas.NRGBAAt(x, y).A != 0 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Fatalf("glyph 'M' has no visible pixels")
	}
}

func TestBuildTransparentTrack(t *testing.T) {
	const track = "bXXbbXXXb"
	transparentBorder := color.NRGBA64{0, 0, 0, 0}
	transparentInk := color.NRGBA64{0xffff, 0xffff, 0xffff, 0}
	wide := image.NewNRGBA64(image.Rect(0, 0, len(track), 3))
	for x, c := range track {
		if c == 'b' {
			wide.SetNRGBA64(x, 0, transparentBorder)
		} else {
			wide.SetNRGBA64(x, 0, transparentInk)
		}
	}

	palette := color.Palette{color.NRGBA{0, 0, 0, 0}, color.NRGBA{0xff, 0xff, 0xff, 0}}
	paletted := image.NewPaletted(image.Rect(0, 0, len(track), 3), palette)
	for x, c := range track {
		if c != 'b' {
			paletted.SetColorIndex(x, 0, 1)
		}
	}

	expected := GlyphMap{'a': {X: 1, Y: 0, W: 2, H: 3}, 'b': {X: 5, Y: 0, W: 3, H: 3}}
	for _, img := range []image.Image{wide, paletted} {
		got := Build(img, "ab")
		if len(got) != len(expected) || got['a'] != expected['a'] || got['b'] != expected['b'] {
			t.Fatalf("Build on %T: got %v, expected %v", img, got, expected)
		}
	}
}

func TestToNRGBA(t *testing.T) {
	table := []struct {
		in       color.Color
		expected color.NRGBA
	}{
		{color.NRGBA{1, 2, 3, 0}, color.NRGBA{1, 2, 3, 0}},
		{color.NRGBA64{0xffff, 0x8000, 0, 0}, color.NRGBA{0xff, 0x80, 0, 0}},
		{color.RGBA{0, 0, 0, 0}, color.NRGBA{0, 0, 0, 0}},
		{color.Gray{0x40}, color.NRGBA{0x40, 0x40, 0x40, 0xff}},
	}

	for _, entry := range table {
		if got := ToNRGBA(entry.in); got != entry.expected {
			t.Fatalf("ToNRGBA(%v): got %v, expected %v", entry.in, got, entry.expected)
		}
	}
}

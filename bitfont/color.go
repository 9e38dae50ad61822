package bitfont

import "image/color"

// ToNRGBA converts c to 8-bit non-premultiplied color. Unlike
// color.NRGBAModel it keeps the color channels of fully transparent
// non-premultiplied inputs, so a transparent track can differ from a
// transparent border.
func ToNRGBA(c color.Color) color.NRGBA {
	switch c := c.(type) {
	case color.NRGBA:
		return c
	case color.NRGBA64:
		return color.NRGBA{uint8(c.R >> 8), uint8(c.G >> 8), uint8(c.B >> 8), uint8(c.A >> 8)}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

package window

import (
	"bytes"
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/ushitora-anqou/simple/bitfont"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a texture owned by the Window that loaded it.
type Image struct {
	texture       Texture
	width, height int32
}

func (img *Image) Size() (width, height int32) {
	return img.width, img.height
}

func readImageFile(path string) (*image.NRGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeImage(data)
}

// decodeImage accepts png, jpeg, gif, bmp, tiff and webp data.
func decodeImage(data []byte) (*image.NRGBA, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("failed to decode image: empty %s image", format)
	}
	return toNRGBA(src), nil
}

// toNRGBA copies src into an NRGBA image at the origin. Sources that carry
// non-premultiplied color (NRGBA64, palettes) are converted per pixel so
// transparent pixels keep their color channels.
func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	if nrgba, ok := src.(*image.NRGBA); ok && bounds.Min == (image.Point{}) {
		return nrgba
	}

	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	switch src.(type) {
	case *image.RGBA, *image.RGBA64, *image.YCbCr, *image.Gray, *image.Gray16, *image.CMYK:
		// Premultiplied or opaque: nothing is lost going through RGBA.
		draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	default:
		for y := 0; y < bounds.Dy(); y++ {
			for x := 0; x < bounds.Dx(); x++ {
				dst.SetNRGBA(x, y, bitfont.ToNRGBA(src.At(bounds.Min.X+x, bounds.Min.Y+y)))
			}
		}
	}
	return dst
}

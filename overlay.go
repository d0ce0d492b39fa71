package planeseg

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"
)

// OverlayPlanes paints each mask over a copy of img for visual
// inspection. Masks beyond the color list get a random non-black color;
// pass colors explicitly for reproducible output.
func OverlayPlanes(img image.Image, masks []*Mask, colors []color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)

	for i, m := range masks {
		var c color.NRGBA
		if i < len(colors) {
			c = colors[i]
		} else {
			c = color.NRGBA{
				R: uint8(1 + rand.Intn(255)),
				G: uint8(1 + rand.Intn(255)),
				B: uint8(1 + rand.Intn(255)),
				A: 0xff,
			}
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if m.At(x, y) != 0 {
					out.SetNRGBA(b.Min.X+x, b.Min.Y+y, c)
				}
			}
		}
	}
	return out
}

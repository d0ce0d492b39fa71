package planeseg

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Default closing kernels: tall and wide rectangles to bridge long thin
// gaps in both orientations.
var defaultCloseKernels = []image.Point{
	image.Pt(10, 100),
	image.Pt(100, 10),
}

// CloseMask fills holes in a binary mask by closing it with each kernel
// (given as rectangle sizes) and intersecting the results: a pixel
// survives only if every kernel's closing keeps it filled. A nil kernel
// list selects the defaults.
func CloseMask(m *Mask, kernels []image.Point) (*Mask, error) {
	if kernels == nil {
		kernels = defaultCloseKernels
	}

	src, err := gocv.NewMatFromBytes(m.Height, m.Width, gocv.MatTypeCV8U, m.Data)
	if err != nil {
		return nil, fmt.Errorf("close mask: %w", err)
	}
	defer src.Close()

	out := NewMask(m.Width, m.Height)
	for i := range out.Data {
		out.Data[i] = 1
	}
	for _, k := range kernels {
		kernel := gocv.GetStructuringElement(gocv.MorphRect, k)
		dst := gocv.NewMat()
		gocv.MorphologyEx(src, &dst, gocv.MorphClose, kernel)
		for i, v := range dst.ToBytes() {
			if v == 0 {
				out.Data[i] = 0
			}
		}
		dst.Close()
		kernel.Close()
	}
	return out, nil
}

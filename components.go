package planeseg

import (
	"fmt"

	"gocv.io/x/gocv"
)

const defaultMinComponentFraction = 0.3

// ConnectedComponents splits a depth map into its connected foreground
// regions. Any positive depth counts as foreground. Components holding
// fewer than minFraction of the foreground pixels are discarded. The
// returned masks are pairwise disjoint and cover only foreground pixels.
func ConnectedComponents(dm *DepthMap, minFraction float64) ([]Region, error) {
	bin := make([]byte, len(dm.Data))
	var foreground int
	for i, v := range dm.Data {
		if v > 0 {
			bin[i] = 1
			foreground++
		}
	}

	src, err := gocv.NewMatFromBytes(dm.Height, dm.Width, gocv.MatTypeCV8U, bin)
	if err != nil {
		return nil, fmt.Errorf("connected components: %w", err)
	}
	defer src.Close()

	labels := gocv.NewMat()
	defer labels.Close()
	num := gocv.ConnectedComponents(src, &labels)

	minPixels := minFraction * float64(foreground)
	var out []Region
	for l := 1; l < num; l++ {
		mask := NewMask(dm.Width, dm.Height)
		var n int
		for y := 0; y < dm.Height; y++ {
			for x := 0; x < dm.Width; x++ {
				if labels.GetIntAt(y, x) == int32(l) {
					mask.Set(x, y, 1)
					n++
				}
			}
		}
		if float64(n) < minPixels {
			continue
		}
		out = append(out, Region{Depth: dm.Masked(mask), Mask: mask})
	}
	return out, nil
}

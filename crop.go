package planeseg

import (
	"gonum.org/v1/gonum/stat"
)

// Threshold computes the crop cutoff from the strictly positive inverse
// depth values of a frame.
type Threshold interface {
	Cutoff(inv []float64) float64
}

// FixedThreshold is a constant cutoff.
type FixedThreshold float64

func (t FixedThreshold) Cutoff([]float64) float64 {
	return float64(t)
}

// ThresholdFunc adapts a statistic to the Threshold interface. The
// statistic is applied as-is: on an all-nonpositive frame it receives an
// empty slice and its result (NaN for the mean) is used unmodified.
type ThresholdFunc func([]float64) float64

func (f ThresholdFunc) Cutoff(inv []float64) float64 {
	return f(inv)
}

// MeanThreshold cuts at the population mean of the inverse depths.
var MeanThreshold Threshold = ThresholdFunc(func(inv []float64) float64 {
	return stat.Mean(inv, nil)
})

// CropDepth converts positive depths to inverse depth and zeroes entries
// at or above the cutoff, treating them as too close or noise.
// Non-positive entries pass through both steps unchanged. A nil threshold
// selects MeanThreshold. Returns the cropped map and the number of
// nonzero entries in it.
func CropDepth(dm *DepthMap, th Threshold) (*DepthMap, int) {
	if th == nil {
		th = MeanThreshold
	}

	inv := NewDepthMap(dm.Width, dm.Height)
	pos := make([]float64, 0, len(dm.Data))
	for i, v := range dm.Data {
		if v > 0 {
			inv.Data[i] = 1 / v
			pos = append(pos, float64(inv.Data[i]))
		} else {
			inv.Data[i] = v
		}
	}

	cut := float32(th.Cutoff(pos))
	var n int
	for i, v := range inv.Data {
		if !(v < cut) { // NaN cutoff zeroes the whole frame
			inv.Data[i] = 0
			continue
		}
		if v != 0 {
			n++
		}
	}
	return inv, n
}

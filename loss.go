package planeseg

import (
	"fmt"
	"math"

	"github.com/seqsense/pcgol/pc"
)

// LossFunc selects how two point clouds are compared.
type LossFunc int

const (
	LossRMSE LossFunc = iota
	LossMAE
	LossMSE
)

func (f LossFunc) String() string {
	switch f {
	case LossRMSE:
		return "rmse"
	case LossMAE:
		return "mae"
	case LossMSE:
		return "mse"
	}
	return fmt.Sprintf("LossFunc(%d)", int(f))
}

// ParseLossFunc maps a metric name to its LossFunc. Unknown names are an
// error, never a default.
func ParseLossFunc(name string) (LossFunc, error) {
	switch name {
	case "rmse":
		return LossRMSE, nil
	case "mae":
		return LossMAE, nil
	case "mse":
		return LossMSE, nil
	}
	return 0, fmt.Errorf("unknown loss function %q", name)
}

// Depth errors are reported in millimeters.
const depthUnitScale = 1000

// LossMetric compares two point clouds point-by-point on the z axis.
// Pairing stops at the shorter cloud, but the aggregate divides by the
// length of the truth cloud; mismatched lengths are not an error.
func LossMetric(truth, approx pc.Vec3RandomAccessor, f LossFunc) (float64, error) {
	var perPoint func(t, a float64) float64
	var aggregate func(sum float64, n int) float64
	switch f {
	case LossRMSE:
		perPoint = squaredMillimeters
		aggregate = func(sum float64, n int) float64 { return math.Sqrt(sum / float64(n)) }
	case LossMAE:
		perPoint = func(t, a float64) float64 { return math.Abs((t - a) * depthUnitScale) }
		aggregate = func(sum float64, n int) float64 { return sum / float64(n) }
	case LossMSE:
		perPoint = squaredMillimeters
		aggregate = func(sum float64, n int) float64 { return sum / float64(n) }
	default:
		return 0, fmt.Errorf("unknown loss function %d", int(f))
	}

	n := truth.Len()
	pairs := n
	if approx.Len() < pairs {
		pairs = approx.Len()
	}
	var sum float64
	for i := 0; i < pairs; i++ {
		sum += perPoint(float64(truth.Vec3At(i)[2]), float64(approx.Vec3At(i)[2]))
	}
	return aggregate(sum, n), nil
}

func squaredMillimeters(t, a float64) float64 {
	d := (t - a) * depthUnitScale
	return d * d
}

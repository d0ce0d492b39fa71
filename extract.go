package planeseg

import (
	"github.com/seqsense/pcgol/pc"
	"github.com/seqsense/pcgol/pc/sac"
	"github.com/sirupsen/logrus"
)

const defaultRansacIterations = 100

// PlaneRegion is one extracted plane: the pixels it consumed and its
// equation.
type PlaneRegion struct {
	Mask  *Mask
	Plane Plane
}

// Extractor repeatedly fits planes to the point cloud of a region and
// removes their inliers until only a stop fraction of the points is
// left.
type Extractor struct {
	Calibration Calibration
	Iterations  int
	Log         logrus.FieldLogger
}

func NewExtractor(cal Calibration) *Extractor {
	return &Extractor{
		Calibration: cal,
		Iterations:  defaultRansacIterations,
	}
}

func (e *Extractor) iterations() int {
	if e.Iterations > 0 {
		return e.Iterations
	}
	return defaultRansacIterations
}

func (e *Extractor) logger() logrus.FieldLogger {
	if e.Log != nil {
		return e.Log
	}
	return discardLogger()
}

// ExtractPlanes fits planes to the masked depth map until fewer than
// startSize*stopFraction points remain unconsumed. The caller's mask is
// never modified; the working copy is zeroed as inliers are removed.
// Leftover points below the stop fraction are not assigned to any plane.
// A zero startSize yields no planes, and an iteration that consumes no
// points ends the loop.
func (e *Extractor) ExtractPlanes(m *Mask, depth *DepthMap, startSize int, stopFraction float64) []PlaneRegion {
	var out []PlaneRegion
	if startSize <= 0 {
		return out
	}

	log := e.logger()
	curr := m.Clone()
	count := startSize
	stop := int(float64(startSize) * stopFraction)
	for count >= stop {
		cloud, pix := BackProject(depth, curr, e.Calibration)
		plane, inliers, ok := e.fitPlane(cloud)
		if !ok || len(inliers) == 0 {
			// A fit consuming nothing would never lower count.
			break
		}

		consumed := NewMask(m.Width, m.Height)
		for _, i := range inliers {
			p := pix[i]
			curr.Set(p.X, p.Y, 0)
			consumed.Set(p.X, p.Y, 1)
		}
		out = append(out, PlaneRegion{Mask: consumed, Plane: plane})
		count -= len(inliers)

		log.WithFields(logrus.Fields{
			"inliers":   len(inliers),
			"remaining": count,
		}).Debug("extracted plane")
	}
	return out
}

// fitPlane runs one RANSAC fit over the cloud. The inlier tolerance is
// scale-relative: a hundredth of the spread of all point coordinates.
func (e *Extractor) fitPlane(cloud pc.Vec3Slice) (Plane, []int, bool) {
	if cloud.Len() < 3 {
		return Plane{}, nil, false
	}
	minV, maxV, err := pc.MinMaxVec3(cloud)
	if err != nil {
		return Plane{}, nil, false
	}
	lo, hi := minV[0], maxV[0]
	for i := 1; i < 3; i++ {
		if minV[i] < lo {
			lo = minV[i]
		}
		if maxV[i] > hi {
			hi = maxV[i]
		}
	}
	th := (hi - lo) / 100
	if th < 0 {
		th = -th
	}

	s := sac.New(sac.NewRandomSampler(cloud.Len()), newPlaneModel(cloud, th))
	if !s.Compute(e.iterations()) {
		return Plane{}, nil, false
	}
	coeff := s.Coefficients().(*planeCoefficients)
	return coeff.Plane(), coeff.Inliers(th), true
}

package planeseg

import (
	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
	"github.com/seqsense/pcgol/pc/sac"
)

// Plane is ax+by+cz+d=0 with unit normal (a,b,c).
type Plane struct {
	Normal mat.Vec3
	D      float32
}

// Coefficients returns (a, b, c, d).
func (p Plane) Coefficients() [4]float32 {
	return [4]float32{p.Normal[0], p.Normal[1], p.Normal[2], p.D}
}

// Distance returns the unsigned distance from v to the plane.
func (p Plane) Distance(v mat.Vec3) float32 {
	d := p.Normal.Dot(v) + p.D
	if d < 0 {
		return -d
	}
	return d
}

// planeModel fits a plane through a minimal sample of three points.
// It plugs into the sac framework the same way as its surface models.
type planeModel struct {
	ra         pc.Vec3RandomAccessor
	distThresh float32
}

func newPlaneModel(ra pc.Vec3RandomAccessor, distThresh float32) *planeModel {
	return &planeModel{ra: ra, distThresh: distThresh}
}

func (planeModel) NumRange() (min, max int) {
	return 3, 3
}

func (m *planeModel) Fit(ids []int) (sac.ModelCoefficients, bool) {
	if len(ids) != 3 {
		return nil, false
	}
	p0 := m.ra.Vec3At(ids[0])
	p1 := m.ra.Vec3At(ids[1])
	p2 := m.ra.Vec3At(ids[2])

	norm := p1.Sub(p0).Cross(p2.Sub(p0))
	if norm.NormSq() < 1e-12 {
		// Degenerate sample (repeated or collinear points).
		return nil, false
	}
	norm = norm.Normalized()

	return &planeCoefficients{
		model: m,
		plane: Plane{Normal: norm, D: -norm.Dot(p0)},
	}, true
}

type planeCoefficients struct {
	model *planeModel
	plane Plane
}

func (c *planeCoefficients) Evaluate() int {
	n := c.model.ra.Len()
	var cnt int
	for i := 0; i < n; i++ {
		if c.plane.Distance(c.model.ra.Vec3At(i)) < c.model.distThresh {
			cnt++
		}
	}
	return cnt
}

func (c *planeCoefficients) Inliers(d float32) []int {
	n := c.model.ra.Len()
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if c.plane.Distance(c.model.ra.Vec3At(i)) < d {
			out = append(out, i)
		}
	}
	return out
}

func (c *planeCoefficients) IsIn(p mat.Vec3, d float32) bool {
	return c.plane.Distance(p) < d
}

func (c *planeCoefficients) Plane() Plane {
	return c.plane
}

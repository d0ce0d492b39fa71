package planeseg

import (
	"image"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

// Back-projected clouds are expressed in a frame with y and z negated
// relative to the camera optical frame.
var axisFlip = mat.Mat4{
	1, 0, 0, 0,
	0, -1, 0, 0,
	0, 0, -1, 0,
	0, 0, 0, 1,
}

// BackProject converts the masked entries of a depth map to a point
// cloud through the pinhole model. Pixels are visited in row-major order
// and zero-depth pixels produce no point; the returned pixel list gives,
// for each cloud index, the pixel it came from. A nil mask projects the
// whole frame.
func BackProject(depth *DepthMap, m *Mask, cal Calibration) (pc.Vec3Slice, []image.Point) {
	cloud := make(pc.Vec3Slice, 0, len(depth.Data))
	pix := make([]image.Point, 0, len(depth.Data))
	for y := 0; y < depth.Height; y++ {
		for x := 0; x < depth.Width; x++ {
			if m != nil && m.At(x, y) == 0 {
				continue
			}
			d := depth.At(x, y)
			if d <= 0 {
				continue
			}
			z := float64(d) / cal.DepthScale
			p := mat.Vec3{
				float32((float64(x) - cal.Cx) * z / cal.Fx),
				float32((float64(y) - cal.Cy) * z / cal.Fy),
				float32(z),
			}
			cloud = append(cloud, axisFlip.TransformAffine(p))
			pix = append(pix, image.Pt(x, y))
		}
	}
	return cloud, pix
}

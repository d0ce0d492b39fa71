package planeseg

// DepthMap is a dense row-major grid of distances. Zero means no
// measurement.
type DepthMap struct {
	Width, Height int
	Data          []float32
}

func NewDepthMap(w, h int) *DepthMap {
	return &DepthMap{
		Width:  w,
		Height: h,
		Data:   make([]float32, w*h),
	}
}

func (d *DepthMap) At(x, y int) float32 {
	return d.Data[y*d.Width+x]
}

func (d *DepthMap) Set(x, y int, v float32) {
	d.Data[y*d.Width+x] = v
}

func (d *DepthMap) Clone() *DepthMap {
	return &DepthMap{
		Width:  d.Width,
		Height: d.Height,
		Data:   append([]float32{}, d.Data...),
	}
}

// Masked returns a copy with entries outside m zeroed.
func (d *DepthMap) Masked(m *Mask) *DepthMap {
	out := NewDepthMap(d.Width, d.Height)
	for i, v := range d.Data {
		if m.Data[i] != 0 {
			out.Data[i] = v
		}
	}
	return out
}

// Mask is a binary grid with the same layout as its DepthMap.
type Mask struct {
	Width, Height int
	Data          []uint8
}

func NewMask(w, h int) *Mask {
	return &Mask{
		Width:  w,
		Height: h,
		Data:   make([]uint8, w*h),
	}
}

func (m *Mask) At(x, y int) uint8 {
	return m.Data[y*m.Width+x]
}

func (m *Mask) Set(x, y int, v uint8) {
	m.Data[y*m.Width+x] = v
}

func (m *Mask) Clone() *Mask {
	return &Mask{
		Width:  m.Width,
		Height: m.Height,
		Data:   append([]uint8{}, m.Data...),
	}
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	var n int
	for _, v := range m.Data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Region is one connected component of a depth image: the depth values
// restricted to the component and its binary mask.
type Region struct {
	Depth *DepthMap
	Mask  *Mask
}

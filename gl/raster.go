package gl

// Rasterizer paints finished screen-space triangles into an internal target
// and exposes a blit to an externally owned surface.
type Rasterizer interface {
	Clear(c Color)
	Submit(t Triangle)
	BlitTo(t Target)
}

// RenderMode selects how SoftwareRasterizer paints triangles.
type RenderMode uint8

const (
	RenderFill RenderMode = iota
	RenderWireframe
)

// SoftwareRasterizer is the default Rasterizer. It fills triangles with
// barycentric per-vertex color interpolation into an internal pixel buffer.
//
// Create it once and reuse it to avoid allocations.
type SoftwareRasterizer struct {
	mode RenderMode
	w, h int
	buf  []Color
}

func NewSoftwareRasterizer(w, h int) *SoftwareRasterizer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &SoftwareRasterizer{w: w, h: h, buf: make([]Color, w*h)}
}

func (r *SoftwareRasterizer) SetRenderMode(m RenderMode) { r.mode = m }

func (r *SoftwareRasterizer) Size() (w, h int) { return r.w, r.h }

// Pixel returns the current color of one pixel of the internal target.
func (r *SoftwareRasterizer) Pixel(x, y int) Color {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return Color{}
	}
	return r.buf[y*r.w+x]
}

func (r *SoftwareRasterizer) Clear(c Color) {
	for i := range r.buf {
		r.buf[i] = c
	}
}

func (r *SoftwareRasterizer) BlitTo(t Target) {
	if t == nil {
		return
	}
	tw, th := t.Size()
	if tw > r.w {
		tw = r.w
	}
	if th > r.h {
		th = r.h
	}
	for y := 0; y < th; y++ {
		row := y * r.w
		for x := 0; x < tw; x++ {
			t.SetPixel(x, y, r.buf[row+x])
		}
	}
}

// Submit paints one screen-space triangle. Vertex X and Y are pixel
// coordinates; vertex colors are unit-range floats.
func (r *SoftwareRasterizer) Submit(t Triangle) {
	x0, y0 := pixel(t.A.X), pixel(t.A.Y)
	x1, y1 := pixel(t.B.X), pixel(t.B.Y)
	x2, y2 := pixel(t.C.X), pixel(t.C.Y)

	if r.mode == RenderWireframe {
		c := colorFromFloats(t.A.R, t.A.G, t.A.B, t.A.A)
		r.drawLine(x0, y0, x1, y1, c)
		r.drawLine(x1, y1, x2, y2, c)
		r.drawLine(x2, y2, x0, y0, c)
		return
	}

	r.fillTriangle(x0, y0, t.A, x1, y1, t.B, x2, y2, t.C)
}

func pixel(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func (r *SoftwareRasterizer) setPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	r.buf[y*r.w+x] = c
}

func (r *SoftwareRasterizer) drawLine(x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		r.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *SoftwareRasterizer) fillTriangle(x0, y0 int, v0 Vertex, x1, y1 int, v1 Vertex, x2, y2 int, v2 Vertex) {
	// Edge functions below accept counter-clockwise triangles; culling
	// happened upstream, so flip clockwise input rather than dropping it.
	if edgeFn(x0, y0, x1, y1, x2, y2) < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
		v1, v2 = v2, v1
	}

	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= r.w {
		maxX = r.w - 1
	}
	if maxY >= r.h {
		maxY = r.h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	invArea := 1.0 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			r.setPixel(x, y, colorFromFloats(
				a0*v0.R+a1*v1.R+a2*v2.R,
				a0*v0.G+a1*v1.G+a2*v2.G,
				a0*v0.B+a1*v1.B+a2*v2.B,
				a0*v0.A+a1*v1.A+a2*v2.A,
			))
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

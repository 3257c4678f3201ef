package gl

import "softgl/math3d"

// End finishes the current primitive batch: it assembles triangles from the
// collected vertices, transforms them through the model-view and projection
// matrices, clips against the frustum, performs the perspective divide and
// screen mapping, culls, and submits survivors to the rasterizer.
func (c *Context) End() {
	if !c.inDrawState {
		c.err = InvalidOperation
		return
	}

	if !c.assemble() {
		// The error is set and the batch is left open, matching the
		// emulated behavior: no pipeline work, buffers kept.
		return
	}

	w, h := c.target.Size()
	scrW := float32(w)
	scrH := float32(h)

	c.processed = c.processed[:0]
	for i := range c.triangles {
		c.processTriangle(&c.triangles[i], scrW, scrH)
	}

	for i := range c.processed {
		tri := &c.processed[i]

		// Signed area of the screen-space triangle: the 2D cross
		// product of edges A-B and B-C.
		dxAB := tri.A.X - tri.B.X
		dxBC := tri.B.X - tri.C.X
		dyAB := tri.A.Y - tri.B.Y
		dyBC := tri.B.Y - tri.C.Y
		area := dxAB*dyBC - dxBC*dyAB

		if area == 0 {
			continue
		}

		if c.cullFaces {
			isFront := area < 0
			if c.frontFace == CCW {
				isFront = area > 0
			}

			if isFront && (c.culledSides == Front || c.culledSides == FrontAndBack) {
				continue
			}
			if !isFront && (c.culledSides == Back || c.culledSides == FrontAndBack) {
				continue
			}
		}

		c.rast.Submit(*tri)
	}

	c.triangles = c.triangles[:0]
	c.processed = c.processed[:0]
	c.vertices = c.vertices[:0]

	c.inDrawState = false
	c.err = NoError
}

// assemble builds the triangle list from the collected vertices according to
// the current draw mode. On failure it sets the error register and reports
// false.
func (c *Context) assemble() bool {
	c.triangles = c.triangles[:0]

	switch c.drawMode {
	case Triangles:
		// A short trailing group is dropped by the loop bound.
		for i := 0; i+2 < len(c.vertices); i += 3 {
			c.triangles = append(c.triangles, Triangle{
				A: c.vertices[i],
				B: c.vertices[i+1],
				C: c.vertices[i+2],
			})
		}
	case Quads:
		if len(c.vertices)%4 != 0 {
			c.err = InvalidOperation
			return false
		}
		for i := 0; i+3 < len(c.vertices); i += 4 {
			c.triangles = append(c.triangles,
				Triangle{A: c.vertices[i], B: c.vertices[i+1], C: c.vertices[i+2]},
				Triangle{A: c.vertices[i+2], B: c.vertices[i+3], C: c.vertices[i]},
			)
		}
	case TriangleFan:
		// The first vertex is the fixed pivot.
		for i := 1; i+1 < len(c.vertices); i++ {
			c.triangles = append(c.triangles, Triangle{
				A: c.vertices[0],
				B: c.vertices[i],
				C: c.vertices[i+1],
			})
		}
	case TriangleStrip:
		// Sliding window; alternating winding is not corrected.
		for i := 0; i+2 < len(c.vertices); i++ {
			c.triangles = append(c.triangles, Triangle{
				A: c.vertices[i],
				B: c.vertices[i+1],
				C: c.vertices[i+2],
			})
		}
	default:
		c.err = InvalidEnum
		return false
	}

	return true
}

// processTriangle transforms one assembled triangle to clip space, clips it,
// divides and screen-maps the result, and appends the finished triangle or
// triangles to the processed list.
func (c *Context) processTriangle(tri *Triangle, scrW, scrH float32) {
	toClip := func(v Vertex) math3d.Vec4 {
		p := math3d.V4(v.X, v.Y, v.Z, 1)
		p = math3d.Mat4MulV4(c.modelView, p)
		return math3d.Mat4MulV4(c.projection, p)
	}

	poly := c.clip.Clip(toClip(tri.A), toClip(tri.B), toClip(tri.C))
	if poly.Kind() == ClipNone {
		return
	}

	var out [maxClipVertices]Vertex
	for i := 0; i < poly.Len(); i++ {
		vec := poly.At(i)

		// Perspective divide, skipped when w is exactly zero so the
		// vertex passes through in clip coordinates.
		if vec.W != 0 {
			vec.X /= vec.W
			vec.Y /= vec.W
			vec.Z /= vec.W
		}

		// Colors are inherited from the source triangle by positional
		// index; vertices the clipper introduced reuse the third.
		src := &tri.C
		switch i {
		case 0:
			src = &tri.A
		case 1:
			src = &tri.B
		}

		out[i] = Vertex{
			X: (vec.X + 1) * (scrW / 2),
			Y: scrH - (vec.Y+1)*(scrH/2),
			Z: vec.Z,
			W: vec.W,
			R: src.R, G: src.G, B: src.B, A: src.A,
		}
	}

	switch poly.Kind() {
	case ClipTri:
		c.processed = append(c.processed, Triangle{A: out[0], B: out[1], C: out[2]})
	case ClipQuad:
		c.processed = append(c.processed,
			Triangle{A: out[0], B: out[1], C: out[2]},
			Triangle{A: out[0], B: out[2], C: out[3]},
		)
	default:
		// Five or more vertices: keep fanning from the first.
		for i := 1; i+1 < poly.Len(); i++ {
			c.processed = append(c.processed, Triangle{A: out[0], B: out[i], C: out[i+1]})
		}
	}
}

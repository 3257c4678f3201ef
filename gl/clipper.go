package gl

import "softgl/math3d"

// A triangle clipped against six planes gains at most one vertex per plane.
const maxClipVertices = 9

// ClipKind classifies a clip result for the pipeline.
type ClipKind uint8

const (
	ClipNone ClipKind = iota // fully outside, or degenerate
	ClipTri                  // three vertices, one triangle
	ClipQuad                 // four vertices, re-triangulated as two
	ClipMore                 // corner crossings; consumed as a fan
)

// ClipPolygon is the convex polygon produced by clipping a triangle against
// the view frustum. It holds clip-space positions only; colors are carried by
// the pipeline from the source triangle.
type ClipPolygon struct {
	n int
	v [maxClipVertices]math3d.Vec4
}

func (p *ClipPolygon) push(v math3d.Vec4) {
	if p.n < maxClipVertices {
		p.v[p.n] = v
		p.n++
	}
}

func (p ClipPolygon) Len() int { return p.n }

func (p ClipPolygon) At(i int) math3d.Vec4 { return p.v[i] }

func (p ClipPolygon) Kind() ClipKind {
	switch {
	case p.n < 3:
		return ClipNone
	case p.n == 3:
		return ClipTri
	case p.n == 4:
		return ClipQuad
	default:
		return ClipMore
	}
}

// Clipper clips one clip-space triangle against the view frustum.
type Clipper interface {
	Clip(a, b, c math3d.Vec4) ClipPolygon
}

// frustumClipper is the default Clipper: Sutherland-Hodgman against the six
// clip-space half-spaces -w <= x,y,z <= w.
type frustumClipper struct{}

// Plane order: left, right, bottom, top, near, far. A point is inside a
// plane when its distance is >= 0.
func clipDistance(plane int, v math3d.Vec4) float32 {
	switch plane {
	case 0:
		return v.W + v.X
	case 1:
		return v.W - v.X
	case 2:
		return v.W + v.Y
	case 3:
		return v.W - v.Y
	case 4:
		return v.W + v.Z
	case 5:
		return v.W - v.Z
	}
	panic("softgl: invalid clip plane index")
}

func lerpVec4(a, b math3d.Vec4, t float32) math3d.Vec4 {
	return math3d.Vec4{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: a.W + (b.W-a.W)*t,
	}
}

func (frustumClipper) Clip(a, b, c math3d.Vec4) ClipPolygon {
	var in ClipPolygon
	in.push(a)
	in.push(b)
	in.push(c)

	for plane := 0; plane < 6; plane++ {
		if in.n == 0 {
			break
		}
		var out ClipPolygon
		for i := 0; i < in.n; i++ {
			cur := in.v[i]
			next := in.v[(i+1)%in.n]
			dc := clipDistance(plane, cur)
			dn := clipDistance(plane, next)
			if dc >= 0 {
				out.push(cur)
			}
			if (dc >= 0) != (dn >= 0) {
				out.push(lerpVec4(cur, next, dc/(dc-dn)))
			}
		}
		in = out
	}
	return in
}

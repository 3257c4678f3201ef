// Package gl implements a fixed-function, immediate-mode software 3D
// pipeline in the style of early OpenGL.
//
// A Context accepts per-vertex commands between Begin and End, applies the
// model-view and projection transforms, clips against the view frustum,
// performs the perspective divide and screen mapping, assembles and culls
// triangles, and hands finished triangles to a Rasterizer.
//
// Pipeline (fixed):
//
//	Begin/Vertex/End → Transform → Clip → Divide → Screen map → Cull → Rasterize.
//
// The renderer is software-only and draws into a caller-provided Target via
// Present. Misuse of the API never panics; it lands in the sticky error
// register read by GetError. A single goroutine must own a Context; the
// package does no locking of its own.
package gl

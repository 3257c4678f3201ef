package gl

import (
	"fmt"

	"softgl/internal/buildinfo"
	"softgl/math3d"
)

const matrixStackLimit = 1024

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

// Viewport is the rectangle accepted by the Viewport command. It is stored
// and validated but does not affect the screen mapping, which always uses the
// full target extents.
type Viewport struct {
	X, Y, W, H int
}

// Context holds the entire pipeline state: transform registers, the pending
// vertex buffer, the sticky error register, and the collaborators that clip
// and rasterize.
//
// A Context is not safe for concurrent use; exactly one goroutine issues
// commands, mirroring the one-context-per-thread discipline of the emulated
// API.
type Context struct {
	// Debug enables diagnostic logging through the logger set with
	// SetLogger.
	Debug bool

	log Logger

	target Target
	rast   Rasterizer
	clip   Clipper

	err         Enum
	inDrawState bool
	drawMode    Enum
	matrixMode  Enum

	modelView  math3d.Mat4
	projection math3d.Mat4
	mvStack    []math3d.Mat4
	projStack  []math3d.Mat4

	curColor   [4]float32
	clearColor [4]float32
	viewport   Viewport

	cullFaces   bool
	frontFace   Enum
	culledSides Enum

	vertices  []Vertex
	triangles []Triangle
	processed []Triangle
}

// New creates a Context rendering into target. The rasterizer's internal
// buffer is sized to the target once, at creation.
func New(target Target) *Context {
	w, h := target.Size()
	return &Context{
		target:      target,
		rast:        NewSoftwareRasterizer(w, h),
		clip:        frustumClipper{},
		matrixMode:  ModelView,
		modelView:   math3d.Mat4Identity(),
		projection:  math3d.Mat4Identity(),
		curColor:    [4]float32{1, 1, 1, 1},
		frontFace:   CCW,
		culledSides: Back,
	}
}

// SetLogger installs the diagnostic logger used when Debug is set.
func (c *Context) SetLogger(l Logger) { c.log = l }

// Rasterizer returns the rasterizer collaborator, for render-mode control.
func (c *Context) Rasterizer() Rasterizer { return c.rast }

func (c *Context) debugf(format string, args ...any) {
	if !c.Debug || c.log == nil {
		return
	}
	c.log.WriteLineString(fmt.Sprintf(format, args...))
}

// Begin starts collecting vertices for one primitive batch of the given kind.
func (c *Context) Begin(mode Enum) {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}
	if mode < Triangles || mode > Polygon {
		c.err = InvalidEnum
		return
	}

	c.drawMode = mode
	c.inDrawState = true // most commands now report InvalidOperation
	c.err = NoError
}

// Vertex appends one vertex carrying the current color.
func (c *Context) Vertex(x, y, z, w float32) {
	c.vertices = append(c.vertices, Vertex{
		X: x, Y: y, Z: z, W: w,
		R: c.curColor[0], G: c.curColor[1], B: c.curColor[2], A: c.curColor[3],
	})
	c.err = NoError
}

// Color sets the color applied to subsequently submitted vertices. It is
// legal while collecting.
func (c *Context) Color(r, g, b, a float32) {
	c.curColor = [4]float32{r, g, b, a}
	c.err = NoError
}

// Clear fills the rasterizer target with the clear color.
func (c *Context) Clear(mask Enum) {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}

	if mask&ColorBufferBit != 0 {
		c.rast.Clear(colorFromFloats(c.clearColor[0], c.clearColor[1], c.clearColor[2], c.clearColor[3]))
		c.err = NoError
	} else {
		c.err = InvalidEnum
	}
}

func (c *Context) ClearColor(r, g, b, a float32) {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}

	c.clearColor = [4]float32{r, g, b, a}
	c.err = NoError
}

// MatrixMode selects which matrix the transform commands target.
func (c *Context) MatrixMode(mode Enum) {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}
	if mode < ModelView || mode > Projection {
		c.err = InvalidEnum
		return
	}

	c.matrixMode = mode
	c.err = NoError
}

// activeMatrix resolves the matrix selected by the current mode. The mode is
// validated on entry, so anything else is an internal invariant violation.
func (c *Context) activeMatrix() *math3d.Mat4 {
	switch c.matrixMode {
	case ModelView:
		return &c.modelView
	case Projection:
		return &c.projection
	}
	panic("softgl: invalid matrix mode reached transform stage")
}

func (c *Context) LoadIdentity() {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}

	*c.activeMatrix() = math3d.Mat4Identity()
	c.err = NoError
}

func (c *Context) LoadMatrix(m math3d.Mat4) {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}

	*c.activeMatrix() = m
	c.err = NoError
}

// PushMatrix saves the active matrix on its stack.
func (c *Context) PushMatrix() {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}

	c.debugf("PushMatrix: mode %#04x depth mv=%d proj=%d", c.matrixMode, len(c.mvStack), len(c.projStack))

	switch c.matrixMode {
	case Projection:
		if len(c.projStack) >= matrixStackLimit {
			c.err = StackOverflow
			return
		}
		c.projStack = append(c.projStack, c.projection)
	case ModelView:
		if len(c.mvStack) >= matrixStackLimit {
			c.err = StackOverflow
			return
		}
		c.mvStack = append(c.mvStack, c.modelView)
	default:
		panic("softgl: invalid matrix mode reached push stage")
	}

	c.err = NoError
}

// PopMatrix restores the active matrix from the top of its stack.
func (c *Context) PopMatrix() {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}

	c.debugf("PopMatrix: mode %#04x depth mv=%d proj=%d", c.matrixMode, len(c.mvStack), len(c.projStack))

	switch c.matrixMode {
	case Projection:
		if len(c.projStack) == 0 {
			c.err = StackUnderflow
			return
		}
		c.projection = c.projStack[len(c.projStack)-1]
		c.projStack = c.projStack[:len(c.projStack)-1]
	case ModelView:
		if len(c.mvStack) == 0 {
			c.err = StackUnderflow
			return
		}
		c.modelView = c.mvStack[len(c.mvStack)-1]
		c.mvStack = c.mvStack[:len(c.mvStack)-1]
	default:
		panic("softgl: invalid matrix mode reached pop stage")
	}

	c.err = NoError
}

// Translate right-multiplies the active matrix by a translation.
func (c *Context) Translate(x, y, z float32) {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}

	m := c.activeMatrix()
	*m = math3d.Mat4Mul(*m, math3d.Mat4Translate(math3d.V3(x, y, z)))
	c.err = NoError
}

// Scale right-multiplies the active matrix by a scale.
func (c *Context) Scale(x, y, z float32) {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}

	m := c.activeMatrix()
	*m = math3d.Mat4Mul(*m, math3d.Mat4Scale(math3d.V3(x, y, z)))
	c.err = NoError
}

// Rotate right-multiplies the active matrix by a rotation of angleDeg degrees
// around the given axis. The axis is normalized first.
func (c *Context) Rotate(angleDeg, x, y, z float32) {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}

	m := c.activeMatrix()
	*m = math3d.Mat4Mul(*m, math3d.Mat4Rotate(math3d.V3(x, y, z), angleDeg))
	c.err = NoError
}

// Frustum composes an off-center perspective projection into the active
// matrix.
func (c *Context) Frustum(left, right, bottom, top, near, far float32) {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}

	if c.matrixMode == ModelView {
		c.debugf("Frustum: composed while matrix mode is ModelView")
	}

	m := c.activeMatrix()
	*m = math3d.Mat4Mul(*m, math3d.Mat4Frustum(left, right, bottom, top, near, far))
	c.err = NoError
}

// Ortho composes an off-center orthographic projection into the active
// matrix. The bounds must describe a non-degenerate box.
func (c *Context) Ortho(left, right, bottom, top, near, far float32) {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}
	if left == right || bottom == top || near == far {
		c.err = InvalidValue
		return
	}

	if c.matrixMode == ModelView {
		c.debugf("Ortho: composed while matrix mode is ModelView")
	}

	m := c.activeMatrix()
	*m = math3d.Mat4Mul(*m, math3d.Mat4Ortho(left, right, bottom, top, near, far))
	c.err = NoError
}

// Viewport validates and stores the viewport rectangle. The screen mapping
// currently ignores it and always uses the full target extents.
func (c *Context) Viewport(x, y, w, h int) {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}
	if w < 0 || h < 0 {
		c.err = InvalidValue
		return
	}

	c.viewport = Viewport{X: x, Y: y, W: w, H: h}
	c.err = NoError
}

// Enable turns a capability on. Only face culling is implemented.
func (c *Context) Enable(capability Enum) {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}

	switch capability {
	case CullFaceCap:
		c.cullFaces = true
		c.err = NoError
	default:
		c.err = InvalidEnum
	}
}

// Disable turns a capability off. Only face culling is implemented.
func (c *Context) Disable(capability Enum) {
	if c.inDrawState {
		c.err = InvalidOperation
		return
	}

	switch capability {
	case CullFaceCap:
		c.cullFaces = false
		c.err = NoError
	default:
		c.err = InvalidEnum
	}
}

// FrontFace sets the winding convention for front-facing triangles. It takes
// effect regardless of collecting state.
func (c *Context) FrontFace(dir Enum) {
	if dir < CW || dir > CCW {
		c.err = InvalidEnum
		return
	}

	c.frontFace = dir
	c.err = NoError
}

// CullFace selects which side or sides culling drops. It takes effect
// regardless of collecting state.
func (c *Context) CullFace(side Enum) {
	if side < Front || side > FrontAndBack {
		c.err = InvalidEnum
		return
	}

	c.culledSides = side
	c.err = NoError
}

// GetError reads the sticky error register. The register is not cleared by
// the read; every command overwrites it with its own outcome instead.
func (c *Context) GetError() Enum {
	if c.inDrawState {
		return InvalidOperation
	}
	return c.err
}

// GetString returns a fixed identifying string, or "" for unknown names.
func (c *Context) GetString(name Enum) string {
	if c.inDrawState {
		c.err = InvalidOperation
		return ""
	}

	switch name {
	case Vendor:
		c.err = NoError
		return "The softgl authors"
	case Renderer:
		c.err = NoError
		return "softgl software renderer"
	case Version:
		c.err = NoError
		return "OpenGL 1.2 softgl " + buildinfo.Short()
	}

	c.debugf("GetString: unknown name %#04x", name)
	c.err = InvalidEnum
	return ""
}

// Present blits the rasterizer's internal target into the output surface the
// Context was created with. It performs no pipeline work and reports no
// errors of its own.
func (c *Context) Present() {
	c.rast.BlitTo(c.target)
}

package gl

// Enum is a GL-style enumerated token. Values match the canonical OpenGL
// enumerants so range checks behave exactly like the emulated API.
type Enum uint32

// Error codes held by the sticky error register.
const (
	NoError          Enum = 0
	InvalidEnum      Enum = 0x0500
	InvalidValue     Enum = 0x0501
	InvalidOperation Enum = 0x0502
	StackOverflow    Enum = 0x0503
	StackUnderflow   Enum = 0x0504
)

// Primitive kinds accepted by Begin. QuadStrip and Polygon are accepted as
// tokens but have no assembly rule; End reports InvalidEnum for them.
const (
	Triangles     Enum = 0x0004
	TriangleStrip Enum = 0x0005
	TriangleFan   Enum = 0x0006
	Quads         Enum = 0x0007
	QuadStrip     Enum = 0x0008
	Polygon       Enum = 0x0009
)

// Matrix targets for MatrixMode.
const (
	ModelView  Enum = 0x1700
	Projection Enum = 0x1701
)

// Winding directions for FrontFace.
const (
	CW  Enum = 0x0900
	CCW Enum = 0x0901
)

// Culled sides for CullFace.
const (
	Front        Enum = 0x0404
	Back         Enum = 0x0405
	FrontAndBack Enum = 0x0408
)

// Capabilities for Enable and Disable.
const (
	CullFaceCap Enum = 0x0B44
)

// Buffer bits for Clear.
const (
	ColorBufferBit Enum = 0x4000
)

// String names for GetString.
const (
	Vendor   Enum = 0x1F00
	Renderer Enum = 0x1F01
	Version  Enum = 0x1F02
)

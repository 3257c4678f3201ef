package gl

// Vertex is one pipeline vertex: a position, a color, and a reserved texture
// coordinate (currently always zero).
//
// Before End the position is in object space; in a Triangle handed to a
// Rasterizer, X and Y are screen pixels, Z is the post-divide depth, and W is
// the clip-space w the divide used (left untouched when it was zero).
type Vertex struct {
	X, Y, Z, W float32
	R, G, B, A float32
	U, V       float32
}

// Triangle is three ordered vertices. Winding is significant: it decides the
// facing used by backface culling.
type Triangle struct {
	A, B, C Vertex
}

// Color is an RGBA color in 8-bit channels, as consumed by pixel targets.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// colorFromFloats converts unit-range float channels to an 8-bit Color,
// clamping out-of-range values.
func colorFromFloats(r, g, b, a float32) Color {
	return Color{R: channelByte(r), G: channelByte(g), B: channelByte(b), A: channelByte(a)}
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}

package gl

// PackRGB565 packs 8-bit channels into an RGB565 pixel.
func PackRGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// UnpackRGB565 expands an RGB565 pixel back to 8-bit channels.
func UnpackRGB565(p uint16) (r, g, b uint8) {
	r = uint8((p >> 11 & 0x1F) * 255 / 31)
	g = uint8((p >> 5 & 0x3F) * 255 / 63)
	b = uint8((p & 0x1F) * 255 / 31)
	return r, g, b
}

// RGB565Target renders into a caller-provided RGB565 buffer, little-endian,
// Stride bytes per row. The target never allocates; writes that fall outside
// the buffer or the declared extents are dropped.
type RGB565Target struct {
	Buf    []byte
	Stride int
	W, H   int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	t.store(y*t.Stride+x*2, PackRGB565(c.R, c.G, c.B))
}

func (t *RGB565Target) Clear(c Color) {
	if t.Stride <= 0 {
		return
	}
	p := PackRGB565(c.R, c.G, c.B)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			t.store(row+x*2, p)
		}
	}
}

func (t *RGB565Target) store(off int, p uint16) {
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

package gl

import "testing"

func screenTriangle() Triangle {
	v := func(x, y float32) Vertex {
		return Vertex{X: x, Y: y, R: 1, G: 1, B: 1, A: 1}
	}
	return Triangle{A: v(4, 4), B: v(28, 4), C: v(16, 28)}
}

func TestRasterizerClear(t *testing.T) {
	r := NewSoftwareRasterizer(8, 8)
	r.Clear(RGB(10, 20, 30))
	if got := r.Pixel(0, 0); got != RGB(10, 20, 30) {
		t.Fatalf("pixel=%v", got)
	}
	if got := r.Pixel(7, 7); got != RGB(10, 20, 30) {
		t.Fatalf("pixel=%v", got)
	}
}

func TestRasterizerFillCoversInterior(t *testing.T) {
	r := NewSoftwareRasterizer(32, 32)
	r.Submit(screenTriangle())
	if got := r.Pixel(16, 10); got.R != 0xFF {
		t.Fatalf("interior pixel not filled: %v", got)
	}
	if got := r.Pixel(0, 31); got.R != 0 {
		t.Fatalf("exterior pixel filled: %v", got)
	}
}

func TestRasterizerFillIgnoresWinding(t *testing.T) {
	tri := screenTriangle()
	flipped := Triangle{A: tri.A, B: tri.C, C: tri.B}

	a := NewSoftwareRasterizer(32, 32)
	a.Submit(tri)
	b := NewSoftwareRasterizer(32, 32)
	b.Submit(flipped)

	if a.Pixel(16, 10).R != 0xFF || b.Pixel(16, 10).R != 0xFF {
		t.Fatalf("fill depends on winding: %v vs %v", a.Pixel(16, 10), b.Pixel(16, 10))
	}
}

func TestRasterizerInterpolatesColors(t *testing.T) {
	r := NewSoftwareRasterizer(32, 32)
	tri := Triangle{
		A: Vertex{X: 0, Y: 31, R: 1, A: 1},
		B: Vertex{X: 31, Y: 31, G: 1, A: 1},
		C: Vertex{X: 16, Y: 0, B: 1, A: 1},
	}
	r.Submit(tri)

	corner := r.Pixel(1, 30)
	if corner.R < 0xC0 || corner.G > 0x40 {
		t.Fatalf("corner near A should be mostly red: %v", corner)
	}
	mid := r.Pixel(16, 25)
	if mid.R == 0 || mid.G == 0 {
		t.Fatalf("midpoint should blend A and B: %v", mid)
	}
}

func TestRasterizerWireframe(t *testing.T) {
	r := NewSoftwareRasterizer(32, 32)
	r.SetRenderMode(RenderWireframe)
	r.Submit(screenTriangle())

	// The A-B edge runs along y=4.
	if got := r.Pixel(16, 4); got.R != 0xFF {
		t.Fatalf("edge pixel not drawn: %v", got)
	}
	if got := r.Pixel(16, 10); got.R != 0 {
		t.Fatalf("interior pixel drawn in wireframe mode: %v", got)
	}
}

func TestRasterizerDegenerate(t *testing.T) {
	r := NewSoftwareRasterizer(16, 16)
	v := func(x, y float32) Vertex { return Vertex{X: x, Y: y, R: 1, A: 1} }
	r.Submit(Triangle{A: v(2, 2), B: v(8, 8), C: v(14, 14)})
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if r.Pixel(x, y) != (Color{}) {
				t.Fatalf("degenerate triangle painted (%d,%d)", x, y)
			}
		}
	}
}

func TestRasterizerClipsBounds(t *testing.T) {
	r := NewSoftwareRasterizer(16, 16)
	v := func(x, y float32) Vertex { return Vertex{X: x, Y: y, R: 1, A: 1} }
	// Partially off every side; must not panic.
	r.Submit(Triangle{A: v(-10, -10), B: v(30, -5), C: v(8, 30)})
}

func TestBlitTo(t *testing.T) {
	r := NewSoftwareRasterizer(8, 8)
	r.Clear(RGB(50, 60, 70))
	dst := NewImageTarget(8, 8)
	r.BlitTo(dst)

	off := dst.Img.PixOffset(3, 3)
	if dst.Img.Pix[off] != 50 || dst.Img.Pix[off+1] != 60 || dst.Img.Pix[off+2] != 70 {
		t.Fatalf("blit pixel=%v", dst.Img.Pix[off:off+4])
	}
}

func TestBlitToSmallerTarget(t *testing.T) {
	r := NewSoftwareRasterizer(8, 8)
	r.Clear(RGB(1, 2, 3))
	dst := NewImageTarget(4, 4)
	r.BlitTo(dst) // must not write out of bounds
	off := dst.Img.PixOffset(3, 3)
	if dst.Img.Pix[off] != 1 {
		t.Fatalf("blit pixel=%v", dst.Img.Pix[off:off+4])
	}
}

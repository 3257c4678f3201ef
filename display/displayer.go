package display

import (
	"image/color"

	"tinygo.org/x/drivers"

	"softgl/gl"
)

// Displayer adapts a Framebuffer to the tinygo drivers.Displayer interface,
// so tinyfont and other drivers-based helpers can draw overlays on it.
type Displayer struct {
	fb *Framebuffer
}

var _ drivers.Displayer = (*Displayer)(nil)

// Displayer returns a drivers-compatible view of the framebuffer.
func (f *Framebuffer) Displayer() *Displayer { return &Displayer{fb: f} }

func (d *Displayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.width), int16(d.fb.height)
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	d.fb.SetPixel(int(x), int(y), gl.RGBA(c.R, c.G, c.B, c.A))
}

// Display is a no-op: the window loop presents the framebuffer.
func (d *Displayer) Display() error { return nil }

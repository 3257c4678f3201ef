// Package display presents a software-rendered framebuffer on the desktop.
//
// A Framebuffer is an RGB565 pixel buffer that satisfies gl.Target; Run opens
// a window that shows it every frame. The package also adapts the framebuffer
// to the tinygo drivers Displayer interface so text and overlay helpers can
// draw on it directly.
package display

import (
	"sync"

	"softgl/gl"
)

// Framebuffer is a mutex-guarded RGB565 pixel buffer. The renderer writes it
// through the gl.Target methods; the window loop snapshots it for display.
// Pixel packing and layout are delegated to a gl.RGB565Target over the same
// backing bytes.
type Framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
	target gl.RGB565Target
}

func NewFramebuffer(width, height int) *Framebuffer {
	stride := width * 2
	buf := make([]byte, stride*height)
	return &Framebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    buf,
		target: gl.RGB565Target{Buf: buf, Stride: stride, W: width, H: height},
	}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Size implements gl.Target.
func (f *Framebuffer) Size() (w, h int) { return f.width, f.height }

// SetPixel implements gl.Target.
func (f *Framebuffer) SetPixel(x, y int, c gl.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.target.SetPixel(x, y, c)
}

// Clear implements gl.Target.
func (f *Framebuffer) Clear(c gl.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.target.Clear(c)
}

func (f *Framebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

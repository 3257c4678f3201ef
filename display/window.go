package display

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"softgl/gl"
	"softgl/internal/buildinfo"
)

// Config controls the desktop window.
type Config struct {
	Title string
	Scale int // window pixels per framebuffer pixel, default 2
	TPS   int // ticks per second, default 60
}

// Run opens a desktop window that displays the framebuffer, calling step once
// per tick. It blocks until the window closes or step returns an error.
func Run(fb *Framebuffer, cfg Config, step func() error) error {
	title := cfg.Title
	if title == "" {
		title = "softgl"
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 2
	}
	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}

	g := &game{fb: fb, step: step}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(fb.width*scale, fb.height*scale)
	ebiten.SetTPS(tps)
	return ebiten.RunGame(g)
}

type game struct {
	fb      *Framebuffer
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *game) Update() error {
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshot(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := gl.UnpackRGB565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.width, g.fb.height
}

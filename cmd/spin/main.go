// Command spin renders a spinning colored cube through the immediate-mode
// pipeline and presents it in a desktop window. Space toggles wireframe.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"softgl/display"
	"softgl/gl"
)

// Cube faces wound clockwise as seen from outside, so they are front-facing
// under the pipeline's screen-space winding test with FrontFace(CCW).
var cubeFaces = [6][4][3]float32{
	{{-1, -1, 1}, {-1, 1, 1}, {1, 1, 1}, {1, -1, 1}},     // +z
	{{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1}}, // -z
	{{1, -1, -1}, {1, -1, 1}, {1, 1, 1}, {1, 1, -1}},     // +x
	{{-1, -1, -1}, {-1, 1, -1}, {-1, 1, 1}, {-1, -1, 1}}, // -x
	{{-1, 1, -1}, {1, 1, -1}, {1, 1, 1}, {-1, 1, 1}},     // +y
	{{-1, -1, -1}, {-1, -1, 1}, {1, -1, 1}, {1, -1, -1}}, // -y
}

var faceColors = [6][3]float32{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 0},
	{1, 0, 1},
	{0, 1, 1},
}

func main() {
	var debug bool
	flag.BoolVar(&debug, "gldebug", false, "Log pipeline diagnostics.")
	flag.Parse()

	fb := display.NewFramebuffer(320, 240)
	ctx := gl.New(fb)
	ctx.Debug = debug
	ctx.SetLogger(display.NewLogger())

	ctx.MatrixMode(gl.Projection)
	ctx.LoadIdentity()
	aspect := float32(320) / 240
	ctx.Frustum(-0.5*aspect, 0.5*aspect, -0.5, 0.5, 1, 50)

	ctx.Enable(gl.CullFaceCap)
	ctx.FrontFace(gl.CCW)
	ctx.CullFace(gl.Back)
	ctx.ClearColor(0.08, 0.08, 0.12, 1)

	hud := ctx.GetString(gl.Renderer) + " | " + ctx.GetString(gl.Version)
	hudColor := color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}

	raster, _ := ctx.Rasterizer().(*gl.SoftwareRasterizer)
	wireframe := false

	var angle float32
	var frame uint64

	step := func() error {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) && raster != nil {
			wireframe = !wireframe
			mode := gl.RenderFill
			if wireframe {
				mode = gl.RenderWireframe
			}
			raster.SetRenderMode(mode)
		}

		angle += 1.2

		ctx.Clear(gl.ColorBufferBit)
		ctx.MatrixMode(gl.ModelView)
		ctx.LoadIdentity()
		ctx.Translate(0, 0, -6)
		ctx.Rotate(angle, 0, 1, 0)
		ctx.Rotate(angle*0.6, 1, 0, 0)

		ctx.Begin(gl.Quads)
		for f, face := range cubeFaces {
			c := faceColors[f]
			ctx.Color(c[0], c[1], c[2], 1)
			for _, v := range face {
				ctx.Vertex(v[0], v[1], v[2], 1)
			}
		}
		ctx.End()

		if e := ctx.GetError(); e != gl.NoError {
			return fmt.Errorf("pipeline error %#04x", e)
		}

		frame++
		ctx.Present()
		d := fb.Displayer()
		tinyfont.WriteLine(d, &freemono.Regular9pt7b, 4, 14, hud, hudColor)
		tinyfont.WriteLine(d, &freemono.Regular9pt7b, 4, 30, fmt.Sprintf("frame %d", frame), hudColor)
		return nil
	}

	if err := display.Run(fb, display.Config{Title: "softgl spin"}, step); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

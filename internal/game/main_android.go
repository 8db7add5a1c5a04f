//go:build android

package game

import (
	"encoding/binary"
	"fmt"
	"image"
	"log/slog"
	"math"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"fingermaze/internal/config"
	"fingermaze/internal/host"
	"fingermaze/internal/maze"
)

type mobileMaze struct {
	session *host.Session

	// touch state
	activeTouch touch.Sequence
	touchDown   bool
	lastX       float32
	lastY       float32

	// surface
	fbWidth  int
	fbHeight int
	fbScale  float64
	viewport image.Rectangle

	// GL blit resources
	prog    gl.Program
	tex     gl.Texture
	vbo     gl.Buffer
	aPos    gl.Attrib
	aUV     gl.Attrib
	uTex    gl.Uniform
	texW    int
	texH    int
	glReady bool
}

func (g *mobileMaze) logical(x, y float32) (float64, float64) {
	return float64(x) / g.fbScale, float64(y) / g.fbScale
}

func (g *mobileMaze) handleTouch(e touch.Event) {
	x, y := g.logical(e.X, e.Y)
	switch e.Type {
	case touch.TypeBegin:
		if g.touchDown {
			return
		}
		if g.session.Tap(x, y) {
			return
		}
		g.activeTouch = e.Sequence
		g.touchDown = true
		g.lastX, g.lastY = e.X, e.Y
		g.session.Pointer(maze.EventPointerDown, int(e.Sequence), x, y)
	case touch.TypeMove:
		if g.touchDown && e.Sequence == g.activeTouch {
			g.lastX, g.lastY = e.X, e.Y
			g.session.Pointer(maze.EventPointerMove, int(e.Sequence), x, y)
		}
	case touch.TypeEnd:
		if g.touchDown && e.Sequence == g.activeTouch {
			g.touchDown = false
			g.session.Pointer(maze.EventPointerUp, int(e.Sequence), x, y)
		}
	}
}

// cancelTouch abandons a held finger when the app loses the surface.
func (g *mobileMaze) cancelTouch() {
	if !g.touchDown {
		return
	}
	g.touchDown = false
	x, y := g.logical(g.lastX, g.lastY)
	g.session.Pointer(maze.EventPointerCancel, int(g.activeTouch), x, y)
}

func (g *mobileMaze) resize(e size.Event) {
	g.fbWidth, g.fbHeight = e.WidthPx, e.HeightPx
	g.fbScale = float64(e.PixelsPerPt) * pointsPerInch / logicalPerInch
	if g.fbScale <= 0 {
		g.fbScale = 1
	}
	if g.fbWidth > 0 && g.fbHeight > 0 {
		g.viewport = g.session.Fit(float64(g.fbWidth)/g.fbScale, float64(g.fbHeight)/g.fbScale, g.fbScale)
	}
}

func f32bytes(vals []float32) []byte {
	out := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

func compileShader(glctx gl.Context, kind gl.Enum, src string) (gl.Shader, error) {
	sh := glctx.CreateShader(kind)
	glctx.ShaderSource(sh, src)
	glctx.CompileShader(sh)
	if glctx.GetShaderi(sh, gl.COMPILE_STATUS) == 0 {
		log := glctx.GetShaderInfoLog(sh)
		glctx.DeleteShader(sh)
		return gl.Shader{}, fmt.Errorf("shader compile failed: %s", log)
	}
	return sh, nil
}

func linkProgram(glctx gl.Context, vertSrc, fragSrc string) (gl.Program, error) {
	vs, err := compileShader(glctx, gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return gl.Program{}, err
	}
	fs, err := compileShader(glctx, gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return gl.Program{}, err
	}
	prog := glctx.CreateProgram()
	glctx.AttachShader(prog, vs)
	glctx.AttachShader(prog, fs)
	glctx.LinkProgram(prog)
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)
	if glctx.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		log := glctx.GetProgramInfoLog(prog)
		glctx.DeleteProgram(prog)
		return gl.Program{}, fmt.Errorf("program link failed: %s", log)
	}
	return prog, nil
}

func (g *mobileMaze) initGL(glctx gl.Context) error {
	if g.glReady {
		return nil
	}
	vertSrc := `
attribute vec2 aPos;
attribute vec2 aUV;
varying vec2 vUV;
void main() {
  vUV = aUV;
  gl_Position = vec4(aPos, 0.0, 1.0);
}`
	fragSrc := `
precision mediump float;
varying vec2 vUV;
uniform sampler2D uTex;
void main() {
  gl_FragColor = vec4(texture2D(uTex, vUV).rgb, 1.0);
}`
	prog, err := linkProgram(glctx, vertSrc, fragSrc)
	if err != nil {
		return err
	}

	verts := []float32{
		-1, -1, 0, 1,
		1, -1, 1, 1,
		-1, 1, 0, 0,
		1, 1, 1, 0,
	}
	vbo := glctx.CreateBuffer()
	glctx.BindBuffer(gl.ARRAY_BUFFER, vbo)
	glctx.BufferData(gl.ARRAY_BUFFER, f32bytes(verts), gl.STATIC_DRAW)

	tex := glctx.CreateTexture()
	glctx.ActiveTexture(gl.TEXTURE0)
	glctx.BindTexture(gl.TEXTURE_2D, tex)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	g.prog = prog
	g.tex = tex
	g.vbo = vbo
	g.aPos = glctx.GetAttribLocation(prog, "aPos")
	g.aUV = glctx.GetAttribLocation(prog, "aUV")
	g.uTex = glctx.GetUniformLocation(prog, "uTex")
	g.texW, g.texH = 0, 0
	g.glReady = true

	// A fresh context has an empty texture.
	g.session.View.Invalidate()
	return nil
}

func (g *mobileMaze) destroyGL(glctx gl.Context) {
	if !g.glReady {
		return
	}
	glctx.DeleteBuffer(g.vbo)
	glctx.DeleteTexture(g.tex)
	glctx.DeleteProgram(g.prog)
	g.glReady = false
}

func (g *mobileMaze) upload(glctx gl.Context, img *image.RGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	glctx.ActiveTexture(gl.TEXTURE0)
	glctx.BindTexture(gl.TEXTURE_2D, g.tex)
	if w != g.texW || h != g.texH {
		glctx.TexImage2D(gl.TEXTURE_2D, 0, int(gl.RGBA), w, h, gl.RGBA, gl.UNSIGNED_BYTE, img.Pix)
		g.texW, g.texH = w, h
		return
	}
	glctx.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, img.Pix)
}

func (g *mobileMaze) drawGL(glctx gl.Context) error {
	if !g.glReady || g.fbWidth <= 0 || g.fbHeight <= 0 {
		return nil
	}
	img, changed, err := g.session.Frame()
	if err != nil {
		return err
	}
	if changed {
		g.upload(glctx, img)
	}

	glctx.ClearColor(0, 0, 0, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)
	vp := g.viewport
	if g.texW == 0 || vp.Empty() {
		return nil
	}
	glctx.Viewport(vp.Min.X, g.fbHeight-vp.Max.Y, vp.Dx(), vp.Dy())

	glctx.ActiveTexture(gl.TEXTURE0)
	glctx.BindTexture(gl.TEXTURE_2D, g.tex)
	glctx.UseProgram(g.prog)
	glctx.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	glctx.EnableVertexAttribArray(g.aPos)
	glctx.EnableVertexAttribArray(g.aUV)
	glctx.VertexAttribPointer(g.aPos, 2, gl.FLOAT, false, 16, 0)
	glctx.VertexAttribPointer(g.aUV, 2, gl.FLOAT, false, 16, 8)
	glctx.Uniform1i(g.uTex, 0)
	glctx.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	glctx.DisableVertexAttribArray(g.aPos)
	glctx.DisableVertexAttribArray(g.aUV)
	return nil
}

func RunAndroid(cfg config.Config) {
	if !cfg.Mute {
		if err := InitAudio(); err != nil {
			slog.Warn("audio init failed, continuing without sound", "err", err)
		}
	}
	session, err := host.NewSession(cfg, nil, PlaySound)
	if err != nil {
		panic(err)
	}
	game := &mobileMaze{session: session, fbScale: 1}

	app.Main(func(a app.App) {
		var glctx gl.Context

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					ctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					glctx = ctx
					if err := game.initGL(glctx); err != nil {
						panic(err)
					}
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					game.cancelTouch()
					if glctx != nil {
						game.destroyGL(glctx)
						glctx = nil
					}
				}
				if e.To == lifecycle.StageDead {
					return
				}

			case size.Event:
				game.resize(e)

			case touch.Event:
				game.handleTouch(e)
				a.Send(paint.Event{})

			case paint.Event:
				if glctx == nil || e.External {
					continue
				}
				if err := game.drawGL(glctx); err != nil {
					slog.Error("frame failed", "err", err)
				}
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}

//go:build !android

package game

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"fingermaze/internal/canvas"
	"fingermaze/internal/config"
	"fingermaze/internal/host"
)

func RunDesktop(cfg config.Config) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.WindowWidth, cfg.Aspect, canvas.StatusBandHeight(1))
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if !cfg.Mute {
		if err := InitAudio(); err != nil {
			slog.Warn("audio init failed, continuing without sound", "err", err)
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	bg := canvas.Palette.BackgroundBottom
	gl.ClearColor(float32(bg.R), float32(bg.G), float32(bg.B), 1.0)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	session, err := host.NewSession(cfg, windowClipboard{window: window}, PlaySound)
	if err != nil {
		return err
	}
	input := NewInput(window, session)

	for !window.ShouldClose() {
		_, fbH := window.GetFramebufferSize()
		surfW, surfH, dpr, cursorScale := surfaceMetrics(window)
		if surfW <= 0 || surfH <= 0 {
			glfw.WaitEventsTimeout(idleWaitSeconds)
			continue
		}
		input.SetCursorScale(cursorScale)
		vp := session.Fit(surfW, surfH, dpr)

		img, changed, err := session.Frame()
		if err != nil {
			return fmt.Errorf("frame: %w", err)
		}
		if changed {
			rend.Upload(img)
		}
		rend.Draw(vp, fbH)
		window.SwapBuffers()
		glfw.WaitEventsTimeout(idleWaitSeconds)
	}
	return nil
}

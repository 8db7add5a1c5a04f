//go:build !android

package game

import (
	"fmt"
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// initWindow opens a resizable window sized for width logical pixels at
// the canvas aspect plus a status band of band logical pixels. Resizes
// keep the initial window aspect.
func initWindow(width int, aspect float64, band int) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	width = clamp(width, MinWindowWidth, MaxWindowWidth)
	height := int(math.Round(float64(width)*aspect)) + band
	window, err := glfw.CreateWindow(width, height, WindowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.SetAspectRatio(width, height)
	window.SetSizeLimits(MinWindowWidth, int(MinWindowWidth*aspect)+band, glfw.DontCare, glfw.DontCare)
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

// surfaceMetrics reports the framebuffer size in logical pixels, the
// pixels per logical pixel, and the factor from cursor coordinates to
// logical pixels.
func surfaceMetrics(window *glfw.Window) (surfW, surfH, dpr, cursorScale float64) {
	winW, _ := window.GetSize()
	fbW, fbH := window.GetFramebufferSize()
	if winW <= 0 || fbW <= 0 || fbH <= 0 {
		return 0, 0, 1, 1
	}
	fbPerWin := float64(fbW) / float64(winW)
	xs, _ := window.GetContentScale()
	dpr = float64(xs)
	if dpr <= 0 {
		dpr = fbPerWin
	}
	return float64(fbW) / dpr, float64(fbH) / dpr, dpr, fbPerWin / dpr
}

//go:build !android

package game

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"fingermaze/internal/host"
	"fingermaze/internal/maze"
)

// mousePointer is the pointer id used for the left mouse button.
const mousePointer = 1

// Input turns glfw callbacks into session calls. Callbacks run inside
// glfw.PollEvents on the main thread, so events reach the machine in order.
type Input struct {
	session     *host.Session
	cursorScale float64
	down        bool
	x, y        float64
}

func NewInput(window *glfw.Window, s *host.Session) *Input {
	in := &Input{session: s, cursorScale: 1}
	window.SetMouseButtonCallback(in.onMouseButton)
	window.SetCursorPosCallback(in.onCursorPos)
	window.SetCursorEnterCallback(in.onCursorEnter)
	window.SetFocusCallback(in.onFocus)
	window.SetKeyCallback(in.onKey)
	return in
}

// SetCursorScale sets the factor from cursor coordinates to logical pixels.
func (in *Input) SetCursorScale(f float64) {
	if f > 0 {
		in.cursorScale = f
	}
}

func (in *Input) pointer(kind maze.EventKind) {
	in.session.Pointer(kind, mousePointer, in.x*in.cursorScale, in.y*in.cursorScale)
}

func (in *Input) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	in.x, in.y = w.GetCursorPos()
	switch action {
	case glfw.Press:
		if in.session.Tap(in.x*in.cursorScale, in.y*in.cursorScale) {
			return
		}
		in.down = true
		in.pointer(maze.EventPointerDown)
	case glfw.Release:
		in.down = false
		in.pointer(maze.EventPointerUp)
	}
}

func (in *Input) onCursorPos(_ *glfw.Window, x, y float64) {
	in.x, in.y = x, y
	if in.down {
		in.pointer(maze.EventPointerMove)
	}
}

func (in *Input) onCursorEnter(_ *glfw.Window, entered bool) {
	if !entered {
		in.down = false
		in.pointer(maze.EventPointerLeave)
	}
}

func (in *Input) onFocus(_ *glfw.Window, focused bool) {
	if !focused && in.down {
		in.down = false
		in.pointer(maze.EventPointerCancel)
	}
}

func (in *Input) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyR:
		in.session.Reset()
	case glfw.KeySpace:
		in.session.Hint()
	case glfw.KeyC:
		in.session.Copy()
	case glfw.KeyEnter, glfw.KeyKPEnter:
		in.session.CloseDialog()
	}
}

// windowClipboard writes to the system clipboard through glfw.
type windowClipboard struct {
	window *glfw.Window
}

func (c windowClipboard) WriteText(s string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard: %v", r)
		}
	}()
	c.window.SetClipboardString(s)
	return nil
}

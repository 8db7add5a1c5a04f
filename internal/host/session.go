// Package host holds the platform-neutral part of a running maze: the
// session both the desktop and the android front ends drive.
package host

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"time"

	"fingermaze/internal/canvas"
	"fingermaze/internal/config"
	"fingermaze/internal/feedback"
	"fingermaze/internal/maze"
)

// Session wires the gesture machine to the presenter, the sound cues and
// the frame renderer. Both hosts drive it from a single goroutine.
type Session struct {
	Machine *maze.Machine
	View    *feedback.Presenter

	bus    *maze.Dispatcher
	canvas *canvas.Renderer
	clip   feedback.Clipboard
	play   func(SoundKind)

	aspect    float64
	forcedDPR float64

	// Canvas placement inside the surface, in logical pixels.
	offX, offY float64
}

// NewSession builds the machine for cfg at an initial logical width.
// clip may be nil; copying then falls back to selecting the code. play
// receives sound cues and may be nil.
func NewSession(cfg config.Config, clip feedback.Clipboard, play func(SoundKind)) (*Session, error) {
	scale, _, _ := maze.CanvasScale(float64(cfg.WindowWidth), cfg.Aspect, maze.ClampDPR(cfg.DPR))
	geom, err := maze.NewGeometry(cfg.Layout(), scale)
	if err != nil {
		return nil, fmt.Errorf("geometry: %w", err)
	}
	if play == nil {
		play = func(SoundKind) {}
	}
	s := &Session{
		Machine:   maze.NewMachine(geom, cfg.Passcode),
		View:      feedback.NewPresenter(time.Now),
		bus:       maze.NewDispatcher(),
		canvas:    canvas.NewRenderer(),
		clip:      clip,
		play:      play,
		aspect:    cfg.Aspect,
		forcedDPR: cfg.DPR,
	}
	maze.Attach(s.bus, s.Machine, s.View)
	s.bus.Subscribe(maze.EffectStatus, s.cue)
	s.bus.Subscribe(maze.EffectSolved, s.cue)
	return s, nil
}

func (s *Session) cue(e maze.Effect) {
	if k, ok := soundFor(e); ok {
		s.play(k)
	}
}

// Handle runs one event through the machine and dispatches its effects.
func (s *Session) Handle(e maze.Event) {
	s.bus.EmitAll(s.Machine.Handle(e))
}

// Pointer delivers a pointer event at surface position (x, y) in logical
// pixels.
func (s *Session) Pointer(kind maze.EventKind, id int, x, y float64) {
	dpr := s.Machine.Geometry().Scale.DPR
	s.Handle(maze.Event{
		Kind:    kind,
		Pointer: id,
		Pos:     maze.CanvasPoint(x, y, s.offX, s.offY, dpr),
	})
}

// Fit places the canvas inside a surface of surfW x surfH logical pixels
// whose framebuffer holds fbScale pixels per logical pixel. The maze area
// keeps its aspect, the status band sits below it, and the pair is
// centred. It returns the frame viewport in framebuffer pixels, origin at
// the top-left.
func (s *Session) Fit(surfW, surfH, fbScale float64) image.Rectangle {
	dpr := fbScale
	if s.forcedDPR > 0 {
		dpr = s.forcedDPR
	}
	dpr = maze.ClampDPR(dpr)
	band := float64(canvas.StatusBandHeight(dpr)) / dpr

	cssW := surfW
	if surfH-band < cssW*s.aspect {
		cssW = math.Max(surfH-band, 1) / s.aspect
	}
	cssH := cssW*s.aspect + band
	s.offX = (surfW - cssW) / 2
	s.offY = (surfH - cssH) / 2

	scale, _, _ := maze.CanvasScale(cssW, s.aspect, dpr)
	if scale != s.Machine.Geometry().Scale {
		slog.Debug("canvas resized", "width", scale.X, "height", scale.Y, "dpr", scale.DPR)
		s.Handle(maze.Event{Kind: maze.EventResize, Scale: scale})
	}

	x0 := int(math.Round(s.offX * fbScale))
	y0 := int(math.Round(s.offY * fbScale))
	return image.Rect(x0, y0,
		x0+int(math.Round(cssW*fbScale)),
		y0+int(math.Round(cssH*fbScale)))
}

// Tap handles a press at surface position (x, y) that belongs to the
// completion UI rather than the maze. It reports whether the press was
// consumed: inside an open dialog the copy label copies and outside it
// closes; after a solve with the dialog closed a press starts over.
func (s *Session) Tap(x, y float64) bool {
	if s.View.Dialog.Visible {
		g := s.Machine.Geometry()
		p := maze.CanvasPoint(x, y, s.offX, s.offY, g.Scale.DPR)
		panel, label := canvas.DialogHitAreas(int(g.Scale.X), int(g.Scale.Y), s.View.Overlay(), g.Scale.DPR)
		pt := image.Pt(int(p.X), int(p.Y))
		switch {
		case pt.In(label):
			s.Copy()
		case !pt.In(panel):
			s.CloseDialog()
		}
		return true
	}
	if s.Machine.State() == maze.StateSolved {
		s.Reset()
		return true
	}
	return false
}

// Reset abandons the current attempt.
func (s *Session) Reset() {
	s.View.Dialog.Close()
	s.Handle(maze.Event{Kind: maze.EventReset})
}

// Hint shows how to begin.
func (s *Session) Hint() { s.Handle(maze.Event{Kind: maze.EventHint}) }

// Copy copies the revealed passcode. It does nothing while the dialog is
// closed.
func (s *Session) Copy() {
	if !s.View.Dialog.Visible {
		return
	}
	if !s.View.Dialog.Copy(s.clip) {
		slog.Info("clipboard unavailable, code selected instead")
	}
	s.play(SoundCopy)
	s.View.Invalidate()
}

// CloseDialog dismisses the completion dialog. The machine stays solved.
func (s *Session) CloseDialog() {
	if !s.View.Dialog.Visible {
		return
	}
	s.View.Dialog.Close()
	s.play(SoundSelect)
	s.View.Invalidate()
}

// Frame renders a new frame when something visible changed. ok is false
// when the previous frame is still current.
func (s *Session) Frame() (img *image.RGBA, ok bool, err error) {
	if !s.View.NeedsFrame() {
		return nil, false, nil
	}
	o := s.View.Overlay()
	img, err = s.canvas.Frame(s.Machine.Geometry(), s.View.Snapshot(), o)
	if err != nil {
		return nil, false, err
	}
	s.View.MarkDrawn(o)
	return img, true, nil
}

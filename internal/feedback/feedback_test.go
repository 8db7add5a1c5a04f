package feedback

import (
	"errors"
	"testing"
	"time"

	"fingermaze/internal/maze"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock { return &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)} }

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteText(s string) error {
	if f.err != nil {
		return f.err
	}
	f.text = s
	return nil
}

func TestStatusFlash(t *testing.T) {
	clk := newClock()
	s := NewStatus(clk.Now)
	if s.Message != maze.MsgReady || s.Tone() != maze.ToneInfo {
		t.Fatalf("initial status = %q/%v", s.Message, s.Tone())
	}

	s.Set(maze.MsgLeftLane, maze.ToneBad)
	if s.Tone() != maze.ToneBad {
		t.Fatalf("tone = %v, want bad", s.Tone())
	}
	clk.Advance(FlashDuration - time.Millisecond)
	if s.Tone() != maze.ToneBad {
		t.Fatalf("tone before expiry = %v, want bad", s.Tone())
	}
	clk.Advance(time.Millisecond)
	if s.Tone() != maze.ToneInfo {
		t.Fatalf("tone after expiry = %v, want info", s.Tone())
	}
	if s.Message != maze.MsgLeftLane {
		t.Errorf("message changed on expiry: %q", s.Message)
	}
}

func TestCompletionCopy(t *testing.T) {
	clk := newClock()
	c := NewCompletion(clk.Now)

	if c.Copy(&fakeClipboard{}) {
		t.Fatal("copy succeeded with a hidden dialog")
	}

	c.Reveal("CODE")
	if !c.Visible || c.Reveals != 1 || c.ButtonLabel() != LabelCopy {
		t.Fatalf("after reveal: %+v label=%q", c, c.ButtonLabel())
	}

	clip := &fakeClipboard{}
	if !c.Copy(clip) {
		t.Fatal("copy failed")
	}
	if clip.text != "CODE" || c.Selected {
		t.Errorf("clipboard=%q selected=%v", clip.text, c.Selected)
	}
	if c.ButtonLabel() != LabelCopied {
		t.Errorf("label = %q, want %q", c.ButtonLabel(), LabelCopied)
	}
	clk.Advance(CopiedDuration)
	if c.ButtonLabel() != LabelCopy {
		t.Errorf("label after 1s = %q, want %q", c.ButtonLabel(), LabelCopy)
	}
}

func TestCompletionCopyFallback(t *testing.T) {
	tests := []struct {
		name string
		clip Clipboard
	}{
		{"nil clipboard", nil},
		{"failing clipboard", &fakeClipboard{err: errors.New("denied")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCompletion(newClock().Now)
			c.Reveal("CODE")
			if c.Copy(tt.clip) {
				t.Fatal("copy reported success")
			}
			if !c.Selected {
				t.Error("fallback did not select the code")
			}
			if c.ButtonLabel() != LabelCopied {
				t.Errorf("label = %q, want %q", c.ButtonLabel(), LabelCopied)
			}
		})
	}
}

func TestCompletionClose(t *testing.T) {
	c := NewCompletion(nil)
	c.Reveal("CODE")
	c.Copy(nil)
	c.Close()
	if c.Visible || c.Selected {
		t.Fatalf("after close: %+v", c)
	}
}

func TestPresenterNeedsFrame(t *testing.T) {
	clk := newClock()
	p := NewPresenter(clk.Now)
	if !p.NeedsFrame() {
		t.Fatal("fresh presenter should need a frame")
	}
	p.MarkDrawn(p.Overlay())
	if p.NeedsFrame() {
		t.Fatal("needs frame right after drawing")
	}

	p.Status(maze.MsgLifted, maze.ToneBad)
	if !p.NeedsFrame() {
		t.Fatal("status change did not request a frame")
	}
	p.MarkDrawn(p.Overlay())

	// The tone flash ending is a visible change too.
	clk.Advance(FlashDuration)
	if !p.NeedsFrame() {
		t.Fatal("flash expiry did not request a frame")
	}
	o := p.Overlay()
	if o.Tone != maze.ToneInfo || o.Status != maze.MsgLifted {
		t.Errorf("overlay = %+v", o)
	}
	p.MarkDrawn(o)
	if p.NeedsFrame() {
		t.Fatal("needs frame after drawing expired flash")
	}
}

func TestPresenterWithMachine(t *testing.T) {
	g, err := maze.NewGeometry(maze.DefaultLayout(), maze.Scale{X: 800, Y: 600, DPR: 1})
	if err != nil {
		t.Fatalf("NewGeometry: %v", err)
	}
	m := maze.NewMachine(g, "PASS")
	d := maze.NewDispatcher()
	p := NewPresenter(newClock().Now)
	maze.Attach(d, m, p)

	d.EmitAll(m.Handle(maze.Down(80, 510)))
	d.EmitAll(m.Handle(maze.Move(128, 510)))
	d.EmitAll(m.Handle(maze.Move(720, 312)))

	o := p.Overlay()
	if !o.DialogOpen || o.Code != "PASS" || !o.SolvedState {
		t.Fatalf("overlay = %+v", o)
	}
	if p.Dialog.Reveals != 1 {
		t.Errorf("reveals = %d, want 1", p.Dialog.Reveals)
	}
	if n := len(p.Snapshot().Trail); n != 3 {
		t.Errorf("trail = %d, want 3", n)
	}
}

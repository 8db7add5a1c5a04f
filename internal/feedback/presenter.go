package feedback

import (
	"time"

	"fingermaze/internal/maze"
)

// Overlay is everything drawn on top of the maze.
type Overlay struct {
	Status      string
	Tone        maze.Tone
	DialogOpen  bool
	Code        string
	CopyLabel   string
	Selected    bool
	SolvedState bool
}

// Presenter implements maze.Sinks and tracks when a new frame is needed.
type Presenter struct {
	StatusLine *Status
	Dialog     *Completion

	snap  maze.Snapshot
	dirty bool
	drawn Overlay
}

var _ maze.Sinks = (*Presenter)(nil)

func NewPresenter(now func() time.Time) *Presenter {
	return &Presenter{
		StatusLine: NewStatus(now),
		Dialog:     NewCompletion(now),
		dirty:      true,
	}
}

func (p *Presenter) Render(s maze.Snapshot) {
	p.snap = s
	p.dirty = true
}

func (p *Presenter) Status(msg string, tone maze.Tone) {
	p.StatusLine.Set(msg, tone)
	p.dirty = true
}

func (p *Presenter) Reveal(code string) {
	p.Dialog.Reveal(code)
	p.dirty = true
}

// Snapshot returns the last rendered session snapshot.
func (p *Presenter) Snapshot() maze.Snapshot { return p.snap }

// Invalidate forces the next NeedsFrame to report true.
func (p *Presenter) Invalidate() { p.dirty = true }

// Overlay computes the overlay for the current time.
func (p *Presenter) Overlay() Overlay {
	return Overlay{
		Status:      p.StatusLine.Message,
		Tone:        p.StatusLine.Tone(),
		DialogOpen:  p.Dialog.Visible,
		Code:        p.Dialog.Code,
		CopyLabel:   p.Dialog.ButtonLabel(),
		Selected:    p.Dialog.Selected,
		SolvedState: p.snap.State == maze.StateSolved,
	}
}

// NeedsFrame reports whether anything visible changed since MarkDrawn,
// including tone flashes and button labels that expired on their own.
func (p *Presenter) NeedsFrame() bool {
	return p.dirty || p.Overlay() != p.drawn
}

// MarkDrawn records the overlay that was just rendered.
func (p *Presenter) MarkDrawn(o Overlay) {
	p.drawn = o
	p.dirty = false
}

// Package feedback holds the user-facing presentation state: the status
// line, the completion dialog and the overlay handed to the renderer.
package feedback

import (
	"time"

	"fingermaze/internal/maze"
)

// FlashDuration is how long a warn/bad tone colours the status line.
const FlashDuration = 1200 * time.Millisecond

// Status is the transient status line.
type Status struct {
	Message    string
	tone       maze.Tone
	flashUntil time.Time
	now        func() time.Time
}

func NewStatus(now func() time.Time) *Status {
	if now == nil {
		now = time.Now
	}
	return &Status{Message: maze.MsgReady, now: now}
}

// Set replaces the message and restarts the tone flash.
func (s *Status) Set(msg string, tone maze.Tone) {
	s.Message = msg
	s.tone = tone
	s.flashUntil = s.now().Add(FlashDuration)
}

// Tone returns the tone to display now. It falls back to ToneInfo once
// the flash is over.
func (s *Status) Tone() maze.Tone {
	if s.now().Before(s.flashUntil) {
		return s.tone
	}
	return maze.ToneInfo
}

package feedback

import (
	"errors"
	"time"
)

// CopiedDuration is how long the copy button reads "Copied!".
const CopiedDuration = time.Second

const (
	LabelCopy   = "Copy code"
	LabelCopied = "Copied!"
)

var ErrNoClipboard = errors.New("clipboard unavailable")

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Completion is the dialog that exposes the passcode after a solve.
type Completion struct {
	Code     string
	Visible  bool
	Selected bool // fallback: code shown highlighted for manual copy
	Reveals  int

	copiedUntil time.Time
	now         func() time.Time
}

func NewCompletion(now func() time.Time) *Completion {
	if now == nil {
		now = time.Now
	}
	return &Completion{now: now}
}

// Reveal opens the dialog with code.
func (c *Completion) Reveal(code string) {
	c.Code = code
	c.Visible = true
	c.Selected = false
	c.copiedUntil = time.Time{}
	c.Reveals++
}

// Close hides the dialog.
func (c *Completion) Close() {
	c.Visible = false
	c.Selected = false
}

// Copy puts the code on the clipboard. When the clipboard is missing or
// fails the code is marked selected instead; either way the button
// confirms the copy. It reports whether the clipboard write succeeded.
func (c *Completion) Copy(clip Clipboard) bool {
	if !c.Visible || c.Code == "" {
		return false
	}
	err := ErrNoClipboard
	if clip != nil {
		err = clip.WriteText(c.Code)
	}
	c.Selected = err != nil
	c.copiedUntil = c.now().Add(CopiedDuration)
	return err == nil
}

// ButtonLabel is the copy button caption at the current time.
func (c *Completion) ButtonLabel() string {
	if c.now().Before(c.copiedUntil) {
		return LabelCopied
	}
	return LabelCopy
}

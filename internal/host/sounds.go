package host

import "fingermaze/internal/maze"

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundStart  SoundKind = iota // tracing began
	SoundSelect                  // hint, reset, close
	SoundCopy
	SoundWarn // pressed outside START
	SoundFail // left the lane
	SoundLifted
	SoundSolved
)

// soundFor picks the cue for a machine effect.
func soundFor(e maze.Effect) (SoundKind, bool) {
	switch e.Kind {
	case maze.EffectSolved:
		return SoundSolved, true
	case maze.EffectStatus:
		switch e.Outcome {
		case maze.OutcomeStartedOutsideZone:
			return SoundWarn, true
		case maze.OutcomeLeftStroke:
			return SoundFail, true
		case maze.OutcomeLiftedEarly:
			return SoundLifted, true
		}
		switch e.Message {
		case maze.MsgGo:
			return SoundStart, true
		case maze.MsgHint, maze.MsgReset:
			return SoundSelect, true
		}
	}
	return 0, false
}

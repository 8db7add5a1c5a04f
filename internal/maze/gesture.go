package maze

import "github.com/gogpu/gg"

// State is the phase of the current gesture attempt.
type State int

const (
	StateIdle     State = iota
	StateArmed          // pointer down, not yet validated; never seen between events
	StateTracking       // following the lane
	StateSolved         // reached END; terminal until reset
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateTracking:
		return "tracking"
	case StateSolved:
		return "solved"
	}
	return "unknown"
}

// Status lines shown to the user.
const (
	MsgReady       = "Hold to start inside the START circle."
	MsgHint        = "Press & hold on the START circle in the maze."
	MsgStartInside = "Touch & hold inside the START circle to begin."
	MsgGo          = "Go! Stay inside the lane…"
	MsgLeftLane    = "Oops, left the lane. Try again."
	MsgLifted      = "You lifted your finger. Restart from START."
	MsgSolved      = "Solved!"
	MsgReset       = "Reset. Hold to start inside the START circle."
)

// Session is the per-attempt state.
type Session struct {
	State      State
	Trail      []gg.Point
	ReachedEnd bool
	pointer    int
}

// Snapshot is a read-only copy of the session for rendering.
type Snapshot struct {
	State      State
	Trail      []gg.Point
	ReachedEnd bool
}

// Machine owns the gesture session and the geometry it is tested against.
// It is not safe for concurrent use; hosts deliver events serially.
type Machine struct {
	geom     *Geometry
	passcode string
	session  Session
}

// NewMachine returns an idle machine.
func NewMachine(geom *Geometry, passcode string) *Machine {
	if passcode == "" {
		passcode = DefaultPasscode
	}
	return &Machine{geom: geom, passcode: passcode}
}

// Geometry returns the geometry currently used for hit tests.
func (m *Machine) Geometry() *Geometry { return m.geom }

// State returns the current state.
func (m *Machine) State() State { return m.session.State }

// Snapshot copies the session.
func (m *Machine) Snapshot() Snapshot {
	trail := make([]gg.Point, len(m.session.Trail))
	copy(trail, m.session.Trail)
	return Snapshot{
		State:      m.session.State,
		Trail:      trail,
		ReachedEnd: m.session.ReachedEnd,
	}
}

// Handle processes one event to completion and returns the side effects
// for the presentation layer, in order.
func (m *Machine) Handle(e Event) []Effect {
	before := m.session.State
	var out []Effect
	switch e.Kind {
	case EventPointerDown:
		out = m.pointerDown(e)
	case EventPointerMove:
		out = m.pointerMove(e)
	case EventPointerUp, EventPointerCancel, EventPointerLeave:
		out = m.lift(e)
	case EventReset:
		out = m.reset()
	case EventResize:
		m.geom.Rebuild(e.Scale)
		out = []Effect{redraw()}
	case EventHint:
		out = []Effect{status(MsgHint, ToneInfo, OutcomeNone)}
	}
	if after := m.session.State; after != before {
		Logger().Debug("gesture transition", "event", e.Kind, "from", before, "to", after)
	}
	return out
}

func (m *Machine) pointerDown(e Event) []Effect {
	if m.session.State != StateIdle {
		return nil
	}
	if !m.geom.InsideStart(e.Pos) {
		Logger().Info("gesture rejected", "outcome", OutcomeStartedOutsideZone, "x", e.Pos.X, "y", e.Pos.Y)
		return []Effect{status(MsgStartInside, ToneWarn, OutcomeStartedOutsideZone)}
	}
	m.session.State = StateArmed
	m.session.pointer = e.Pointer
	m.session.ReachedEnd = false
	m.session.Trail = append(m.session.Trail[:0], e.Pos)
	m.session.State = StateTracking
	return []Effect{status(MsgGo, ToneInfo, OutcomeNone), redraw()}
}

func (m *Machine) pointerMove(e Event) []Effect {
	if m.session.State != StateTracking || e.Pointer != m.session.pointer {
		return nil
	}
	if !m.geom.InsideLane(e.Pos) {
		Logger().Info("gesture failed", "outcome", OutcomeLeftStroke, "trail", len(m.session.Trail))
		m.clear()
		return []Effect{status(MsgLeftLane, ToneBad, OutcomeLeftStroke), redraw()}
	}
	m.session.Trail = append(m.session.Trail, e.Pos)
	out := []Effect{redraw()}
	if m.geom.InsideEnd(e.Pos) {
		m.session.ReachedEnd = true
		m.session.State = StateSolved
		Logger().Info("gesture solved", "trail", len(m.session.Trail))
		out = append(out,
			status(MsgSolved, ToneInfo, OutcomeNone),
			Effect{Kind: EffectSolved, Passcode: m.passcode},
		)
	}
	return out
}

func (m *Machine) lift(e Event) []Effect {
	if m.session.State != StateTracking || e.Pointer != m.session.pointer {
		return nil
	}
	Logger().Info("gesture failed", "outcome", OutcomeLiftedEarly, "event", e.Kind)
	// Soft reset: the trail stays on screen until the next start or reset.
	m.session.State = StateIdle
	return []Effect{status(MsgLifted, ToneBad, OutcomeLiftedEarly), redraw()}
}

func (m *Machine) reset() []Effect {
	m.clear()
	return []Effect{status(MsgReset, ToneInfo, OutcomeNone), redraw()}
}

// clear is the hard reset.
func (m *Machine) clear() {
	m.session.State = StateIdle
	m.session.ReachedEnd = false
	m.session.Trail = m.session.Trail[:0]
}

func status(msg string, tone Tone, outcome Outcome) Effect {
	return Effect{Kind: EffectStatus, Message: msg, Tone: tone, Outcome: outcome}
}

func redraw() Effect { return Effect{Kind: EffectRedraw} }

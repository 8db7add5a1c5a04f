package maze

import "github.com/gogpu/gg"

// EventKind identifies an input delivered to the Machine.
type EventKind int

const (
	EventPointerDown EventKind = iota
	EventPointerMove
	EventPointerUp
	EventPointerCancel
	EventPointerLeave
	EventReset  // user asked to start over
	EventResize // surface size or DPR changed
	EventHint   // user asked how to begin
)

func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "pointer-down"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerUp:
		return "pointer-up"
	case EventPointerCancel:
		return "pointer-cancel"
	case EventPointerLeave:
		return "pointer-leave"
	case EventReset:
		return "reset"
	case EventResize:
		return "resize"
	case EventHint:
		return "hint"
	}
	return "unknown"
}

// Event is one input. Pos is in device canvas pixels; Scale is only read
// for EventResize.
type Event struct {
	Kind    EventKind
	Pos     gg.Point
	Pointer int
	Scale   Scale
}

// Down, Move and Up build pointer events for the default pointer.
func Down(x, y float64) Event { return Event{Kind: EventPointerDown, Pos: gg.Pt(x, y)} }
func Move(x, y float64) Event { return Event{Kind: EventPointerMove, Pos: gg.Pt(x, y)} }
func Up(x, y float64) Event   { return Event{Kind: EventPointerUp, Pos: gg.Pt(x, y)} }

// Tone is the severity of a status message. It only affects styling.
type Tone int

const (
	ToneInfo Tone = iota
	ToneWarn
	ToneBad
)

func (t Tone) String() string {
	switch t {
	case ToneWarn:
		return "warn"
	case ToneBad:
		return "bad"
	}
	return "info"
}

// Outcome names a gesture violation. Violations are expected results, not errors.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeStartedOutsideZone
	OutcomeLeftStroke
	OutcomeLiftedEarly
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStartedOutsideZone:
		return "started-outside-zone"
	case OutcomeLeftStroke:
		return "left-stroke"
	case OutcomeLiftedEarly:
		return "lifted-early"
	}
	return "none"
}

// EffectKind identifies a side effect requested by the Machine.
type EffectKind int

const (
	EffectStatus EffectKind = iota
	EffectRedraw
	EffectSolved
)

// Effect is a request for the presentation layer.
type Effect struct {
	Kind     EffectKind
	Message  string
	Tone     Tone
	Outcome  Outcome
	Passcode string // EffectSolved only
}

// EffectHandler consumes one effect.
type EffectHandler func(Effect)

// Dispatcher routes effects to handlers subscribed by kind.
type Dispatcher struct {
	handlers map[EffectKind][]EffectHandler
}

// NewDispatcher returns a Dispatcher with no subscribers.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[EffectKind][]EffectHandler),
	}
}

// Subscribe adds fn to the handlers for kind k, after any already added.
func (d *Dispatcher) Subscribe(k EffectKind, fn EffectHandler) {
	d.handlers[k] = append(d.handlers[k], fn)
}

// Emit calls the handlers for e.Kind in subscription order.
func (d *Dispatcher) Emit(e Effect) {
	for _, fn := range d.handlers[e.Kind] {
		fn(e)
	}
}

// EmitAll emits effects in order.
func (d *Dispatcher) EmitAll(effects []Effect) {
	for _, e := range effects {
		d.Emit(e)
	}
}

// Sinks is the presentation side of the Machine.
type Sinks interface {
	Render(Snapshot)
	Status(msg string, tone Tone)
	Reveal(passcode string)
}

// Attach subscribes s to d. Redraws render m's snapshot at emit time.
func Attach(d *Dispatcher, m *Machine, s Sinks) {
	d.Subscribe(EffectStatus, func(e Effect) { s.Status(e.Message, e.Tone) })
	d.Subscribe(EffectRedraw, func(Effect) { s.Render(m.Snapshot()) })
	d.Subscribe(EffectSolved, func(e Effect) { s.Reveal(e.Passcode) })
}

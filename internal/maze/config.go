package maze

import "github.com/gogpu/gg"

// Lane sizing (logical units, multiplied by DPR).
const (
	DefaultLaneWidth = 36.0
	MinLaneWidth     = 18.0 // keeps the lane finger-wide on low density screens
)

// DPR clamp range.
const (
	MinDPR = 1.0
	MaxDPR = 3.0
)

// DefaultAspect is the canvas height/width ratio.
const DefaultAspect = 600.0 / 900.0

// DefaultPasscode is revealed once the corridor is traced.
const DefaultPasscode = "THIRTEENWHISPERS"

// "S"-style corridor in normalized coordinates (0..1).
var corridorPoints = []gg.Point{
	{X: 0.10, Y: 0.85}, {X: 0.22, Y: 0.85}, {X: 0.35, Y: 0.80}, {X: 0.45, Y: 0.70},
	{X: 0.55, Y: 0.60}, {X: 0.62, Y: 0.50}, {X: 0.55, Y: 0.40}, {X: 0.45, Y: 0.32},
	{X: 0.35, Y: 0.28}, {X: 0.25, Y: 0.24}, {X: 0.20, Y: 0.18}, {X: 0.25, Y: 0.12},
	{X: 0.35, Y: 0.10}, {X: 0.50, Y: 0.12}, {X: 0.65, Y: 0.18}, {X: 0.78, Y: 0.28},
	{X: 0.86, Y: 0.40}, {X: 0.88, Y: 0.52}, {X: 0.84, Y: 0.64}, {X: 0.74, Y: 0.74},
	{X: 0.60, Y: 0.80}, {X: 0.48, Y: 0.84}, {X: 0.34, Y: 0.88}, {X: 0.22, Y: 0.90},
	{X: 0.12, Y: 0.92}, {X: 0.08, Y: 0.94}, {X: 0.06, Y: 0.95},
}

// Marker zones. Radii are logical units.
var (
	startZone = Zone{Center: gg.Pt(0.10, 0.85), Radius: 22}
	endZone   = Zone{Center: gg.Pt(0.90, 0.52), Radius: 24}
)

// DefaultLayout returns the built-in corridor. The returned path is a copy.
func DefaultLayout() Layout {
	path := make([]gg.Point, len(corridorPoints))
	copy(path, corridorPoints)
	return Layout{
		Path:      path,
		LaneWidth: DefaultLaneWidth,
		Start:     startZone,
		End:       endZone,
	}
}

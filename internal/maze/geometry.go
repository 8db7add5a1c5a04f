package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

var (
	ErrShortPath      = errors.New("corridor needs at least 2 points")
	ErrDuplicatePoint = errors.New("consecutive corridor points coincide")
	ErrBadZone        = errors.New("zone radius must be positive")
	ErrBadLaneWidth   = errors.New("lane width must be positive")
)

// Zone is a circular marker: normalized center, radius in logical units.
type Zone struct {
	Center gg.Point
	Radius float64
}

// Layout is the session-immutable description of a maze.
type Layout struct {
	Path      []gg.Point // normalized centerline, traversal order
	LaneWidth float64    // logical units
	Start     Zone
	End       Zone
}

// Validate checks the layout invariants.
func (l Layout) Validate() error {
	if len(l.Path) < 2 {
		return ErrShortPath
	}
	for i := 1; i < len(l.Path); i++ {
		if l.Path[i] == l.Path[i-1] {
			return fmt.Errorf("point %d: %w", i, ErrDuplicatePoint)
		}
	}
	if !(l.LaneWidth > 0) {
		return ErrBadLaneWidth
	}
	if !(l.Start.Radius > 0) {
		return fmt.Errorf("start: %w", ErrBadZone)
	}
	if !(l.End.Radius > 0) {
		return fmt.Errorf("end: %w", ErrBadZone)
	}
	return nil
}

// Scale maps normalized coordinates to device pixels. DPR is already
// folded into X and Y; it is kept for sizes given in logical units.
type Scale struct {
	X, Y float64
	DPR  float64
}

// ToDevice converts a normalized point to device pixels.
func ToDevice(p gg.Point, s Scale) gg.Point {
	return gg.Point{X: p.X * s.X, Y: p.Y * s.Y}
}

// StrokeWidth returns the lane width in device pixels.
func StrokeWidth(baseLaneWidth, dpr float64) float64 {
	return math.Max(MinLaneWidth*dpr, baseLaneWidth*dpr)
}

// ClampDPR limits a reported device pixel ratio to [MinDPR, MaxDPR].
func ClampDPR(dpr float64) float64 {
	if math.IsNaN(dpr) || dpr < MinDPR {
		return MinDPR
	}
	if dpr > MaxDPR {
		return MaxDPR
	}
	return dpr
}

// CanvasScale sizes the backing store for a canvas shown cssWidth logical
// pixels wide with the given height/width aspect. It returns the scale and
// the device width and height.
func CanvasScale(cssWidth, aspect, dpr float64) (Scale, int, int) {
	w := int(math.Floor(cssWidth * dpr))
	h := int(math.Floor(cssWidth * aspect * dpr))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Scale{X: float64(w), Y: float64(h), DPR: dpr}, w, h
}

// CanvasPoint translates a viewport position to device canvas pixels.
func CanvasPoint(clientX, clientY, offsetX, offsetY, dpr float64) gg.Point {
	return gg.Point{X: (clientX - offsetX) * dpr, Y: (clientY - offsetY) * dpr}
}

// Circle is a zone resolved to device pixels.
type Circle struct {
	Center gg.Point
	Radius float64
}

// Geometry is the device-space form of a Layout under one Scale.
// It is rebuilt on resize and read by every hit test.
type Geometry struct {
	Layout      Layout
	Scale       Scale
	Polyline    []gg.Point
	StrokeWidth float64
	Start       Circle
	End         Circle

	// Lane bounding box, grown by half the stroke width.
	minX, minY float64
	maxX, maxY float64
}

// NewGeometry validates the layout and derives device geometry for s.
func NewGeometry(layout Layout, s Scale) (*Geometry, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	g := &Geometry{Layout: layout}
	g.Rebuild(s)
	return g, nil
}

// Rebuild recomputes all derived geometry for a new scale.
func (g *Geometry) Rebuild(s Scale) {
	if s.DPR <= 0 {
		s.DPR = 1
	}
	g.Scale = s
	g.StrokeWidth = StrokeWidth(g.Layout.LaneWidth, s.DPR)

	if cap(g.Polyline) < len(g.Layout.Path) {
		g.Polyline = make([]gg.Point, len(g.Layout.Path))
	}
	g.Polyline = g.Polyline[:len(g.Layout.Path)]
	for i, p := range g.Layout.Path {
		g.Polyline[i] = ToDevice(p, s)
	}

	g.Start = Circle{Center: ToDevice(g.Layout.Start.Center, s), Radius: g.Layout.Start.Radius * s.DPR}
	g.End = Circle{Center: ToDevice(g.Layout.End.Center, s), Radius: g.Layout.End.Radius * s.DPR}

	half := g.StrokeWidth / 2
	g.minX, g.minY = math.Inf(1), math.Inf(1)
	g.maxX, g.maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range g.Polyline {
		g.minX = math.Min(g.minX, p.X)
		g.minY = math.Min(g.minY, p.Y)
		g.maxX = math.Max(g.maxX, p.X)
		g.maxY = math.Max(g.maxY, p.Y)
	}
	g.minX -= half
	g.minY -= half
	g.maxX += half
	g.maxY += half

	Logger().Debug("geometry rebuilt",
		"scale_x", s.X, "scale_y", s.Y, "dpr", s.DPR, "stroke", g.StrokeWidth)
}

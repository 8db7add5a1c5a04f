package maze

import "github.com/gogpu/gg"

// InsideZone reports whether p lies inside or on the circle.
func InsideZone(p, center gg.Point, radius float64) bool {
	return p.Sub(center).LengthSquared() <= radius*radius
}

// SegmentDistanceSq returns the squared distance from p to segment ab.
// The projection is clamped to the segment, so the ends behave as round caps.
func SegmentDistanceSq(p, a, b gg.Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return p.Sub(a).LengthSquared()
	}
	t := p.Sub(a).Dot(ab) / lenSq
	switch {
	case t <= 0:
		return p.Sub(a).LengthSquared()
	case t >= 1:
		return p.Sub(b).LengthSquared()
	}
	return p.Sub(a.Add(ab.Mul(t))).LengthSquared()
}

// InsideStroke reports whether p is within width/2 of the polyline drawn
// with round caps and round joins.
func InsideStroke(p gg.Point, poly []gg.Point, width float64) bool {
	if len(poly) == 0 || !(width > 0) {
		return false
	}
	half := width / 2
	limit := half * half
	if len(poly) == 1 {
		return p.Sub(poly[0]).LengthSquared() <= limit
	}
	for i := 1; i < len(poly); i++ {
		if SegmentDistanceSq(p, poly[i-1], poly[i]) <= limit {
			return true
		}
	}
	return false
}

// InsideStart reports whether p is in the START marker.
func (g *Geometry) InsideStart(p gg.Point) bool {
	return InsideZone(p, g.Start.Center, g.Start.Radius)
}

// InsideEnd reports whether p is in the END marker.
func (g *Geometry) InsideEnd(p gg.Point) bool {
	return InsideZone(p, g.End.Center, g.End.Radius)
}

// InsideLane reports whether p is inside the corridor stroke.
func (g *Geometry) InsideLane(p gg.Point) bool {
	if p.X < g.minX || p.X > g.maxX || p.Y < g.minY || p.Y > g.maxY {
		return false
	}
	return InsideStroke(p, g.Polyline, g.StrokeWidth)
}

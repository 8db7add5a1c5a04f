package maze

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/gogpu/gg"
)

// testScale is an 800x600 canvas at DPR 1: stroke 36, START (80,510) r22,
// END (720,312) r24.
var testScale = Scale{X: 800, Y: 600, DPR: 1}

func newTestGeometry(t *testing.T) *Geometry {
	t.Helper()
	g, err := NewGeometry(DefaultLayout(), testScale)
	if err != nil {
		t.Fatalf("NewGeometry: %v", err)
	}
	return g
}

func TestToDevice(t *testing.T) {
	got := ToDevice(gg.Pt(0.25, 0.5), Scale{X: 1000, Y: 400, DPR: 2})
	if got != gg.Pt(250, 200) {
		t.Errorf("ToDevice = %v, want (250,200)", got)
	}
}

func TestStrokeWidth(t *testing.T) {
	tests := []struct {
		base, dpr, want float64
	}{
		{36, 1, 36},
		{36, 2, 72},
		{10, 1, 18},
		{10, 3, 54},
		{18, 1.5, 27},
	}
	for _, tt := range tests {
		if got := StrokeWidth(tt.base, tt.dpr); got != tt.want {
			t.Errorf("StrokeWidth(%v, %v) = %v, want %v", tt.base, tt.dpr, got, tt.want)
		}
	}
}

func TestClampDPR(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 1},
		{-2, 1},
		{0.5, 1},
		{1.25, 1.25},
		{2, 2},
		{4, 3},
		{math.NaN(), 1},
	}
	for _, tt := range tests {
		if got := ClampDPR(tt.in); got != tt.want {
			t.Errorf("ClampDPR(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCanvasScale(t *testing.T) {
	s, w, h := CanvasScale(900, 2.0/3.0, 2)
	if w != 1800 || h != 1200 {
		t.Fatalf("size = %dx%d, want 1800x1200", w, h)
	}
	if s.X != 1800 || s.Y != 1200 || s.DPR != 2 {
		t.Errorf("scale = %+v", s)
	}

	_, w, h = CanvasScale(333, 0.5, 1.5)
	if w != 499 || h != 249 {
		t.Errorf("floored size = %dx%d, want 499x249", w, h)
	}
}

func TestCanvasPoint(t *testing.T) {
	got := CanvasPoint(110, 70, 10, 20, 2)
	if got != gg.Pt(200, 100) {
		t.Errorf("CanvasPoint = %v, want (200,100)", got)
	}
}

func TestLayoutValidate(t *testing.T) {
	base := DefaultLayout()

	short := base
	short.Path = base.Path[:1]

	dup := base
	dup.Path = []gg.Point{gg.Pt(0.1, 0.1), gg.Pt(0.1, 0.1), gg.Pt(0.2, 0.2)}

	noLane := base
	noLane.LaneWidth = 0

	badStart := base
	badStart.Start.Radius = 0

	badEnd := base
	badEnd.End.Radius = -1

	tests := []struct {
		name   string
		layout Layout
		want   error
	}{
		{"default", base, nil},
		{"short", short, ErrShortPath},
		{"duplicate", dup, ErrDuplicatePoint},
		{"lane", noLane, ErrBadLaneWidth},
		{"start", badStart, ErrBadZone},
		{"end", badEnd, ErrBadZone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewGeometryRejectsInvalidLayout(t *testing.T) {
	l := DefaultLayout()
	l.Path = nil
	if _, err := NewGeometry(l, testScale); !errors.Is(err, ErrShortPath) {
		t.Fatalf("NewGeometry err = %v, want ErrShortPath", err)
	}
}

func TestDefaultLayoutIsCopy(t *testing.T) {
	a := DefaultLayout()
	a.Path[0] = gg.Pt(0.5, 0.5)
	b := DefaultLayout()
	if b.Path[0] == a.Path[0] {
		t.Fatal("DefaultLayout shares its path slice")
	}
}

func TestRebuild(t *testing.T) {
	g := newTestGeometry(t)
	if g.StrokeWidth != 36 {
		t.Errorf("stroke = %v, want 36", g.StrokeWidth)
	}
	if g.Start.Center != gg.Pt(80, 510) || g.Start.Radius != 22 {
		t.Errorf("start = %+v", g.Start)
	}
	if len(g.Polyline) != len(g.Layout.Path) {
		t.Fatalf("polyline has %d points, want %d", len(g.Polyline), len(g.Layout.Path))
	}

	g.Rebuild(Scale{X: 1600, Y: 1200, DPR: 2})
	if g.StrokeWidth != 72 {
		t.Errorf("stroke after rebuild = %v, want 72", g.StrokeWidth)
	}
	if g.End.Center != gg.Pt(1440, 624) || g.End.Radius != 48 {
		t.Errorf("end after rebuild = %+v", g.End)
	}
	if g.Polyline[1] != gg.Pt(352, 1020) {
		t.Errorf("polyline[1] = %v, want (352,1020)", g.Polyline[1])
	}
}

func TestInsideZoneBoundary(t *testing.T) {
	c := gg.Pt(100, 100)
	tests := []struct {
		name string
		p    gg.Point
		want bool
	}{
		{"center", c, true},
		{"inside", gg.Pt(110, 100), true},
		{"on circle x", gg.Pt(120, 100), true},
		{"on circle 3-4-5", gg.Pt(112, 116), true},
		{"just outside", gg.Pt(120.001, 100), false},
		{"far", gg.Pt(0, 0), false},
	}
	for _, tt := range tests {
		if got := InsideZone(tt.p, c, 20); got != tt.want {
			t.Errorf("%s: InsideZone(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestSegmentDistanceSq(t *testing.T) {
	a, b := gg.Pt(0, 0), gg.Pt(10, 0)
	tests := []struct {
		name string
		p    gg.Point
		want float64
	}{
		{"above middle", gg.Pt(5, 3), 9},
		{"before start", gg.Pt(-3, 4), 25},
		{"past end", gg.Pt(13, -4), 25},
		{"on segment", gg.Pt(7, 0), 0},
	}
	for _, tt := range tests {
		if got := SegmentDistanceSq(tt.p, a, b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: SegmentDistanceSq = %v, want %v", tt.name, got, tt.want)
		}
	}
	if got := SegmentDistanceSq(gg.Pt(3, 4), a, a); got != 25 {
		t.Errorf("degenerate segment = %v, want 25", got)
	}
}

func TestInsideStroke(t *testing.T) {
	poly := []gg.Point{gg.Pt(0, 0), gg.Pt(100, 0), gg.Pt(100, 100)}
	tests := []struct {
		name string
		p    gg.Point
		want bool
	}{
		{"on centerline", gg.Pt(50, 0), true},
		{"edge of band", gg.Pt(50, 10), true},
		{"outside band", gg.Pt(50, 10.5), false},
		{"round start cap", gg.Pt(-6, 8), true},
		{"beyond start cap", gg.Pt(-8, 8), false},
		{"round join outer corner", gg.Pt(107, -7), true},
		{"square corner is not covered", gg.Pt(109, -9), false},
		{"second segment", gg.Pt(95, 60), true},
		{"inside the bend", gg.Pt(50, 50), false},
	}
	for _, tt := range tests {
		if got := InsideStroke(tt.p, poly, 20); got != tt.want {
			t.Errorf("%s: InsideStroke(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}

	if InsideStroke(gg.Pt(0, 0), nil, 20) {
		t.Error("empty polyline accepted a point")
	}
	if InsideStroke(gg.Pt(0, 0), poly, 0) {
		t.Error("zero width accepted a point")
	}
	if !InsideStroke(gg.Pt(3, 4), poly[:1], 10) {
		t.Error("single point polyline should act as a disc")
	}
}

func TestInsideStrokeMonotonicInWidth(t *testing.T) {
	g := newTestGeometry(t)
	r := rand.New(rand.NewSource(7))
	widths := []float64{1, 5, 12, 18, 24, 36, 50, 80, 140}
	for i := 0; i < 2000; i++ {
		p := gg.Pt(r.Float64()*800, r.Float64()*600)
		inside := false
		for _, w := range widths {
			now := InsideStroke(p, g.Polyline, w)
			if inside && !now {
				t.Fatalf("point %v inside at smaller width but outside at %v", p, w)
			}
			inside = now
		}
	}
}

func TestGeometryPredicates(t *testing.T) {
	g := newTestGeometry(t)

	if !g.InsideStart(gg.Pt(80, 510)) {
		t.Error("START center not inside START")
	}
	if g.InsideStart(gg.Pt(80, 540)) {
		t.Error("point 30px below START center inside START")
	}
	if !g.InsideEnd(gg.Pt(720, 312)) {
		t.Error("END center not inside END")
	}
	if !g.InsideLane(gg.Pt(128, 510)) {
		t.Error("centerline point not in lane")
	}
	if !g.InsideLane(gg.Pt(720, 312)) {
		t.Error("END center should overlap the lane")
	}
	if g.InsideLane(gg.Pt(790, 20)) {
		t.Error("far corner in lane")
	}
	if g.InsideLane(gg.Pt(-500, -500)) {
		t.Error("point outside bounds in lane")
	}
}

func TestInsideLaneMatchesInsideStroke(t *testing.T) {
	g := newTestGeometry(t)
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 2000; i++ {
		p := gg.Pt(r.Float64()*900-50, r.Float64()*700-50)
		if g.InsideLane(p) != InsideStroke(p, g.Polyline, g.StrokeWidth) {
			t.Fatalf("bounding box changed the answer at %v", p)
		}
	}
}

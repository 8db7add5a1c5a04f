// Package canvas rasterises the maze, the trail and the overlay into a
// device-pixel RGBA frame.
package canvas

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"

	"fingermaze/internal/feedback"
	"fingermaze/internal/maze"
)

// Renderer caches the static layer (background, corridor, markers) per
// geometry scale and composes trail and overlay on top for every frame.
type Renderer struct {
	static *gg.Pixmap
	frame  *gg.Pixmap
	scale  maze.Scale
	stroke float64
}

func NewRenderer() *Renderer { return &Renderer{} }

// Frame renders one frame: the maze area at the geometry scale with the
// status band below it. The returned image shares memory with the
// renderer and is valid until the next call.
func (r *Renderer) Frame(g *maze.Geometry, snap maze.Snapshot, o feedback.Overlay) (*image.RGBA, error) {
	w, h := int(g.Scale.X), int(g.Scale.Y)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("frame size %dx%d", w, h)
	}
	fh := h + StatusBandHeight(g.Scale.DPR)
	if r.static == nil || r.scale != g.Scale || r.stroke != g.StrokeWidth {
		if err := r.buildStatic(g, w, h, fh); err != nil {
			return nil, fmt.Errorf("static layer: %w", err)
		}
	}
	copy(r.frame.Data(), r.static.Data())

	dc := gg.NewContext(w, fh, gg.WithPixmap(r.frame))
	defer dc.Close()
	if len(snap.Trail) > 0 {
		if err := drawTrail(dc, snap.Trail, g.Scale.DPR); err != nil {
			return nil, fmt.Errorf("trail: %w", err)
		}
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}

	img := &image.RGBA{Pix: r.frame.Data(), Stride: 4 * w, Rect: image.Rect(0, 0, w, fh)}
	if err := drawOverlay(dc, img, o, g.Scale.DPR, h); err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	return img, nil
}

func (r *Renderer) buildStatic(g *maze.Geometry, w, h, fh int) error {
	r.static = gg.NewPixmap(w, fh)
	r.frame = gg.NewPixmap(w, fh)
	r.scale = g.Scale
	r.stroke = g.StrokeWidth

	dc := gg.NewContext(w, fh, gg.WithPixmap(r.static))
	defer dc.Close()
	dpr := g.Scale.DPR

	bg := gg.NewLinearGradientBrush(0, 0, 0, float64(h)).
		AddColorStop(0, Palette.BackgroundTop).
		AddColorStop(1, Palette.BackgroundBottom)
	dc.SetFillBrush(bg)
	dc.DrawRectangle(0, 0, float64(w), float64(fh))
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	// Halo behind the lane.
	if err := strokePolyline(dc, g.Polyline, g.StrokeWidth+14*dpr, Palette.Halo); err != nil {
		return err
	}
	// Soft glow: widening translucent passes fading out.
	for i, grow := range []float64{18, 12, 6} {
		a := 0.10 + 0.08*float64(i)
		if err := strokePolyline(dc, g.Polyline, g.StrokeWidth+grow*dpr, withAlpha(Palette.LaneGlow, a)); err != nil {
			return err
		}
	}
	if err := strokePolyline(dc, g.Polyline, g.StrokeWidth, Palette.Lane); err != nil {
		return err
	}
	if err := strokePolyline(dc, g.Polyline, math.Max(2, g.StrokeWidth*0.15), Palette.LaneCore); err != nil {
		return err
	}

	if err := drawMarker(dc, g.Start, Palette.Start, dpr); err != nil {
		return err
	}
	if err := drawMarker(dc, g.End, Palette.End, dpr); err != nil {
		return err
	}

	// Status band; it also clips glow spilling past the maze area.
	dc.SetFillBrush(gg.Solid(Palette.Panel))
	dc.DrawRectangle(0, float64(h), float64(w), float64(fh-h))
	if err := dc.Fill(); err != nil {
		return err
	}
	if err := dc.FlushGPU(); err != nil {
		return err
	}

	img := &image.RGBA{Pix: r.static.Data(), Stride: 4 * w, Rect: image.Rect(0, 0, w, fh)}
	scale := textScale(dpr)
	DrawTextCentered(img, "START", int(g.Start.Center.X), int(g.Start.Center.Y), scale, Palette.Label)
	DrawTextCentered(img, "END", int(g.End.Center.X), int(g.End.Center.Y), scale, Palette.Label)
	return nil
}

func strokePolyline(dc *gg.Context, pts []gg.Point, width float64, col gg.RGBA) error {
	dc.SetStrokeBrush(gg.Solid(col))
	dc.SetLineWidth(width)
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	return dc.Stroke()
}

func drawMarker(dc *gg.Context, c maze.Circle, col gg.RGBA, dpr float64) error {
	// Glow ring.
	dc.SetFillBrush(gg.Solid(withAlpha(col, 0.18)))
	dc.DrawCircle(c.Center.X, c.Center.Y, c.Radius+7*dpr)
	if err := dc.Fill(); err != nil {
		return err
	}
	dc.SetFillBrush(gg.Solid(Palette.MarkerFill))
	dc.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
	if err := dc.Fill(); err != nil {
		return err
	}
	dc.SetStrokeBrush(gg.Solid(col))
	dc.SetLineWidth(math.Max(3, 3*dpr))
	dc.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
	return dc.Stroke()
}

func drawTrail(dc *gg.Context, trail []gg.Point, dpr float64) error {
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	width := math.Max(4, 4*dpr)
	if len(trail) == 1 {
		dc.SetFillBrush(gg.Solid(Palette.Trail))
		dc.DrawCircle(trail[0].X, trail[0].Y, width/2)
		return dc.Fill()
	}
	return strokePolyline(dc, trail, width, Palette.Trail)
}

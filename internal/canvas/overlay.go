package canvas

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"fingermaze/internal/feedback"
)

// Key hints sit at the right end of the status band.
const (
	HintKeys  = "R reset   SPACE hint   ESC quit"
	DialogTop = "Maze solved! Your passcode:"
	DialogKey = "C copy   ENTER close"
)

// StatusBandHeight is the height in device pixels of the status band
// drawn below the maze area.
func StatusBandHeight(dpr float64) int {
	return TextHeight(textScale(dpr)) + int(math.Ceil(20*dpr))
}

// drawOverlay draws shapes with dc first, then text straight into img,
// which must alias dc's pixmap. The maze area is the top mazeH rows; the
// status band fills the rest.
func drawOverlay(dc *gg.Context, img *image.RGBA, o feedback.Overlay, dpr float64, mazeH int) error {
	w, h := float64(img.Rect.Dx()), float64(mazeH)
	scale := textScale(dpr)
	pad := 10 * dpr
	lineH := float64(TextHeight(scale))

	var box dialogBox
	if o.DialogOpen {
		box = layoutDialog(w, h, o, scale, pad)
		dc.SetFillBrush(gg.Solid(Palette.Panel))
		dc.DrawRoundedRectangle(box.x, box.y, box.w, box.h, 12*dpr)
		if err := dc.Fill(); err != nil {
			return err
		}
		dc.SetStrokeBrush(gg.Solid(Palette.PanelEdge))
		dc.SetLineWidth(2 * dpr)
		dc.DrawRoundedRectangle(box.x, box.y, box.w, box.h, 12*dpr)
		if err := dc.Stroke(); err != nil {
			return err
		}
		if o.Selected {
			dc.SetFillBrush(gg.Solid(Palette.Selection))
			dc.DrawRectangle(box.codeX-pad/2, box.codeY-pad/2, box.codeW+pad, box.codeH+pad)
			if err := dc.Fill(); err != nil {
				return err
			}
		}
	}
	if err := dc.FlushGPU(); err != nil {
		return err
	}

	DrawText(img, o.Status, int(pad), mazeH+int(pad), scale, ToneColor(o.Tone))
	statusW, hintW := TextWidth(o.Status, scale), TextWidth(HintKeys, scale)
	if statusW+hintW+int(3*pad) <= int(w) {
		DrawText(img, HintKeys, int(w-pad)-hintW, mazeH+int(pad), scale, Palette.TextInfo)
	}

	if o.DialogOpen {
		cx := int(box.x + box.w/2)
		DrawTextCentered(img, DialogTop, cx, int(box.y+pad+lineH/2), scale, Palette.Label)
		DrawText(img, o.Code, int(box.codeX), int(box.codeY), 2*scale, Palette.TextStrong)
		DrawTextCentered(img, "["+o.CopyLabel+"]", cx, int(box.codeY+box.codeH+pad+lineH/2), scale, Palette.Label)
		DrawTextCentered(img, DialogKey, cx, int(box.y+box.h-pad-lineH/2), scale, Palette.TextInfo)
	}
	return nil
}

type dialogBox struct {
	x, y, w, h                 float64
	codeX, codeY, codeW, codeH float64
}

func layoutDialog(w, h float64, o feedback.Overlay, scale int, pad float64) dialogBox {
	lineH := float64(TextHeight(scale))
	codeW := float64(TextWidth(o.Code, 2*scale))
	codeH := float64(TextHeight(2 * scale))

	bw := codeW
	for _, s := range []string{DialogTop, DialogKey, "[" + feedback.LabelCopy + "]"} {
		if tw := float64(TextWidth(s, scale)); tw > bw {
			bw = tw
		}
	}
	bw += 4 * pad
	bh := 4*lineH + codeH + 7*pad

	b := dialogBox{w: bw, h: bh, codeW: codeW, codeH: codeH}
	b.x = (w - bw) / 2
	b.y = (h - bh) / 2
	b.codeX = b.x + (bw-codeW)/2
	b.codeY = b.y + 2*pad + lineH + pad
	return b
}

// DialogHitAreas returns the dialog panel and the copy label bounds in
// device pixels for a w x h maze area.
func DialogHitAreas(w, h int, o feedback.Overlay, dpr float64) (panel, copyLabel image.Rectangle) {
	scale := textScale(dpr)
	pad := 10 * dpr
	lineH := float64(TextHeight(scale))
	b := layoutDialog(float64(w), float64(h), o, scale, pad)
	panel = image.Rect(int(b.x), int(b.y), int(b.x+b.w), int(b.y+b.h))

	cx := int(b.x + b.w/2)
	cy := int(b.codeY + b.codeH + pad + lineH/2)
	lw := TextWidth("["+o.CopyLabel+"]", scale)
	copyLabel = image.Rect(cx-lw/2, cy-int(lineH)/2, cx+lw/2, cy+int(lineH)/2).Inset(-int(pad / 2))
	return panel, copyLabel
}

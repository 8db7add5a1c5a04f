package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph cell of the bitmap face, before scaling.
const (
	glyphW = 7
	glyphH = 13
)

var face = basicfont.Face7x13

// asciiReplacer keeps text inside the bitmap face's glyph range.
var asciiReplacer = strings.NewReplacer("…", "...", "—", "-", "–", "-", "·", "-")

func plain(s string) string {
	s = asciiReplacer.Replace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 || r > 126 {
			return '?'
		}
		return r
	}, s)
}

// TextWidth returns the width in pixels of s drawn at scale.
func TextWidth(s string, scale int) int {
	return font.MeasureString(face, plain(s)).Ceil() * scale
}

// TextHeight returns the line height at scale.
func TextHeight(scale int) int { return glyphH * scale }

// textScale picks an integer glyph scale so text stays near 12 logical px.
func textScale(dpr float64) int {
	s := int(dpr + 0.5)
	if s < 1 {
		return 1
	}
	return s
}

// DrawText draws s with its top-left corner at (x, y), scaled up by an
// integer factor with nearest-neighbour sampling.
func DrawText(dst draw.Image, s string, x, y, scale int, col color.Color) {
	s = plain(s)
	if s == "" {
		return
	}
	if scale < 1 {
		scale = 1
	}
	w := font.MeasureString(face, s).Ceil()
	src := image.NewRGBA(image.Rect(0, 0, w, glyphH))
	d := font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)

	rect := image.Rect(x, y, x+w*scale, y+glyphH*scale)
	xdraw.NearestNeighbor.Scale(dst, rect, src, src.Bounds(), xdraw.Over, nil)
}

// DrawTextCentered draws s centred on (cx, cy).
func DrawTextCentered(dst draw.Image, s string, cx, cy, scale int, col color.Color) {
	DrawText(dst, s, cx-TextWidth(s, scale)/2, cy-TextHeight(scale)/2, scale, col)
}

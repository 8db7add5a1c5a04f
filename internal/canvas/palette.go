package canvas

import (
	"image/color"

	"github.com/gogpu/gg"

	"fingermaze/internal/maze"
)

var Palette = struct {
	BackgroundTop    gg.RGBA
	BackgroundBottom gg.RGBA
	Halo             gg.RGBA
	Lane             gg.RGBA
	LaneGlow         gg.RGBA
	LaneCore         gg.RGBA
	MarkerFill       gg.RGBA
	Start            gg.RGBA
	End              gg.RGBA
	Label            color.NRGBA
	Trail            gg.RGBA
	Panel            gg.RGBA
	PanelEdge        gg.RGBA
	Selection        gg.RGBA
	TextInfo         color.NRGBA
	TextWarn         color.NRGBA
	TextBad          color.NRGBA
	TextStrong       color.NRGBA
}{
	BackgroundTop:    gg.Hex("#0a0e14"),
	BackgroundBottom: gg.Hex("#0a0c11"),
	Halo:             gg.Hex("#0e1a1fe6"),
	Lane:             gg.Hex("#70f0ff"),
	LaneGlow:         gg.RGBA2(112.0/255, 240.0/255, 1, 0.6),
	LaneCore:         gg.RGBA2(1, 1, 1, 0.85),
	MarkerFill:       gg.Hex("#0b0f15"),
	Start:            gg.Hex("#39d98a"),
	End:              gg.Hex("#ffae00"),
	Label:            color.NRGBA{R: 0xcf, G: 0xd7, B: 0xe6, A: 0xff},
	Trail:            gg.RGBA2(0xa6/255.0, 1, 0xbc/255.0, 0.85),
	Panel:            gg.RGBA2(0.04, 0.05, 0.07, 0.92),
	PanelEdge:        gg.Hex("#39d98a"),
	Selection:        gg.Hex("#2a5bd7"),
	TextInfo:         color.NRGBA{R: 0x9a, G: 0xa0, B: 0xad, A: 0xff},
	TextWarn:         color.NRGBA{R: 0xff, G: 0xae, B: 0x00, A: 0xff},
	TextBad:          color.NRGBA{R: 0xff, G: 0x79, B: 0x7b, A: 0xff},
	TextStrong:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// ToneColor maps a status tone to its text colour.
func ToneColor(t maze.Tone) color.NRGBA {
	switch t {
	case maze.ToneWarn:
		return Palette.TextWarn
	case maze.ToneBad:
		return Palette.TextBad
	}
	return Palette.TextInfo
}

func withAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A *= a
	return c
}

package plot

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Common series colors, matching the palette of the classic matplotlib
// one-letter codes.
var (
	Black  = color.RGBA{A: 255}
	Red    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	Green  = color.RGBA{G: 128, A: 255}
	Blue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	Orange = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	Gray   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// LinePattern selects the dash pattern of a drawn line.
type LinePattern int

const (
	Solid LinePattern = iota
	Dashed
	DashDot
)

// dashes translates the pattern into vg dash lengths.
func (p LinePattern) dashes() []vg.Length {
	switch p {
	case Dashed:
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case DashDot:
		return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)}
	default:
		return nil
	}
}

// SeriesStyle describes one plotted column: the column to read, its legend
// label and how the line is drawn. Order is the z-order; series with a
// higher Order are drawn on top of lower ones, equal orders keep their
// declared sequence. A SeriesStyle is immutable once its PanelSpec is built.
type SeriesStyle struct {
	Column  string
	Label   string
	Color   color.Color
	Pattern LinePattern
	Order   int
}

// ReferenceLine is a constant horizontal guide drawn across the full panel
// width, e.g. overbought/oversold thresholds.
type ReferenceLine struct {
	Value   float64
	Color   color.Color
	Pattern LinePattern
	Label   string
}

// Theme is the explicit, scoped style context applied by the Composer. It
// replaces process-wide styling state so that composition does not depend
// on call order.
type Theme struct {
	Background    color.Color
	LineWidth     vg.Length
	GridColor     color.Color
	GridPattern   LinePattern
	LabelFontSize vg.Length
	TickFontSize  vg.Length
	LegendSize    vg.Length
	Padding       vg.Length
}

// DefaultTheme is a plain white-background theme with a light grid.
func DefaultTheme() *Theme {
	return &Theme{
		Background:    color.White,
		LineWidth:     vg.Points(1),
		GridColor:     color.RGBA{R: 220, G: 220, B: 220, A: 255},
		GridPattern:   Solid,
		LabelFontSize: vg.Points(11),
		TickFontSize:  vg.Points(9),
		LegendSize:    vg.Points(8),
		Padding:       vg.Points(2),
	}
}

// ScienceTheme mimics compact publication styling: thin lines, small type
// and a dashed grid.
func ScienceTheme() *Theme {
	return &Theme{
		Background:    color.White,
		LineWidth:     vg.Points(0.75),
		GridColor:     color.RGBA{R: 200, G: 200, B: 200, A: 255},
		GridPattern:   Dashed,
		LabelFontSize: vg.Points(9),
		TickFontSize:  vg.Points(7),
		LegendSize:    vg.Points(7),
		Padding:       vg.Points(1),
	}
}

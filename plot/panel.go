package plot

import (
	"image/color"

	"github.com/quantauri/bandplot/model"
)

// BandFill shades the area between two columns of the panel, like a
// Bollinger envelope.
type BandFill struct {
	Upper string
	Lower string
	Color color.Color
}

// PanelSpec declares one chart panel: which columns to draw, how to draw
// them, axis labels and optional horizontal reference lines. Specs are
// constructed once per chart definition and consumed read-only by the
// Composer. Column names are resolved against the frame at compose time,
// not at construction, since the frame may not exist yet.
type PanelSpec struct {
	Series         []SeriesStyle
	ReferenceLines []ReferenceLine
	Band           *BandFill
	XLabel         string
	YLabel         string

	// TightAxes constrains both axis ranges exactly to the data extent,
	// with no padding.
	TightAxes bool

	// Weight is the relative height of the panel in the stacked figure.
	// Zero means 1.
	Weight float64
}

// validate checks every referenced column against the frame before any
// drawing occurs, so a misconfigured spec fails with a single upfront
// error instead of mid-render.
func (s PanelSpec) validate(frame *model.Frame) error {
	for _, style := range s.Series {
		if !frame.HasColumn(style.Column) {
			return UnknownColumnError{Column: style.Column}
		}
	}
	if s.Band != nil {
		for _, column := range []string{s.Band.Upper, s.Band.Lower} {
			if !frame.HasColumn(column) {
				return UnknownColumnError{Column: column}
			}
		}
	}
	return nil
}

// weight returns the effective height weight.
func (s PanelSpec) weight() float64 {
	if s.Weight <= 0 {
		return 1
	}
	return s.Weight
}

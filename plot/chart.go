// Package plot composes multi-panel figures from frame columns and exports
// them as raster images.
package plot

import (
	"math"
	"sort"

	"github.com/pplcc/plotext"
	log "github.com/sirupsen/logrus"
	"go-hep.org/x/hep/hplot"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/quantauri/bandplot/model"
)

// Figure is a composed, not yet rendered, stack of panels. It is cheap to
// keep around and can be exported any number of times; identical figures
// render to identical bytes.
type Figure struct {
	panels  []*gplot.Plot
	weights []float64
	rows    int
}

// Panels returns the number of panels in the figure.
func (f *Figure) Panels() int {
	return len(f.panels)
}

// Rows returns the number of data rows the figure was composed from.
func (f *Figure) Rows() int {
	return f.rows
}

// Composer lays out one panel per spec, stacked vertically in declared
// order, over a shared dense x axis 0..n-1. The original index values of a
// windowed frame are deliberately discarded: only the relative order inside
// the window matters, so a windowed chart always starts at x=0.
//
// NaN values break the line: each column is split into maximal contiguous
// runs of finite values and one polyline is drawn per run. Gaps are never
// interpolated.
type Composer struct {
	theme *Theme
}

// NewComposer creates a composer with the given style context. A nil theme
// falls back to DefaultTheme.
func NewComposer(theme *Theme) *Composer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Composer{theme: theme}
}

// Compose builds the figure. It fails with ErrEmptyFrame when the frame has
// no rows and with UnknownColumnError when any spec references a column the
// frame does not hold; validation runs before any panel is drawn.
func (c *Composer) Compose(frame *model.Frame, specs ...PanelSpec) (*Figure, error) {
	if frame == nil || frame.Len() == 0 {
		return nil, ErrEmptyFrame
	}

	for _, spec := range specs {
		if err := spec.validate(frame); err != nil {
			return nil, err
		}
	}

	n := frame.Len()
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}

	fig := &Figure{rows: n}
	for _, spec := range specs {
		fig.panels = append(fig.panels, c.panel(frame, spec, xs))
		fig.weights = append(fig.weights, spec.weight())
	}

	uniteX(fig.panels)

	log.WithFields(log.Fields{
		"panels": len(fig.panels),
		"rows":   n,
	}).Debug("figure composed")

	return fig, nil
}

// panel draws a single spec onto a fresh plot.
func (c *Composer) panel(frame *model.Frame, spec PanelSpec, xs []float64) *gplot.Plot {
	p := gplot.New()
	p.BackgroundColor = c.theme.Background
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.X.Label.TextStyle.Font.Size = c.theme.LabelFontSize
	p.Y.Label.TextStyle.Font.Size = c.theme.LabelFontSize
	p.X.Tick.Label.Font.Size = c.theme.TickFontSize
	p.Y.Tick.Label.Font.Size = c.theme.TickFontSize
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.TextStyle.Font.Size = c.theme.LegendSize

	grid := plotter.NewGrid()
	grid.Vertical.Color = c.theme.GridColor
	grid.Vertical.Dashes = c.theme.GridPattern.dashes()
	grid.Horizontal.Color = c.theme.GridColor
	grid.Horizontal.Dashes = c.theme.GridPattern.dashes()
	p.Add(grid)

	if spec.Band != nil {
		c.addBand(p, frame, spec, xs)
	}

	// stable sort keeps the declared sequence for equal z-orders
	series := make([]SeriesStyle, len(spec.Series))
	copy(series, spec.Series)
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Order < series[j].Order
	})

	for _, style := range series {
		c.addSeries(p, frame, style, xs)
	}

	xMax := xs[len(xs)-1]
	if len(xs) == 1 {
		xMax = 1
	}
	for _, ref := range spec.ReferenceLines {
		c.addReferenceLine(p, ref, xMax)
	}

	if spec.TightAxes {
		c.tighten(p, frame, spec, xMax)
	}

	return p
}

// addSeries draws one column as one polyline per contiguous finite run.
// The legend entry is attached to the first run only.
func (c *Composer) addSeries(p *gplot.Plot, frame *model.Frame, style SeriesStyle, xs []float64) {
	values, _ := frame.Column(style.Column)

	first := true
	for _, seg := range gapSegments(values) {
		xys := make(plotter.XYs, seg.end-seg.start)
		for i := seg.start; i < seg.end; i++ {
			xys[i-seg.start] = plotter.XY{X: xs[i], Y: values[i]}
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			// plotter.NewLine only fails on copy errors for nil data,
			// which gapSegments never produces
			log.WithError(err).WithField("column", style.Column).
				Error("skipping series segment")
			continue
		}
		line.LineStyle.Width = c.theme.LineWidth
		line.LineStyle.Color = style.Color
		line.LineStyle.Dashes = style.Pattern.dashes()

		p.Add(line)
		if first {
			p.Legend.Add(labelOr(style.Label, style.Column), line)
			first = false
		}
	}
}

// addReferenceLine draws a full-width horizontal guide.
func (c *Composer) addReferenceLine(p *gplot.Plot, ref ReferenceLine, xMax float64) {
	xys := plotter.XYs{
		{X: 0, Y: ref.Value},
		{X: xMax, Y: ref.Value},
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		log.WithError(err).Error("skipping reference line")
		return
	}
	line.LineStyle.Width = c.theme.LineWidth
	line.LineStyle.Color = ref.Color
	line.LineStyle.Dashes = ref.Pattern.dashes()

	p.Add(line)
	if ref.Label != "" {
		p.Legend.Add(ref.Label, line)
	}
}

// addBand shades the area between the two band columns. Rows where either
// side is not finite are skipped.
func (c *Composer) addBand(p *gplot.Plot, frame *model.Frame, spec PanelSpec, xs []float64) {
	upper, _ := frame.Column(spec.Band.Upper)
	lower, _ := frame.Column(spec.Band.Lower)

	var top, bottom plotter.XYs
	for i := range xs {
		if finite(upper[i]) && finite(lower[i]) {
			top = append(top, plotter.XY{X: xs[i], Y: upper[i]})
			bottom = append(bottom, plotter.XY{X: xs[i], Y: lower[i]})
		}
	}
	if len(top) == 0 {
		return
	}
	p.Add(hplot.NewBand(spec.Band.Color, top, bottom))
}

// tighten pins both axis ranges exactly to the data extent, with no
// padding, for the autoscale-tight panels.
func (c *Composer) tighten(p *gplot.Plot, frame *model.Frame, spec PanelSpec, xMax float64) {
	p.X.Padding = 0
	p.Y.Padding = 0
	p.X.Min = 0
	p.X.Max = xMax

	yMin := math.Inf(1)
	yMax := math.Inf(-1)
	for _, style := range spec.Series {
		values, _ := frame.Column(style.Column)
		for _, v := range model.Finite(values) {
			yMin = math.Min(yMin, v)
			yMax = math.Max(yMax, v)
		}
	}
	if spec.Band != nil {
		for _, column := range []string{spec.Band.Upper, spec.Band.Lower} {
			values, _ := frame.Column(column)
			for _, v := range model.Finite(values) {
				yMin = math.Min(yMin, v)
				yMax = math.Max(yMax, v)
			}
		}
	}
	for _, ref := range spec.ReferenceLines {
		yMin = math.Min(yMin, ref.Value)
		yMax = math.Max(yMax, ref.Value)
	}

	if yMin > yMax {
		// nothing finite to pin to, keep the autoscaled range
		return
	}
	if yMin == yMax {
		yMax = yMin + 1
	}
	p.Y.Min = yMin
	p.Y.Max = yMax
}

// segment is a half-open [start, end) run of finite values.
type segment struct {
	start, end int
}

// gapSegments splits a column into maximal contiguous runs of finite
// values. Single finite values surrounded by gaps yield one-point runs,
// which draw as degenerate (invisible) lines, matching the break-at-gap
// policy.
func gapSegments(values model.Series[float64]) []segment {
	var segments []segment
	start := -1
	for i, v := range values {
		if finite(v) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			segments = append(segments, segment{start: start, end: i})
			start = -1
		}
	}
	if start >= 0 {
		segments = append(segments, segment{start: start, end: len(values)})
	}
	return segments
}

// uniteX forces every panel onto the same x range so the stack reads as a
// single shared axis.
func uniteX(panels []*gplot.Plot) {
	axes := make([]*gplot.Axis, 0, len(panels))
	for _, p := range panels {
		axes = append(axes, &p.X)
	}
	plotext.UniteAxisRanges(axes)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func labelOr(label, fallback string) string {
	if label != "" {
		return label
	}
	return fallback
}

package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantauri/bandplot/model"
)

func testFrame(t *testing.T, n int) *model.Frame {
	t.Helper()
	frame := model.NewFrame(model.DenseIndex(n))
	wave := make(model.Series[float64], n)
	level := make(model.Series[float64], n)
	for i := 0; i < n; i++ {
		wave[i] = math.Sin(float64(i) / 10)
		level[i] = float64(i)
	}
	require.NoError(t, frame.AddColumn("wave", wave))
	require.NoError(t, frame.AddColumn("level", level))
	return frame
}

func TestComposePanelCountAndOrder(t *testing.T) {
	frame := testFrame(t, 50)
	specs := []PanelSpec{
		{Series: []SeriesStyle{{Column: "level", Color: Black}}, YLabel: "first"},
		{Series: []SeriesStyle{{Column: "wave", Color: Red}}, YLabel: "second"},
		{Series: []SeriesStyle{{Column: "wave", Color: Blue}}, YLabel: "third"},
	}

	fig, err := NewComposer(nil).Compose(frame, specs...)
	require.NoError(t, err)

	require.Equal(t, 3, fig.Panels())
	assert.Equal(t, 50, fig.Rows())
	assert.Equal(t, "first", fig.panels[0].Y.Label.Text)
	assert.Equal(t, "second", fig.panels[1].Y.Label.Text)
	assert.Equal(t, "third", fig.panels[2].Y.Label.Text)
}

func TestComposeSharedXRange(t *testing.T) {
	frame := testFrame(t, 20)
	specs := []PanelSpec{
		{Series: []SeriesStyle{{Column: "level", Color: Black}}, TightAxes: true},
		{Series: []SeriesStyle{{Column: "wave", Color: Red}}},
	}

	fig, err := NewComposer(ScienceTheme()).Compose(frame, specs...)
	require.NoError(t, err)

	for _, p := range fig.panels {
		assert.Equal(t, 0.0, p.X.Min)
		assert.Equal(t, 19.0, p.X.Max)
	}
}

func TestComposeTightYRange(t *testing.T) {
	frame := testFrame(t, 10)
	spec := PanelSpec{
		Series: []SeriesStyle{{Column: "level", Color: Black}},
		ReferenceLines: []ReferenceLine{
			{Value: -5, Color: Red, Pattern: Dashed, Label: "Floor"},
		},
		TightAxes: true,
	}

	fig, err := NewComposer(nil).Compose(frame, spec)
	require.NoError(t, err)

	p := fig.panels[0]
	assert.Equal(t, -5.0, p.Y.Min)
	assert.Equal(t, 9.0, p.Y.Max)
	assert.Zero(t, p.X.Padding)
	assert.Zero(t, p.Y.Padding)
}

func TestComposeEmptyFrame(t *testing.T) {
	_, err := NewComposer(nil).Compose(nil)
	assert.ErrorIs(t, err, ErrEmptyFrame)

	empty := model.NewFrame(nil)
	_, err = NewComposer(nil).Compose(empty)
	assert.ErrorIs(t, err, ErrEmptyFrame)
}

func TestComposeUnknownColumn(t *testing.T) {
	frame := testFrame(t, 10)
	specs := []PanelSpec{
		{Series: []SeriesStyle{{Column: "wave", Color: Black}}},
		{Series: []SeriesStyle{{Column: "missing", Color: Red}}},
	}

	_, err := NewComposer(nil).Compose(frame, specs...)
	var unknown UnknownColumnError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "missing", unknown.Column)
}

func TestComposeUnknownBandColumn(t *testing.T) {
	frame := testFrame(t, 10)
	spec := PanelSpec{
		Series: []SeriesStyle{{Column: "wave", Color: Black}},
		Band:   &BandFill{Upper: "wave", Lower: "nope", Color: Gray},
	}

	_, err := NewComposer(nil).Compose(frame, spec)
	var unknown UnknownColumnError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Column)
}

func TestComposeWithGaps(t *testing.T) {
	frame := model.NewFrame(model.DenseIndex(6))
	require.NoError(t, frame.AddColumn("gappy", model.Series[float64]{
		1, 2, math.NaN(), math.NaN(), 5, 6,
	}))

	fig, err := NewComposer(nil).Compose(frame, PanelSpec{
		Series:    []SeriesStyle{{Column: "gappy", Color: Black}},
		TightAxes: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fig.Panels())
	assert.Equal(t, 1.0, fig.panels[0].Y.Min)
	assert.Equal(t, 6.0, fig.panels[0].Y.Max)
}

func TestGapSegments(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name   string
		values model.Series[float64]
		want   []segment
	}{
		{"no gaps", model.Series[float64]{1, 2, 3}, []segment{{0, 3}}},
		{"leading gap", model.Series[float64]{nan, 2, 3}, []segment{{1, 3}}},
		{"trailing gap", model.Series[float64]{1, 2, nan}, []segment{{0, 2}}},
		{"middle gap", model.Series[float64]{1, nan, 3}, []segment{{0, 1}, {2, 3}}},
		{"all gaps", model.Series[float64]{nan, nan}, nil},
		{"empty", model.Series[float64]{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gapSegments(tt.values))
		})
	}
}

func TestSeriesZOrder(t *testing.T) {
	// equal orders keep declared sequence; higher orders draw later
	styles := []SeriesStyle{
		{Column: "a", Order: 1},
		{Column: "b", Order: 0},
		{Column: "c", Order: 0},
	}
	frame := model.NewFrame(model.DenseIndex(3))
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, frame.AddColumn(name, model.Series[float64]{1, 2, 3}))
	}

	fig, err := NewComposer(nil).Compose(frame, PanelSpec{Series: styles})
	require.NoError(t, err)
	require.Equal(t, 1, fig.Panels())
}

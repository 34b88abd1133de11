package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantauri/bandplot/model"
)

func ramp(n int) model.Series[float64] {
	out := make(model.Series[float64], n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

func TestSMAWarmup(t *testing.T) {
	values := ramp(10)
	sma := SMA(values, 4)

	require.Len(t, sma, 10)
	for i := 0; i < 3; i++ {
		assert.True(t, math.IsNaN(sma[i]), "index %d should be warmup", i)
	}
	// SMA(4) over 1..10 is the midpoint of each window.
	assert.InDelta(t, 2.5, sma[3], 1e-9)
	assert.InDelta(t, 8.5, sma[9], 1e-9)
}

func TestMovingStdWarmup(t *testing.T) {
	values := model.Series[float64]{2, 2, 2, 2, 2, 2}
	mstd := MovingStd(values, 3)

	require.Len(t, mstd, 6)
	assert.True(t, math.IsNaN(mstd[0]))
	assert.True(t, math.IsNaN(mstd[1]))
	for i := 2; i < 6; i++ {
		assert.InDelta(t, 0.0, mstd[i], 1e-9)
	}
}

func TestBollingerBandsOrdering(t *testing.T) {
	values := ramp(50)
	upper, middle, lower := BollingerBands(values, 20, 2.0)

	require.Len(t, upper, 50)
	require.Len(t, middle, 50)
	require.Len(t, lower, 50)

	for i := 0; i < 19; i++ {
		assert.True(t, math.IsNaN(middle[i]))
	}
	for i := 19; i < 50; i++ {
		assert.GreaterOrEqual(t, upper[i], middle[i])
		assert.GreaterOrEqual(t, middle[i], lower[i])
	}
}

func TestPercentB(t *testing.T) {
	values := model.Series[float64]{5, 10, 0, 3}
	upper := model.Series[float64]{10, 10, 10, 4}
	lower := model.Series[float64]{0, 0, 0, 4}

	perb := PercentB(values, upper, lower)

	require.Len(t, perb, 4)
	assert.InDelta(t, 0.5, perb[0], 1e-9)
	assert.InDelta(t, 1.0, perb[1], 1e-9)
	assert.InDelta(t, 0.0, perb[2], 1e-9)
	assert.True(t, math.IsNaN(perb[3]), "zero-width band has no %b")
}

func TestBandwidth(t *testing.T) {
	upper := model.Series[float64]{12, 11}
	middle := model.Series[float64]{10, 0}
	lower := model.Series[float64]{8, 9}

	bw := Bandwidth(upper, middle, lower)

	require.Len(t, bw, 2)
	assert.InDelta(t, 0.4, bw[0], 1e-9)
	assert.True(t, math.IsNaN(bw[1]), "zero middle band has no bandwidth")
}

func TestMACDWarmup(t *testing.T) {
	macd, signal := MACD(ramp(100), DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal)

	require.Len(t, macd, 100)
	require.Len(t, signal, 100)
	for i := 0; i < DefaultMACDSlow-1; i++ {
		assert.True(t, math.IsNaN(macd[i]))
	}
	for i := 0; i < DefaultMACDSlow+DefaultMACDSignal-2; i++ {
		assert.True(t, math.IsNaN(signal[i]))
	}
	for i := DefaultMACDSlow + DefaultMACDSignal - 2; i < 100; i++ {
		assert.False(t, math.IsNaN(macd[i]))
		assert.False(t, math.IsNaN(signal[i]))
	}
}

func TestTypicalPrice(t *testing.T) {
	high := model.Series[float64]{12, 15}
	low := model.Series[float64]{6, 9}
	close := model.Series[float64]{9, 12}

	tp := TypicalPrice(high, low, close)

	require.Len(t, tp, 2)
	assert.InDelta(t, 9.0, tp[0], 1e-9)
	assert.InDelta(t, 12.0, tp[1], 1e-9)
}

func TestBollingerFrame(t *testing.T) {
	n := 60
	high, low, close := ramp(n), ramp(n), ramp(n)
	for i := range high {
		high[i] += 1
		low[i] -= 1
	}

	frame, err := BollingerFrame(high, low, close, DefaultBandPeriod, DefaultBandStdDev)
	require.NoError(t, err)

	assert.Equal(t, n, frame.Len())
	assert.Equal(t, []string{"tp", "ubb", "mbb", "lbb", "perb", "bw"}, frame.Columns())
}

func TestOverlayFrame(t *testing.T) {
	frame, err := OverlayFrame(ramp(120))
	require.NoError(t, err)

	assert.Equal(t, 120, frame.Len())
	assert.Equal(t,
		[]string{"data", "sma", "ema", "mstd", "bb_up", "bb_down", "macd", "signal"},
		frame.Columns())

	data, ok := frame.Column("data")
	require.True(t, ok)
	assert.InDelta(t, 1.0, data[0], 1e-9)
}

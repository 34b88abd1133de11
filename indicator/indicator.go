// Package indicator computes the technical-indicator columns the chart
// pipeline consumes. The plotting core never recomputes or validates these
// values; it draws whatever it is given.
package indicator

import (
	"math"

	"github.com/markcheno/go-talib"

	"github.com/quantauri/bandplot/model"
)

// MaType mirrors the talib moving-average selector.
type MaType = talib.MaType

const (
	TypeSMA = talib.SMA
	TypeEMA = talib.EMA
)

// Default periods, matching the reference indicator table.
const (
	DefaultSMAPeriod    = 20
	DefaultEMAPeriod    = 12
	DefaultBandStdDev   = 2.0
	DefaultMACDFast     = 12
	DefaultMACDSlow     = 26
	DefaultMACDSignal   = 9
	DefaultBandPeriod   = 20
	defaultNbDeviations = 1.0
)

// SMA is the simple moving average. The first period-1 values are NaN.
func SMA(values model.Series[float64], period int) model.Series[float64] {
	return padNaN(talib.Sma(values, period), period-1)
}

// EMA is the exponential moving average. The first period-1 values are NaN.
func EMA(values model.Series[float64], period int) model.Series[float64] {
	return padNaN(talib.Ema(values, period), period-1)
}

// MovingStd is the rolling sample standard deviation.
func MovingStd(values model.Series[float64], period int) model.Series[float64] {
	return padNaN(talib.StdDev(values, period, defaultNbDeviations), period-1)
}

// BollingerBands returns the upper, middle and lower bands: SMA(period)
// plus/minus stdDev rolling standard deviations.
func BollingerBands(values model.Series[float64], period int, stdDev float64) (upper, middle, lower model.Series[float64]) {
	up, mid, low := talib.BBands(values, period, stdDev, stdDev, talib.SMA)
	warmup := period - 1
	return padNaN(up, warmup), padNaN(mid, warmup), padNaN(low, warmup)
}

// PercentB is the position of the value inside the band range, nominally
// in [0, 1]. Rows where the band has zero width yield NaN.
func PercentB(values, upper, lower model.Series[float64]) model.Series[float64] {
	out := make(model.Series[float64], len(values))
	for i := range values {
		width := upper[i] - lower[i]
		if width == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = (values[i] - lower[i]) / width
	}
	return out
}

// Bandwidth is the normalized band width, a volatility proxy.
func Bandwidth(upper, middle, lower model.Series[float64]) model.Series[float64] {
	out := make(model.Series[float64], len(upper))
	for i := range upper {
		if middle[i] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = (upper[i] - lower[i]) / middle[i]
	}
	return out
}

// MACD returns the MACD line and its signal line.
func MACD(values model.Series[float64], fast, slow, signal int) (macd, signalLine model.Series[float64]) {
	macdLine, sig, _ := talib.Macd(values, fast, slow, signal)
	return padNaN(macdLine, slow-1), padNaN(sig, slow+signal-2)
}

// TypicalPrice is (high+low+close)/3.
func TypicalPrice(high, low, close model.Series[float64]) model.Series[float64] {
	return talib.TypPrice(high, low, close)
}

// BollingerFrame builds the tp/ubb/mbb/lbb/perb/bw table from OHLC data.
func BollingerFrame(high, low, close model.Series[float64], period int, stdDev float64) (*model.Frame, error) {
	tp := TypicalPrice(high, low, close)
	ubb, mbb, lbb := BollingerBands(tp, period, stdDev)

	frame := model.NewFrame(model.DenseIndex(len(tp)))
	columns := []struct {
		name   string
		values model.Series[float64]
	}{
		{"tp", tp},
		{"ubb", ubb},
		{"mbb", mbb},
		{"lbb", lbb},
		{"perb", PercentB(tp, ubb, lbb)},
		{"bw", Bandwidth(ubb, mbb, lbb)},
	}
	for _, col := range columns {
		if err := frame.AddColumn(col.name, col.values); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

// OverlayFrame builds the data/sma/ema/mstd/bb_up/bb_down/macd/signal table
// from a close-price series.
func OverlayFrame(close model.Series[float64]) (*model.Frame, error) {
	sma := SMA(close, DefaultSMAPeriod)
	ema := EMA(close, DefaultEMAPeriod)
	mstd := MovingStd(close, DefaultBandPeriod)
	bbUp, _, bbDown := BollingerBands(close, DefaultBandPeriod, DefaultBandStdDev)
	macd, signal := MACD(close, DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal)

	frame := model.NewFrame(model.DenseIndex(len(close)))
	columns := []struct {
		name   string
		values model.Series[float64]
	}{
		{"data", close},
		{"sma", sma},
		{"ema", ema},
		{"mstd", mstd},
		{"bb_up", bbUp},
		{"bb_down", bbDown},
		{"macd", macd},
		{"signal", signal},
	}
	for _, col := range columns {
		if err := frame.AddColumn(col.name, col.values); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

// padNaN marks the first n warmup values as missing, so warmup rows plot
// as gaps instead of zeros.
func padNaN(values []float64, n int) model.Series[float64] {
	out := model.Series[float64](values)
	if n > len(out) {
		n = len(out)
	}
	for i := 0; i < n; i++ {
		out[i] = math.NaN()
	}
	return out
}

// Package metrics computes descriptive statistics for frame columns.
package metrics

import (
	"errors"
	"io"
	"math"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/quantauri/bandplot/model"
)

// Summary holds the descriptive statistics of a single column.
type Summary struct {
	Count   int
	Missing int
	Min     float64
	Max     float64
	Mean    float64
	Std     float64
}

// Describe summarizes a column. NaN and Inf entries count as missing and
// are excluded from the statistics. An all-missing column yields NaN
// aggregates.
func Describe(values model.Series[float64]) Summary {
	finite := model.Finite(values)

	summary := Summary{
		Count:   len(values),
		Missing: len(values) - len(finite),
		Min:     math.NaN(),
		Max:     math.NaN(),
		Mean:    math.NaN(),
		Std:     math.NaN(),
	}
	if len(finite) == 0 {
		return summary
	}

	summary.Min = floats.Min(finite)
	summary.Max = floats.Max(finite)
	summary.Mean = stat.Mean(finite, nil)
	summary.Std = stat.StdDev(finite, nil)
	return summary
}

// PrintHistogram writes an ASCII histogram of the column's finite values.
func PrintHistogram(w io.Writer, values model.Series[float64]) error {
	finite := model.Finite(values)
	if len(finite) == 0 {
		return errors.New("metrics: no finite values to plot")
	}

	hist := histogram.Hist(15, finite)
	return histogram.Fprint(w, hist, histogram.Linear(10))
}

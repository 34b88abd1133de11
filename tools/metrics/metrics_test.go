package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantauri/bandplot/model"
)

func TestDescribe(t *testing.T) {
	summary := Describe(model.Series[float64]{2, 4, 4, 4, 5, 5, 7, 9})

	assert.Equal(t, 8, summary.Count)
	assert.Equal(t, 0, summary.Missing)
	assert.Equal(t, 2.0, summary.Min)
	assert.Equal(t, 9.0, summary.Max)
	assert.InDelta(t, 5.0, summary.Mean, 1e-9)
	assert.InDelta(t, 2.138089935, summary.Std, 1e-6)
}

func TestDescribeMissing(t *testing.T) {
	summary := Describe(model.Series[float64]{1, math.NaN(), 3, math.NaN()})

	assert.Equal(t, 4, summary.Count)
	assert.Equal(t, 2, summary.Missing)
	assert.Equal(t, 1.0, summary.Min)
	assert.Equal(t, 3.0, summary.Max)
	assert.InDelta(t, 2.0, summary.Mean, 1e-9)
}

func TestDescribeAllMissing(t *testing.T) {
	summary := Describe(model.Series[float64]{math.NaN(), math.NaN()})

	assert.Equal(t, 2, summary.Missing)
	assert.True(t, math.IsNaN(summary.Min))
	assert.True(t, math.IsNaN(summary.Mean))
}

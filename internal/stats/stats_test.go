package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jengzang/movr-go/internal/stats"
)

func TestSummarize(t *testing.T) {
	values := []float64{40, 10, 30, 20, 0}
	s := stats.Summarize(values)

	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 100.0, s.Total)
	assert.Equal(t, 20.0, s.Mean)
	assert.Equal(t, 20.0, s.Median)
	assert.InDelta(t, 36.0, s.P90, 1e-9)
	assert.Equal(t, 40.0, s.Max)
	assert.Equal(t, []float64{40, 10, 30, 20, 0}, values, "input must not be sorted in place")
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, stats.Summary{}, stats.Summarize(nil))
}

func TestQuantile(t *testing.T) {
	assert.Equal(t, 0.0, stats.Quantile(nil, 0.5))
	assert.Equal(t, 2.5, stats.Quantile([]float64{4, 1, 3, 2}, 0.5))
	assert.Equal(t, 1.0, stats.Quantile([]float64{4, 1, 3, 2}, -1))
	assert.Equal(t, 4.0, stats.Quantile([]float64{4, 1, 3, 2}, 2))
}

func TestShannonEntropy(t *testing.T) {
	assert.Equal(t, 0.0, stats.ShannonEntropy(nil))
	assert.Equal(t, 0.0, stats.ShannonEntropy([]int{7}))
	assert.InDelta(t, 1.0, stats.ShannonEntropy([]int{3, 3}), 1e-12)
	assert.InDelta(t, 2.0, stats.ShannonEntropy([]int{1, 1, 1, 1, 0}), 1e-12)
}

func TestNormalizedEntropy(t *testing.T) {
	assert.Equal(t, 0.0, stats.NormalizedEntropy([]int{5}))
	assert.InDelta(t, 1.0, stats.NormalizedEntropy([]int{2, 2, 2}), 1e-12)
	assert.Less(t, stats.NormalizedEntropy([]int{100, 1, 1}), 0.5)
}

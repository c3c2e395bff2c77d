package cluster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMedian_InfPropagation checks that median reports +Inf whenever the
// largest element of the sorted input is +Inf, even when most of the
// other elements are finite (a literal middle-element computation would
// average those away instead of propagating the infinity).
func TestMedian_InfPropagation(t *testing.T) {
	assert.True(t, math.IsInf(median([]float64{1, 2, 3, math.Inf(1)}), 1))
	assert.True(t, math.IsInf(median([]float64{1, math.Inf(1)}), 1))
	assert.True(t, math.IsInf(median([]float64{math.Inf(1)}), 1))
}

func TestMedian_Finite(t *testing.T) {
	assert.Equal(t, 2.0, median([]float64{1, 2, 3}))
	assert.Equal(t, 2.5, median([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, median(nil))
}

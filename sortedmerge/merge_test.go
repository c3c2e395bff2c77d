package sortedmerge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/niemasd/TreeCluster/sortedmerge"
)

func TestMergeTwo(t *testing.T) {
	got := sortedmerge.MergeTwo([]float64{1, 3, 5}, []float64{2, 2, 4})
	assert.Equal(t, []float64{1, 2, 2, 3, 4, 5}, got)
}

func TestMergeTwo_EmptySides(t *testing.T) {
	assert.Equal(t, []float64{1, 2}, sortedmerge.MergeTwo(nil, []float64{1, 2}))
	assert.Equal(t, []float64{1, 2}, sortedmerge.MergeTwo([]float64{1, 2}, nil))
	assert.Empty(t, sortedmerge.MergeTwo(nil, nil))
}

func TestMergeK(t *testing.T) {
	got := sortedmerge.MergeK([][]float64{
		{2, 2, 4, 4},
		{4, 4},
		{2, 2},
	})
	assert.Equal(t, []float64{2, 2, 2, 2, 4, 4, 4, 4}, got)
}

func TestMergeK_SkipsEmptyLists(t *testing.T) {
	got := sortedmerge.MergeK([][]float64{nil, {1, 2}, nil, {3}})
	assert.Equal(t, []float64{1, 2, 3}, got)
}

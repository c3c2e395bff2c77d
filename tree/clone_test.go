package tree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niemasd/TreeCluster/tree"
)

func TestClone_IsIndependentOfOriginal(t *testing.T) {
	tr := &tree.Tree{}
	root, a, b := buildCherry(tr, 100, true)
	tr.Root = root

	clone := tr.Clone()

	_, err := tree.Prepare(tr, math.Inf(-1))
	require.NoError(t, err)
	tree.Cut(tr, root)
	assert.True(t, tr.Nodes[root].Deleted)

	assert.False(t, clone.Nodes[root].Deleted, "cloning before mutation keeps the clone untouched")
	assert.Equal(t, "A", clone.Nodes[a].Label)
	assert.Equal(t, "B", clone.Nodes[b].Label)
	assert.Equal(t, 1.0, clone.Nodes[a].EdgeLength)
}

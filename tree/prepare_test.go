package tree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niemasd/TreeCluster/tree"
)

// buildCherry builds "(A:1,B:1):0" rooted at a fresh internal node and
// returns the arena together with the indices of root, A, B.
func buildCherry(t *tree.Tree, rootSupport float64, hasSupport bool) (root, a, b int) {
	root = t.NewNode()
	a = t.NewNode()
	b = t.NewNode()
	t.Nodes[a].Label, t.Nodes[a].EdgeLength = "A", 1
	t.Nodes[b].Label, t.Nodes[b].EdgeLength = "B", 1
	t.Nodes[a].Parent, t.Nodes[b].Parent = root, root
	t.Nodes[root].Children = []int{a, b}
	t.Nodes[root].Support = rootSupport
	t.Nodes[root].HasSupport = hasSupport
	return
}

func TestPrepare_Basic(t *testing.T) {
	tr := &tree.Tree{}
	root, a, b := buildCherry(tr, 100, true)
	tr.Root = root

	leaves, err := tree.Prepare(tr, math.Inf(-1))
	require.NoError(t, err)
	assert.Contains(t, leaves, "A")
	assert.Contains(t, leaves, "B")
	assert.Len(t, leaves, 2)
	assert.Equal(t, 0.0, tr.Nodes[root].EdgeLength, "root edge length is forced to 0")
	assert.False(t, tr.Nodes[a].Deleted)
	assert.False(t, tr.Nodes[b].Deleted)
}

func TestPrepare_AbsentSupportDefaultsTo100(t *testing.T) {
	tr := &tree.Tree{}
	root, _, _ := buildCherry(tr, 0, false)
	tr.Root = root

	_, err := tree.Prepare(tr, 50)
	require.NoError(t, err)
	assert.Equal(t, 100.0, tr.Nodes[root].Support)
	assert.False(t, math.IsInf(tr.Nodes[root].EdgeLength, 1), "absent support treated as 100 passes a 50 threshold")
}

func TestPrepare_LowSupportForcesInfiniteEdge(t *testing.T) {
	tr := &tree.Tree{}
	root, _, _ := buildCherry(tr, 60, true)
	tr.Root = root

	_, err := tree.Prepare(tr, 75)
	require.NoError(t, err)
	assert.True(t, math.IsInf(tr.Nodes[root].EdgeLength, 1))
}

func TestPrepare_ResolvesUnifurcation(t *testing.T) {
	tr := &tree.Tree{}
	leaf := tr.NewNode()
	tr.Nodes[leaf].Label = "A"
	tr.Nodes[leaf].EdgeLength = 1

	unifurcating := tr.NewNode()
	tr.Nodes[unifurcating].Children = []int{leaf}
	tr.Nodes[unifurcating].EdgeLength = 2
	tr.Nodes[leaf].Parent = unifurcating
	tr.Root = unifurcating

	leaves, err := tree.Prepare(tr, math.Inf(-1))
	require.NoError(t, err)
	assert.Len(t, leaves, 1)
	root := tr.Nodes[tr.Root]
	assert.Equal(t, "A", root.Label, "the root absorbs the leaf's label")
	assert.Len(t, root.Children, 0, "the root becomes a leaf itself")
	assert.Equal(t, 1.0, root.EdgeLength, "edge lengths are summed across the unifurcation, after the root's own length is forced to 0")
}

func TestPrepare_ResolvesPolytomy(t *testing.T) {
	tr := &tree.Tree{}
	root := tr.NewNode()
	var kids []int
	for _, name := range []string{"A", "B", "C"} {
		k := tr.NewNode()
		tr.Nodes[k].Label = name
		tr.Nodes[k].EdgeLength = 1
		tr.Nodes[k].Parent = root
		kids = append(kids, k)
	}
	tr.Nodes[root].Children = kids
	tr.Root = root

	leaves, err := tree.Prepare(tr, math.Inf(-1))
	require.NoError(t, err)
	assert.Len(t, leaves, 3)
	assert.Len(t, tr.Nodes[tr.Root].Children, 2, "a trifurcating root becomes strictly bifurcating")
}

package treeio_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niemasd/TreeCluster/treeio"
)

func TestParseAll_SimpleCherry(t *testing.T) {
	trees, err := treeio.ParseAll(strings.NewReader("(A:1,B:1):0;"))
	require.NoError(t, err)
	require.Len(t, trees, 1)

	tr := trees[0]
	root := tr.Nodes[tr.Root]
	require.Len(t, root.Children, 2)

	a, b := tr.Nodes[root.Children[0]], tr.Nodes[root.Children[1]]
	assert.Equal(t, "A", a.Label)
	assert.Equal(t, 1.0, a.EdgeLength)
	assert.Equal(t, "B", b.Label)
	assert.Equal(t, 1.0, b.EdgeLength)
}

func TestParseAll_InternalLabelIsSupport(t *testing.T) {
	trees, err := treeio.ParseAll(strings.NewReader("((A:1,B:1)95:2,C:1);"))
	require.NoError(t, err)
	require.Len(t, trees, 1)

	tr := trees[0]
	root := tr.Nodes[tr.Root]
	ab := tr.Nodes[root.Children[0]]
	assert.True(t, ab.HasSupport)
	assert.Equal(t, 95.0, ab.Support)
	assert.Equal(t, 2.0, ab.EdgeLength)
}

func TestParseAll_MultipleStatements(t *testing.T) {
	trees, err := treeio.ParseAll(strings.NewReader("(A:1,B:1);\n(C:1,D:1);\n"))
	require.NoError(t, err)
	require.Len(t, trees, 2)
}

func TestParseAll_Polytomy(t *testing.T) {
	trees, err := treeio.ParseAll(strings.NewReader("(A:1,B:1,C:1);"))
	require.NoError(t, err)
	require.Len(t, trees, 1)
	assert.Len(t, trees[0].Nodes[trees[0].Root].Children, 3)
}

func TestParseAll_EmptyInputYieldsNoTrees(t *testing.T) {
	trees, err := treeio.ParseAll(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, trees)
}

func TestParseAll_MalformedMissingSemicolon(t *testing.T) {
	_, err := treeio.ParseAll(strings.NewReader("(A:1,B:1)"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, treeio.ErrMalformedNewick))
}

func TestParseAll_MalformedUnbalancedParens(t *testing.T) {
	_, err := treeio.ParseAll(strings.NewReader("(A:1,B:1;"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, treeio.ErrMalformedNewick))
}

func TestParseAll_CommentIsCaptured(t *testing.T) {
	trees, err := treeio.ParseAll(strings.NewReader("(A:1[note],B:1);"))
	require.NoError(t, err)
	root := trees[0].Nodes[trees[0].Root]
	a := trees[0].Nodes[root.Children[0]]
	assert.Equal(t, "note", a.Comment)
}

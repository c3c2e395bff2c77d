package cluster_test

import (
	"github.com/niemasd/TreeCluster/cluster"
	"github.com/niemasd/TreeCluster/tree"
)

// newCherry builds a two-leaf clade "(label1:len1,label2:len2):edgeLen"
// under a fresh internal node and returns the internal node's index.
func newCherry(t *tree.Tree, label1 string, len1 float64, label2 string, len2, edgeLen float64) int {
	root := t.NewNode()
	a := t.NewNode()
	b := t.NewNode()
	t.Nodes[a].Label, t.Nodes[a].EdgeLength = label1, len1
	t.Nodes[b].Label, t.Nodes[b].EdgeLength = label2, len2
	t.Nodes[a].Parent, t.Nodes[b].Parent = root, root
	t.Nodes[root].Children = []int{a, b}
	t.Nodes[root].EdgeLength = edgeLen
	return root
}

// newLeaf creates a standalone leaf node with the given label and edge
// length, with no parent assigned yet.
func newLeaf(t *tree.Tree, label string, edgeLen float64) int {
	idx := t.NewNode()
	t.Nodes[idx].Label, t.Nodes[idx].EdgeLength = label, edgeLen
	return idx
}

// join attaches left and right as children of a fresh root node.
func join(t *tree.Tree, left, right int, edgeLen float64) int {
	root := t.NewNode()
	t.Nodes[left].Parent, t.Nodes[right].Parent = root, root
	t.Nodes[root].Children = []int{left, right}
	t.Nodes[root].EdgeLength = edgeLen
	return root
}

// fourLeafBalanced builds "((A:1,B:1):x,(C:1,D:1):x);" for the given
// cherry edge length x, returning the ready-to-cluster tree.
func fourLeafBalanced(cherryEdge float64) *tree.Tree {
	tr := &tree.Tree{}
	ab := newCherry(tr, "A", 1, "B", 1, cherryEdge)
	cd := newCherry(tr, "C", 1, "D", 1, cherryEdge)
	tr.Root = join(tr, ab, cd, 0)
	return tr
}

// leafLabels collects every leaf label across a list of clusters.
func leafLabels(clusters []cluster.Cluster) []string {
	var out []string
	for _, c := range clusters {
		out = append(out, c...)
	}
	return out
}

package cluster

import "github.com/niemasd/TreeCluster/tree"

// runRootDist cuts any node whose cumulative distance from the root
// exceeds threshold. It runs a single preorder pass so that each node's
// RootDist can be derived from its parent's before the node itself is
// examined.
func runRootDist(t *tree.Tree, leaves map[string]struct{}, threshold float64) []Cluster {
	acc := newAccumulator(leaves)
	for _, idx := range tree.Preorder(t) {
		n := t.Nodes[idx]
		if n.Deleted {
			continue
		}
		if n.Parent < 0 {
			n.RootDist = 0
		} else {
			n.RootDist = t.Nodes[n.Parent].RootDist + n.EdgeLength
		}
		if n.RootDist > threshold {
			acc.add(tree.Cut(t, idx))
		}
	}
	return acc.finish()
}

package cluster

import "github.com/niemasd/TreeCluster/tree"

// runMax enforces that the diameter through every node (LeftDist +
// RightDist) stays at most threshold; on violation the longer side is
// cut. Clusters need not be clades.
func runMax(t *tree.Tree, leaves map[string]struct{}, threshold float64) []Cluster {
	acc := newAccumulator(leaves)
	for _, idx := range tree.Postorder(t) {
		n := t.Nodes[idx]
		if n.Deleted {
			continue
		}
		if len(n.Children) == 0 {
			n.LeftDist, n.RightDist = 0, 0
			continue
		}

		l, r := t.Nodes[n.Children[0]], t.Nodes[n.Children[1]]
		if l.Deleted && r.Deleted {
			acc.add(tree.Cut(t, idx))
			continue
		}
		n.LeftDist = sideDist(l, max)
		n.RightDist = sideDist(r, max)

		if n.LeftDist+n.RightDist > threshold {
			if n.LeftDist > n.RightDist {
				acc.add(tree.Cut(t, n.Children[0]))
				n.LeftDist = 0
			} else {
				acc.add(tree.Cut(t, n.Children[1]))
				n.RightDist = 0
			}
		}
	}
	return acc.finish()
}

// runMaxClade is runMax with both children cut on violation, so every
// emitted cluster is exactly a clade.
func runMaxClade(t *tree.Tree, leaves map[string]struct{}, threshold float64) []Cluster {
	return runClade(t, leaves, threshold, max)
}

// runSingleLinkageClade replaces the max recurrence with min: two clades
// merge as soon as some cross-pair of their leaves is within threshold.
func runSingleLinkageClade(t *tree.Tree, leaves map[string]struct{}, threshold float64) []Cluster {
	return runClade(t, leaves, threshold, min)
}

// runClade is the shared scaffold for max_clade and single_linkage_clade:
// identical recurrence shape, differing only in whether the per-child
// side distance folds with max or min.
func runClade(t *tree.Tree, leaves map[string]struct{}, threshold float64, fold func(a, b float64) float64) []Cluster {
	acc := newAccumulator(leaves)
	for _, idx := range tree.Postorder(t) {
		n := t.Nodes[idx]
		if n.Deleted {
			continue
		}
		if len(n.Children) == 0 {
			n.LeftDist, n.RightDist = 0, 0
			continue
		}

		l, r := t.Nodes[n.Children[0]], t.Nodes[n.Children[1]]
		if l.Deleted && r.Deleted {
			acc.add(tree.Cut(t, idx))
			continue
		}
		n.LeftDist = sideDist(l, fold)
		n.RightDist = sideDist(r, fold)

		if n.LeftDist+n.RightDist > threshold {
			acc.add(tree.Cut(t, n.Children[0]))
			n.LeftDist = 0
			acc.add(tree.Cut(t, n.Children[1]))
			n.RightDist = 0
		}
	}
	return acc.finish()
}

// sideDist computes one child's contribution to its parent's
// LeftDist/RightDist: 0 if the child is already deleted, else
// fold(child.LeftDist, child.RightDist) + child.EdgeLength.
func sideDist(child *tree.Node, fold func(a, b float64) float64) float64 {
	if child.Deleted {
		return 0
	}
	return fold(child.LeftDist, child.RightDist) + child.EdgeLength
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// runLength cuts any non-deleted node whose own edge length exceeds
// threshold. Clusters need not be clades.
func runLength(t *tree.Tree, leaves map[string]struct{}, threshold float64) []Cluster {
	acc := newAccumulator(leaves)
	for _, idx := range tree.Postorder(t) {
		n := t.Nodes[idx]
		if n.Deleted {
			continue
		}
		if n.EdgeLength > threshold {
			acc.add(tree.Cut(t, idx))
		}
	}
	return acc.finish()
}

// runLengthClade is runLength applied one level down: for any non-deleted
// internal node, if either child's edge length exceeds threshold, both
// children are cut, so every emitted cluster is a clade.
func runLengthClade(t *tree.Tree, leaves map[string]struct{}, threshold float64) []Cluster {
	acc := newAccumulator(leaves)
	for _, idx := range tree.Postorder(t) {
		n := t.Nodes[idx]
		if n.Deleted || len(n.Children) == 0 {
			continue
		}
		l, r := t.Nodes[n.Children[0]], t.Nodes[n.Children[1]]
		if l.EdgeLength > threshold || r.EdgeLength > threshold {
			acc.add(tree.Cut(t, n.Children[0]))
			acc.add(tree.Cut(t, n.Children[1]))
		}
	}
	return acc.finish()
}

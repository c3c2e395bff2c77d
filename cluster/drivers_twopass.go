package cluster

import (
	"math"
	"sort"

	"github.com/niemasd/TreeCluster/sortedmerge"
	"github.com/niemasd/TreeCluster/tree"
)

// runAvgClade bounds the average pairwise leaf distance within a clade.
// It runs a bottom-up dynamic-programming pass that accumulates, at each
// node, the number of leaves below it and the total pairwise leaf
// distance among them, followed by a top-down traversal from the root
// that cuts the first node on each path whose own subtree average does
// not exceed threshold. Average pairwise distance is not monotonic with
// subtree size, so a node can satisfy the bound even when a descendant
// does not: the cut decision must start at the root and stop descending
// as soon as a node qualifies, rather than inspecting nodes bottom-up.
func runAvgClade(t *tree.Tree, leaves map[string]struct{}, threshold float64) []Cluster {
	for _, idx := range tree.Postorder(t) {
		n := t.Nodes[idx]
		if n.Deleted {
			continue
		}
		if len(n.Children) == 0 {
			n.NumLeaves = 1
			n.TotalLeafDist = 0
			n.TotalPairDist = 0
			n.AvgPairDist = 0
			continue
		}

		l, r := t.Nodes[n.Children[0]], t.Nodes[n.Children[1]]
		if l.Deleted && r.Deleted {
			continue
		}

		var lLeaves, rLeaves int
		var lTotal, rTotal float64
		if !l.Deleted {
			lLeaves = l.NumLeaves
			lTotal = l.TotalLeafDist + l.EdgeLength*float64(lLeaves)
		}
		if !r.Deleted {
			rLeaves = r.NumLeaves
			rTotal = r.TotalLeafDist + r.EdgeLength*float64(rLeaves)
		}

		n.NumLeaves = lLeaves + rLeaves
		n.TotalLeafDist = lTotal + rTotal

		var lPair, rPair float64
		if !l.Deleted {
			lPair = l.TotalPairDist
		}
		if !r.Deleted {
			rPair = r.TotalPairDist
		}
		n.TotalPairDist = lPair + rPair + lTotal*float64(rLeaves) + rTotal*float64(lLeaves)

		if n.NumLeaves > 1 {
			n.AvgPairDist = n.TotalPairDist / (float64(n.NumLeaves) * float64(n.NumLeaves-1) / 2)
		} else {
			n.AvgPairDist = 0
		}
	}

	return topDownCut(t, leaves, func(n *tree.Node) bool {
		return n.AvgPairDist <= threshold
	})
}

// runMedClade bounds the median pairwise leaf distance within a clade. It
// maintains, at every surviving node, a sorted list of leaf distances and
// a sorted list of pairwise distances among the leaves below it, merged
// bottom-up via sortedmerge, then cuts top-down from the root the first
// node on each path whose own subtree median does not exceed threshold,
// for the same non-monotonicity reason as runAvgClade. Children's lists
// are freed as soon as they are merged into the parent's, keeping peak
// memory at O(n²) overall (the root's pairwise list alone has n(n-1)/2
// entries) rather than Θ(n²) per node.
func runMedClade(t *tree.Tree, leaves map[string]struct{}, threshold float64) []Cluster {
	for _, idx := range tree.Postorder(t) {
		n := t.Nodes[idx]
		if n.Deleted {
			continue
		}
		if len(n.Children) == 0 {
			n.LeafDists = []float64{0}
			n.PairDists = nil
			n.MedPairDist = 0
			continue
		}

		l, r := t.Nodes[n.Children[0]], t.Nodes[n.Children[1]]
		if l.Deleted && r.Deleted {
			continue
		}

		var lLeafDists, rLeafDists []float64
		if !l.Deleted {
			lLeafDists = addConst(l.LeafDists, l.EdgeLength)
		}
		if !r.Deleted {
			rLeafDists = addConst(r.LeafDists, r.EdgeLength)
		}
		n.LeafDists = sortedmerge.MergeTwo(lLeafDists, rLeafDists)

		crossDists := make([]float64, 0, len(lLeafDists)*len(rLeafDists))
		for _, a := range lLeafDists {
			for _, b := range rLeafDists {
				crossDists = append(crossDists, a+b)
			}
		}
		sort.Float64s(crossDists)

		lists := make([][]float64, 0, 3)
		if !l.Deleted {
			lists = append(lists, l.PairDists)
		}
		if !r.Deleted {
			lists = append(lists, r.PairDists)
		}
		lists = append(lists, crossDists)
		n.PairDists = sortedmerge.MergeK(lists)
		n.MedPairDist = median(n.PairDists)

		l.LeafDists, l.PairDists = nil, nil
		r.LeafDists, r.PairDists = nil, nil
	}

	return topDownCut(t, leaves, func(n *tree.Node) bool {
		return n.MedPairDist <= threshold
	})
}

// addConst returns a new slice with k added to every element of xs,
// preserving sortedness.
func addConst(xs []float64, k float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x + k
	}
	return out
}

// median returns the median of a sorted, non-empty slice: +Inf if the
// largest element is +Inf (a low-support edge forces any constraint
// spanning it to be violated, regardless of how many finite pairs sit
// below it), otherwise the middle element for odd length or the average
// of the two middle elements for even length.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if math.IsInf(sorted[n-1], 1) {
		return math.Inf(1)
	}
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// topDownCut performs a breadth-first traversal starting at t.Root,
// cutting the first node on each path whose own aggregate satisfies
// satisfies (emitting its whole subtree as one cluster) and otherwise
// descending into its children. Used by runAvgClade and runMedClade,
// whose cut decisions are not expressible as a bottom-up pass because
// average/median pairwise distance is not monotonic with subtree size:
// a node can satisfy the bound even when one of its descendants does not.
func topDownCut(t *tree.Tree, leaves map[string]struct{}, satisfies func(n *tree.Node) bool) []Cluster {
	acc := newAccumulator(leaves)
	queue := []int{t.Root}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		n := t.Nodes[idx]
		if n.Deleted {
			continue
		}
		if satisfies(n) {
			acc.add(tree.Cut(t, idx))
		} else {
			queue = append(queue, n.Children...)
		}
	}
	return acc.finish()
}

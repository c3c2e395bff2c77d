// Package cluster implements the family of linear-time (or near-linear)
// single-pass tree algorithms that partition a rooted tree's leaves into
// the minimum number of clusters under a chosen intra-cluster constraint.
//
// Every driver shares one scaffold: normalize via tree.Prepare, walk the
// tree once (postorder, or postorder then a top-down breadth-first pass
// for the two-pass methods, or preorder for root_dist), and use tree.Cut to excise
// subtrees that violate the constraint. Method selects which recurrence
// and cut policy apply; Run is the single dispatch entrypoint.
//
// Methods:
//
//   - max, max_clade, single_linkage_clade: maintain a max/min path to an
//     undeleted descendant leaf through each child (O(n) time).
//   - length, length_clade: cut on raw edge length, no recurrence (O(n)).
//   - avg_clade: postorder DP over leaf count / total leaf distance /
//     total pairwise distance, then a top-down BFS from the root that
//     cuts the first node on each path whose own subtree average
//     satisfies the threshold (O(n)).
//   - med_clade: postorder DP over sorted leaf-distance and
//     pairwise-distance multisets, then the same top-down cut as
//     avg_clade. This driver is Θ(n²) in time and space — correct, not
//     linear.
//   - root_dist: single preorder pass comparing root distance to the
//     threshold (O(n)).
//
// ArgmaxClusters sweeps 1000 evenly spaced candidate thresholds between 0
// and an upper bound, deep-copying the tree per candidate (drivers mutate
// their tree destructively), and returns the clustering that maximizes
// the number of non-singleton clusters.
package cluster

package tree

// Node is one vertex of a rooted binary tree, stored in a Tree's arena.
// Leaves have no Children and a non-empty Label; internal nodes have
// exactly two Children once the tree has been resolved by Prepare.
//
// The scratch fields below are written by exactly one driver per Run and
// never read by callers afterward; a driver only touches the subset its
// method needs. LeafDists/PairDists are owned slices used only by the
// med_clade driver and released by the parent once consumed.
type Node struct {
	// ID is this node's own index in its Tree's arena.
	ID int
	// Parent is the arena index of this node's parent, or -1 for the root.
	Parent int
	// Children holds zero (leaf) or two (internal) arena indices.
	Children []int

	// Label is the taxon name; non-empty on leaves, unique across leaves.
	Label string
	// EdgeLength is the non-negative length of the edge above this node
	// (0 for the root). Prepare sets it to +Inf across low-support edges.
	EdgeLength float64
	// Support is the parsed confidence value on an internal edge, valid
	// only when HasSupport is true.
	Support float64
	// HasSupport reports whether Support carries a parsed value (as
	// opposed to an absent or unparsable internal-node label).
	HasSupport bool
	// Comment carries a free-form Newick comment, if any.
	Comment string

	// Deleted marks a node as consumed by a cut. Monotone within a run:
	// once true it is never cleared until the next Prepare.
	Deleted bool

	// LeftDist/RightDist are the longest (max/max_clade) or shortest
	// (single_linkage_clade) paths to an undeleted descendant leaf
	// through the left/right child.
	LeftDist  float64
	RightDist float64

	// NumLeaves is the leaf count of this node's subtree (avg_clade).
	NumLeaves int
	// TotalLeafDist is the sum of distances from this node to each
	// descendant leaf (avg_clade).
	TotalLeafDist float64
	// TotalPairDist is the sum of pairwise distances among descendant
	// leaves (avg_clade).
	TotalPairDist float64
	// AvgPairDist is TotalPairDist divided by the number of leaf pairs;
	// defined as 0 for a leaf (avg_clade).
	AvgPairDist float64

	// LeafDists is the ascending multiset of distances from this node to
	// each descendant leaf (med_clade). Freed once the parent consumes it.
	LeafDists []float64
	// PairDists is the ascending multiset of all pairwise descendant-leaf
	// distances (med_clade). Freed once the parent consumes it.
	PairDists []float64
	// MedPairDist is the median of PairDists, or +Inf if the largest
	// element is +Inf (med_clade).
	MedPairDist float64

	// RootDist is the distance from the root to this node (root_dist).
	RootDist float64
}

// Tree is an arena of Nodes with a designated Root index. Nodes are never
// physically removed; Cut marks them Deleted instead.
type Tree struct {
	Nodes []*Node
	Root  int
}

// NewNode appends a fresh, empty Node to the arena and returns its index.
func (t *Tree) NewNode() int {
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, &Node{ID: idx, Parent: -1})
	return idx
}

// IsLeaf reports whether the node at idx has no children.
func (t *Tree) IsLeaf(idx int) bool {
	return len(t.Nodes[idx].Children) == 0
}

// Clone returns a deep copy of t: a fresh arena with the same structure,
// labels, edge lengths, and support values, but no scratch state carried
// over (DELETED cleared, scratch scalars zeroed). Used by ArgmaxClusters
// to try many thresholds against an untouched tree.
func (t *Tree) Clone() *Tree {
	clone := &Tree{
		Nodes: make([]*Node, len(t.Nodes)),
		Root:  t.Root,
	}
	for i, n := range t.Nodes {
		children := make([]int, len(n.Children))
		copy(children, n.Children)
		clone.Nodes[i] = &Node{
			ID:         n.ID,
			Parent:     n.Parent,
			Children:   children,
			Label:      n.Label,
			EdgeLength: n.EdgeLength,
			Support:    n.Support,
			HasSupport: n.HasSupport,
			Comment:    n.Comment,
		}
	}
	return clone
}

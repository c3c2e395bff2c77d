package tree

// defaultSupport is the confidence assigned to an internal node whose
// Newick label was absent or failed to parse as a real number. The legacy
// convention (0) is deliberately not offered; see SPEC_FULL.md §9.
const defaultSupport = 100.0

// Prepare normalizes t in place and returns the set of leaf labels:
//
//  1. The root's edge length is forced to 0.
//  2. Unifurcations are resolved bottom-up: a node with exactly one child
//     absorbs it, summing edge lengths and inheriting label/support/
//     comment wherever the node itself lacks them.
//  3. Polytomies are resolved by repeatedly pairing off the last two
//     children under a fresh zero-length internal node, until arity is 2.
//  4. Every internal node's support defaults to 100 when absent; edges
//     whose support falls below support get +Inf length.
//  5. DELETED is cleared on every visited node.
//
// Returns ErrBadArity if, after resolution, any node has neither zero nor
// two children.
//
// Complexity: O(n) time, single postorder pass.
func Prepare(t *Tree, support float64) (map[string]struct{}, error) {
	t.Nodes[t.Root].EdgeLength = 0

	leaves := make(map[string]struct{})
	if err := prepareNode(t, t.Root, support, leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

func prepareNode(t *Tree, idx int, support float64, leaves map[string]struct{}) error {
	n := t.Nodes[idx]
	n.Deleted = false

	// Recurse into the node's current children first (postorder): by the
	// time we resolve n itself, every descendant is already normalized.
	for _, c := range n.Children {
		if err := prepareNode(t, c, support, leaves); err != nil {
			return err
		}
	}

	// Resolve a unifurcation: absorb the sole child into n.
	if len(n.Children) == 1 {
		child := t.Nodes[n.Children[0]]
		n.EdgeLength += child.EdgeLength
		if n.Label == "" {
			n.Label = child.Label
		}
		if !n.HasSupport {
			n.Support = child.Support
			n.HasSupport = child.HasSupport
		}
		if n.Comment == "" {
			n.Comment = child.Comment
		}
		n.Children = child.Children
		for _, gc := range n.Children {
			t.Nodes[gc].Parent = idx
		}
	}

	// Resolve a polytomy: repeatedly pair off the last two children under
	// a fresh zero-length internal node.
	for len(n.Children) > 2 {
		last := len(n.Children) - 1
		c1, c2 := n.Children[last], n.Children[last-1]
		n.Children = n.Children[:last-1]

		newIdx := t.NewNode()
		newNode := t.Nodes[newIdx]
		newNode.EdgeLength = 0
		newNode.Children = []int{c1, c2}
		newNode.Parent = idx
		newNode.Deleted = false
		newNode.Support = defaultSupport
		newNode.HasSupport = true
		if newNode.Support < support {
			newNode.EdgeLength = posInf
		}
		t.Nodes[c1].Parent = newIdx
		t.Nodes[c2].Parent = newIdx

		n.Children = append(n.Children, newIdx)
	}

	switch len(n.Children) {
	case 0:
		leaves[n.Label] = struct{}{}
	case 2:
		if !n.HasSupport {
			n.Support = defaultSupport
			n.HasSupport = true
		}
		if n.Support < support {
			n.EdgeLength = posInf
		}
	default:
		return ErrBadArity
	}

	return nil
}

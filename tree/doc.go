// Package tree implements the in-memory rooted binary tree arena used by
// every clustering driver: a stable-index arena of *Node plus the
// preparation pass (structural normalization + branch-support filtering)
// and the cut operation (logical subtree excision).
//
// A Tree is built once, typically by a Newick parser, then mutated in
// place by exactly one driver invocation. Nodes carry method-specific
// scratch fields (LeftDist, NumLeaves, LeafDists, ...); a driver only
// touches the handful its method needs and the scratch has no meaning
// once the driver returns.
//
// Complexity: Prepare and Cut are both linear in the number of nodes
// visited; Postorder/Preorder build an explicit index slice in O(n) time
// and O(n) space, avoiding recursion so traversal depth is not bounded by
// the Go call stack on deep, unbalanced trees.
package tree

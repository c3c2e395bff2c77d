package tree

// Cut marks the subtree rooted at v as consumed and returns the labels of
// its undeleted leaves. Every visited node that was not already DELETED
// is marked DELETED and has LeftDist, RightDist, EdgeLength, and
// NumLeaves zeroed.
//
// Cut is idempotent: calling it again on an already-DELETED subtree visits
// nothing new and returns nil.
//
// Complexity: O(size of the subtree), breadth-first.
func Cut(t *Tree, v int) []string {
	var cluster []string
	queue := []int{v}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		n := t.Nodes[idx]
		if n.Deleted {
			continue
		}
		n.Deleted = true
		n.LeftDist, n.RightDist, n.EdgeLength = 0, 0, 0
		n.NumLeaves = 0

		if len(n.Children) == 0 {
			cluster = append(cluster, n.Label)
		} else {
			queue = append(queue, n.Children...)
		}
	}
	return cluster
}

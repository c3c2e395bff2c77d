// Package sortedmerge provides the two-way and k-way ascending merges the
// med_clade driver needs to maintain a node's sorted leaf-distance and
// pairwise-distance multisets without re-sorting from scratch at every
// level of the tree.
//
// MergeK follows the same container/heap lazy-priority-queue shape used
// elsewhere in this module's ancestry for shortest-path search: a min-heap
// keyed on (value, source list), popped once per output element.
package sortedmerge

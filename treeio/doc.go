// Package treeio parses Newick-formatted phylogenetic trees into
// tree.Tree arenas.
package treeio

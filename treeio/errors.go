package treeio

import "errors"

// ErrMalformedNewick indicates the input could not be parsed as a valid
// Newick tree statement.
var ErrMalformedNewick = errors.New("treeio: malformed Newick input")

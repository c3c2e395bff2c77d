package tree

import "errors"

// Sentinel errors returned by the tree package.
var (
	// ErrBadArity indicates a node has neither zero nor two children after
	// unifurcation/polytomy resolution. This should not occur if
	// resolution ran to completion; it signals a structural bug upstream.
	ErrBadArity = errors.New("tree: node arity is not 0 or 2 after resolution")
)

package jcdist

import "errors"

// ErrBadPDist indicates a p-distance outside [0, b) for the chosen
// SeqType, where b is that type's substitution-saturation bound.
var ErrBadPDist = errors.New("jcdist: p-distance out of range")

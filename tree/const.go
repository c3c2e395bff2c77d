package tree

import "math"

// posInf stands in for a branch length that has been invalidated by the
// support filter: any constraint sensitive to edge length must be
// violated across it, forcing a cut.
var posInf = math.Inf(1)

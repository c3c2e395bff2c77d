package cluster

import (
	"fmt"
	"math"

	"github.com/niemasd/TreeCluster/tree"
)

// Run normalizes t (via tree.Prepare) and applies the chosen method's
// driver at the given threshold, returning the resulting list of
// clusters. t is destructively mutated; callers that need the original
// structure afterward should clone it first (see tree.Tree.Clone).
//
// Complexity: linear in the tree size for every method except
// MethodMedClade, which is Θ(n²).
func Run(t *tree.Tree, m Method, threshold, support float64) ([]Cluster, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: threshold must be >= 0, got %v", ErrBadThreshold, threshold)
	}
	if support < 0 && !math.IsInf(support, -1) {
		return nil, fmt.Errorf("%w: support must be >= 0 or -Inf, got %v", ErrBadSupport, support)
	}

	leaves, err := tree.Prepare(t, support)
	if err != nil {
		return nil, err
	}

	switch m {
	case MethodMax:
		return runMax(t, leaves, threshold), nil
	case MethodMaxClade:
		return runMaxClade(t, leaves, threshold), nil
	case MethodSingleLinkageClade:
		return runSingleLinkageClade(t, leaves, threshold), nil
	case MethodLength:
		return runLength(t, leaves, threshold), nil
	case MethodLengthClade:
		return runLengthClade(t, leaves, threshold), nil
	case MethodAvgClade:
		return runAvgClade(t, leaves, threshold), nil
	case MethodMedClade:
		return runMedClade(t, leaves, threshold), nil
	case MethodRootDist:
		return runRootDist(t, leaves, threshold), nil
	default:
		return nil, fmt.Errorf("%w: method value %d", ErrBadMethod, m)
	}
}

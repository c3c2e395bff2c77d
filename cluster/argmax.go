package cluster

import (
	"fmt"
	"log"

	"github.com/niemasd/TreeCluster/tree"
)

// argmaxCandidateCount is the number of evenly spaced thresholds
// ArgmaxClusters samples between 0 and the caller's upper bound.
const argmaxCandidateCount = 1000

// ArgmaxClusters sweeps K=argmaxCandidateCount evenly spaced thresholds
// in [0, upperThreshold), runs m at each against an independent clone of
// t, and returns the clustering with the most non-singleton clusters
// (ties kept at the earliest-visited, i.e. smallest, threshold). The
// chosen threshold is reported on the standard diagnostic log.
func ArgmaxClusters(t *tree.Tree, m Method, upperThreshold, support float64) ([]Cluster, error) {
	if upperThreshold <= 0 {
		return nil, fmt.Errorf("%w: upper threshold must be > 0, got %v", ErrBadThreshold, upperThreshold)
	}

	var best []Cluster
	bestCount := -1
	var bestThreshold float64

	for i := 0; i < argmaxCandidateCount; i++ {
		candidate := float64(i) * upperThreshold / argmaxCandidateCount
		clusters, err := Run(t.Clone(), m, candidate, support)
		if err != nil {
			return nil, err
		}
		count := nonSingletonCount(clusters)
		if count > bestCount {
			bestCount = count
			best = clusters
			bestThreshold = candidate
		}
	}

	log.Printf("cluster: argmax_clusters selected threshold %v (%d non-singleton clusters)", bestThreshold, bestCount)
	return best, nil
}

// nonSingletonCount counts clusters with more than one member.
func nonSingletonCount(clusters []Cluster) int {
	n := 0
	for _, c := range clusters {
		if len(c) > 1 {
			n++
		}
	}
	return n
}

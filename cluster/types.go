package cluster

import "fmt"

// Cluster is one emitted group of leaf labels. A Cluster of length 1 is a
// singleton and is rendered with id -1 by clusterio.Write.
type Cluster []string

// Method selects which clustering driver Run invokes.
type Method int

const (
	// MethodMax bounds the diameter through each node; clusters need not
	// be clades.
	MethodMax Method = iota
	// MethodMaxClade is MethodMax with both children cut on violation, so
	// every cluster is a clade.
	MethodMaxClade
	// MethodAvgClade bounds the average pairwise leaf distance within a
	// clade.
	MethodAvgClade
	// MethodMedClade bounds the median pairwise leaf distance within a
	// clade.
	MethodMedClade
	// MethodSingleLinkageClade merges clades whenever some cross-pair of
	// their leaves is within the threshold.
	MethodSingleLinkageClade
	// MethodLength cuts any edge longer than the threshold.
	MethodLength
	// MethodLengthClade is MethodLength with both children cut on
	// violation, so every cluster is a clade.
	MethodLengthClade
	// MethodRootDist cuts any node whose distance from the root exceeds
	// the threshold.
	MethodRootDist
)

// DefaultMethod is used by callers (e.g. the CLI) that have no explicit
// method selection, matching the original tool's default.
const DefaultMethod = MethodMaxClade

var methodNames = map[string]Method{
	"max":                  MethodMax,
	"max_clade":            MethodMaxClade,
	"avg_clade":            MethodAvgClade,
	"med_clade":            MethodMedClade,
	"single_linkage_clade": MethodSingleLinkageClade,
	"length":               MethodLength,
	"length_clade":         MethodLengthClade,
	"root_dist":            MethodRootDist,
}

var methodStrings = map[Method]string{
	MethodMax:                "max",
	MethodMaxClade:           "max_clade",
	MethodAvgClade:           "avg_clade",
	MethodMedClade:           "med_clade",
	MethodSingleLinkageClade: "single_linkage_clade",
	MethodLength:             "length",
	MethodLengthClade:        "length_clade",
	MethodRootDist:           "root_dist",
}

// String returns the method's CLI name.
func (m Method) String() string {
	if s, ok := methodStrings[m]; ok {
		return s
	}
	return "unknown"
}

// ParseMethod maps a CLI method name to a Method, or ErrBadMethod if name
// is not one of the eight recognized methods.
func ParseMethod(name string) (Method, error) {
	m, ok := methodNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadMethod, name)
	}
	return m, nil
}

// ThresholdFreeMethod selects a threshold-sweeping wrapper around a
// Method, or ThresholdFreeNone to run Method directly at a fixed
// threshold.
type ThresholdFreeMethod int

const (
	// ThresholdFreeNone means no sweep: Run the method once at the given
	// threshold.
	ThresholdFreeNone ThresholdFreeMethod = iota
	// ThresholdFreeArgmaxClusters sweeps thresholds and keeps the
	// clustering with the most non-singleton clusters.
	ThresholdFreeArgmaxClusters
)

// ParseThresholdFreeMethod maps a CLI threshold-free name to a
// ThresholdFreeMethod. An empty name yields ThresholdFreeNone.
func ParseThresholdFreeMethod(name string) (ThresholdFreeMethod, error) {
	if name == "" {
		return ThresholdFreeNone, nil
	}
	if name == "argmax_clusters" {
		return ThresholdFreeArgmaxClusters, nil
	}
	return ThresholdFreeNone, fmt.Errorf("%w: %q", ErrUnknownThresholdFree, name)
}

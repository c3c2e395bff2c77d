package cluster

import "errors"

// Sentinel errors returned by the cluster package.
var (
	// ErrBadMethod indicates an unrecognized clustering method name.
	ErrBadMethod = errors.New("cluster: unknown method")
	// ErrBadThreshold indicates a negative (or, for ArgmaxClusters,
	// non-positive) threshold.
	ErrBadThreshold = errors.New("cluster: invalid threshold")
	// ErrBadSupport indicates a support threshold that is neither >= 0
	// nor -Inf.
	ErrBadSupport = errors.New("cluster: invalid support threshold")
	// ErrUnknownThresholdFree indicates an unrecognized threshold-free
	// approach name.
	ErrUnknownThresholdFree = errors.New("cluster: unknown threshold-free approach")
)

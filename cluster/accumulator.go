package cluster

// accumulator collects clusters emitted by a driver and tracks which
// leaves remain unassigned, so the driver can append the leftover set as
// one final cluster once its traversal finishes.
type accumulator struct {
	clusters  []Cluster
	remaining map[string]struct{}
}

func newAccumulator(leaves map[string]struct{}) *accumulator {
	remaining := make(map[string]struct{}, len(leaves))
	for l := range leaves {
		remaining[l] = struct{}{}
	}
	return &accumulator{remaining: remaining}
}

// add records cut as a new cluster if non-empty, removing its leaves from
// the remaining set.
func (a *accumulator) add(cut []string) {
	if len(cut) == 0 {
		return
	}
	a.clusters = append(a.clusters, Cluster(cut))
	for _, leaf := range cut {
		delete(a.remaining, leaf)
	}
}

// finish appends whatever leaves never got cut as one final cluster and
// returns the accumulated list.
func (a *accumulator) finish() []Cluster {
	if len(a.remaining) > 0 {
		leftover := make(Cluster, 0, len(a.remaining))
		for l := range a.remaining {
			leftover = append(leftover, l)
		}
		a.clusters = append(a.clusters, leftover)
	}
	return a.clusters
}

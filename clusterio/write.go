package clusterio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/niemasd/TreeCluster/cluster"
)

// Write renders one partition table per tree's clusters to w: a header
// line "SequenceName\tClusterNumber", then one row per leaf. Singleton
// clusters are numbered -1; non-singleton clusters are numbered
// 1,2,3,... in emission order. The header repeats once per tree, and
// numbering restarts at the start of each tree's section.
func Write(w io.Writer, perTree [][]cluster.Cluster) error {
	bw := bufio.NewWriter(w)
	for _, clusters := range perTree {
		if _, err := fmt.Fprintln(bw, "SequenceName\tClusterNumber"); err != nil {
			return err
		}

		nextID := 1
		for _, c := range clusters {
			id := -1
			if len(c) > 1 {
				id = nextID
				nextID++
			}
			for _, leaf := range c {
				if _, err := fmt.Fprintf(bw, "%s\t%d\n", leaf, id); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}

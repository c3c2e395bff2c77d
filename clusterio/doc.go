// Package clusterio renders cluster.Run output as a tab-delimited
// partition table.
package clusterio

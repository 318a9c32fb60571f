// File: stats.go
// Role: Read-only running counters (spec §4.4 "Statistics").

package core

// Stats is a point-in-time snapshot of graph size and evaluation
// behavior.
type Stats struct {
	NodeCount       int
	ConnectionCount int
	LastEvalVisits  uint64
	CacheHits       uint64
	CacheMisses     uint64
}

// Stats returns a snapshot of the graph's current counters.
//
// Complexity: O(V) to count connections (each node's input ports are
// scanned); counters for visits/hits/misses are O(1) reads.
func (g *Graph) Stats() Stats {
	s := Stats{
		NodeCount:      len(g.nodes),
		LastEvalVisits: g.lastEvalVisits,
		CacheHits:      g.cacheHits,
		CacheMisses:    g.cacheMisses,
	}
	for _, n := range g.nodes {
		for _, in := range n.op.Inputs() {
			s.ConnectionCount += len(in.sources())
		}
	}
	return s
}

package dispatch

import (
	"sort"

	"github.com/katalvlaran/reachcompress/adjgraph"
)

// UnreachablePairs stores the complement of the reachability relation over
// a subgraph (spec.md §4.8 step 3, the "else" branch): for every vertex,
// the set of vertices it cannot reach. within_partition membership is "not
// in the unreachable set".
type UnreachablePairs struct {
	unreachable map[VID]map[VID]bool
	nodes       []VID
}

// BuildUnreachablePairs computes the full reachability closure of sub via
// one BFS per source, then records every pair the source cannot reach.
func BuildUnreachablePairs(sub *adjgraph.Graph) *UnreachablePairs {
	max := sub.MaxID()
	var nodes []VID
	for v := VID(0); v <= max; v++ {
		if sub.NodeExists(v) {
			nodes = append(nodes, v)
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	up := &UnreachablePairs{unreachable: make(map[VID]map[VID]bool, len(nodes)), nodes: nodes}
	for _, a := range nodes {
		reached := bfsReachSet(sub, a)
		miss := make(map[VID]bool)
		for _, b := range nodes {
			if a == b {
				continue
			}
			if !reached[b] {
				miss[b] = true
			}
		}
		up.unreachable[a] = miss
	}
	return up
}

func bfsReachSet(sub *adjgraph.Graph, start VID) map[VID]bool {
	seen := map[VID]bool{start: true}
	queue := []VID{start}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, n := range sub.OutNeighbors(x) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

// Query reports whether a reaches b: true unless (a,b) is recorded as
// unreachable or a is absent from the index (out-of-range for this
// subgraph).
func (up *UnreachablePairs) Query(a, b VID) bool {
	if a == b {
		return true
	}
	miss, ok := up.unreachable[a]
	if !ok {
		return false
	}
	return !miss[b]
}

// ReachRatio computes the fraction of ordered pairs (excluding self-pairs)
// that ARE reachable, used by offline_industry's "reach_ratio(S) < ratio_T"
// test (spec.md §4.8 step 3). Implemented via the same BFS-closure
// computation as BuildUnreachablePairs, since both need the same reachable
// sets; offline_industry calls this before building any index for the
// partition, to choose between PLL and the fallback index.
func ReachRatio(sub *adjgraph.Graph) float64 {
	max := sub.MaxID()
	var nodes []VID
	for v := VID(0); v <= max; v++ {
		if sub.NodeExists(v) {
			nodes = append(nodes, v)
		}
	}
	n := len(nodes)
	if n < 2 {
		return 0
	}
	total := n * (n - 1)
	reachable := 0
	for _, a := range nodes {
		reached := bfsReachSet(sub, a)
		reachable += len(reached) - 1 // exclude self
	}
	return float64(reachable) / float64(total)
}

package dispatch

import "github.com/katalvlaran/reachcompress/adjgraph"

// TreeCover is a supplemental ReachabilityAlgorithm variant (spec.md §9
// REDESIGN FLAGS tagged union): it answers reachability queries from
// Euler-tour in/out intervals over a DFS spanning forest of the subgraph.
// A positive answer (descendant-of-ancestor via interval containment) is a
// sound certificate; TreeCover only ever claims reachability along tree
// edges, so it deliberately under-approximates on subgraphs with
// non-tree edges — callers that need exact answers should prefer
// Bitmatrix/PLL/UnreachablePairs and keep TreeCover for cheap,
// conservative pre-filtering.
type TreeCover struct {
	tin, tout map[VID]int
	root      map[VID]VID // the DFS-tree root each vertex belongs to
}

// BuildTreeCover runs one DFS per unvisited vertex over sub, stamping
// entry/exit times. Vertices with no incoming edge are tried as starts
// first, then every other vertex, each group in ascending order for
// determinism, so on a forest every tree is walked from its root.
func BuildTreeCover(sub *adjgraph.Graph) *TreeCover {
	tc := &TreeCover{tin: make(map[VID]int), tout: make(map[VID]int), root: make(map[VID]VID)}

	max := sub.MaxID()
	clock := 0
	visited := make(map[VID]bool)

	type frame struct {
		v   VID
		idx int
	}
	var starts, rest []VID
	for v := VID(0); v <= max; v++ {
		if !sub.NodeExists(v) {
			continue
		}
		if len(sub.InNeighbors(v)) == 0 {
			starts = append(starts, v)
		} else {
			rest = append(rest, v)
		}
	}
	starts = append(starts, rest...)
	for _, start := range starts {
		if !sub.NodeExists(start) || visited[start] {
			continue
		}
		visited[start] = true
		tc.root[start] = start
		tc.tin[start] = clock
		clock++
		stack := []frame{{v: start, idx: 0}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			out := sub.OutNeighbors(top.v)
			if top.idx < len(out) {
				w := out[top.idx]
				top.idx++
				if !visited[w] {
					visited[w] = true
					tc.root[w] = start
					tc.tin[w] = clock
					clock++
					stack = append(stack, frame{v: w, idx: 0})
				}
			} else {
				tc.tout[top.v] = clock
				clock++
				stack = stack[:len(stack)-1]
			}
		}
	}
	return tc
}

// Query reports whether b's Euler interval is nested inside a's — a sound
// but incomplete reachability certificate (see type doc).
func (tc *TreeCover) Query(a, b VID) bool {
	if a == b {
		return true
	}
	ra, aok := tc.root[a]
	rb, bok := tc.root[b]
	if !aok || !bok || ra != rb {
		return false
	}
	return tc.tin[a] <= tc.tin[b] && tc.tout[b] <= tc.tout[a]
}

package dispatch

import (
	"sort"

	"github.com/katalvlaran/reachcompress/adjgraph"
	"github.com/katalvlaran/reachcompress/bibfs"
)

// VID is a dense non-negative vertex identifier.
type VID = int32

// Bitmatrix is a dense reachability matrix over a small subgraph (spec.md
// §4.8 step 3, "|S| < num_vertices_T"), plus the compact node<->index
// mapping needed to address it. Filled once, at build time, by running
// BiBFS between every ordered pair.
type Bitmatrix struct {
	index   map[VID]int
	nodes   []VID
	reached [][]bool
}

// BuildBitmatrix runs BiBFS(a,b) for every ordered pair (a,b) in sub and
// records the result densely.
func BuildBitmatrix(sub *adjgraph.Graph) *Bitmatrix {
	max := sub.MaxID()
	var nodes []VID
	for v := VID(0); v <= max; v++ {
		if sub.NodeExists(v) {
			nodes = append(nodes, v)
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	bm := &Bitmatrix{
		index:   make(map[VID]int, len(nodes)),
		nodes:   nodes,
		reached: make([][]bool, len(nodes)),
	}
	for i, v := range nodes {
		bm.index[v] = i
	}
	for i, a := range nodes {
		bm.reached[i] = make([]bool, len(nodes))
		for j, b := range nodes {
			if a == b {
				bm.reached[i][j] = true
				continue
			}
			bm.reached[i][j] = bibfs.Reachable(sub, a, b)
		}
	}
	return bm
}

// Query looks up whether a reaches b; both must be present in the matrix's
// node mapping or the result is false.
func (bm *Bitmatrix) Query(a, b VID) bool {
	i, ok := bm.index[a]
	if !ok {
		return false
	}
	j, ok := bm.index[b]
	if !ok {
		return false
	}
	return bm.reached[i][j]
}

// NumVertices returns the matrix's node count, used by offline_industry's
// |S| < num_vertices_T size test.
func (bm *Bitmatrix) NumVertices() int { return len(bm.nodes) }

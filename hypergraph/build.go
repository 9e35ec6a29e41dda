package hypergraph

import (
	"runtime"
	"sort"
	"sync"

	"github.com/katalvlaran/reachcompress/wgraph"
	"github.com/katalvlaran/reachcompress/wpll"
)

// pairWeight is one (i, j, |E_i ∩ E_j|) tuple, i < j, with a positive
// intersection.
type pairWeight struct {
	i, j EID
	size int
}

// Index holds every artefact produced by Build: the vertex-level
// disjoint-set, one WeightedGraph_k layer (and its own disjoint-set) per
// k in 1..KMax, and a single weighted-PLL index over the full positive-
// intersection graph.
type Index struct {
	hg *Hypergraph

	vertexDS *DisjointSet

	kMax   int
	layers map[int]*layer

	pllGraph *wgraph.Graph
	pll      *wpll.Index
}

type layer struct {
	graph *wgraph.Graph
	ds    *DisjointSet
}

// defaultMaxIntersectionSize is the kMax ceiling used when Build is called
// with kMax <= 0: a fixed bound on k, not a function of the dataset, so
// that clampK's upper bound means the same thing across any hypergraph
// (mirrors original_source/include/Hypergraph.h's MAX_INTERSECTION_SIZE).
const defaultMaxIntersectionSize = 10

// Build runs the four-step pipeline from spec.md §4.9. kMax, if <= 0,
// defaults to defaultMaxIntersectionSize — a fixed ceiling, not the largest
// pairwise intersection actually observed, so that clampK's upper bound is
// a real ceiling rather than an accident of whichever pairs in the given
// hypergraph happen to intersect most.
func Build(hg *Hypergraph, kMax int) *Index {
	idx := &Index{hg: hg, vertexDS: NewDisjointSet()}

	// Step 1: vertex-level disjoint-set, unioning every pair of vertices
	// that co-occur in some hyperedge.
	for _, id := range hg.EdgeIDs() {
		members := hg.Members(id)
		for _, v := range members {
			idx.vertexDS.Add(v)
		}
		for i := 1; i < len(members); i++ {
			idx.vertexDS.Union(members[0], members[i])
		}
	}
	idx.vertexDS.Freeze()

	// Step 2: all hyperedge pairs with positive intersection, computed in
	// parallel (spec.md §5: "partition the outer i loop among worker
	// threads, each producing a local tuple list, merged under a mutex at
	// the end").
	pairs := computeIntersections(hg)

	if kMax <= 0 {
		kMax = defaultMaxIntersectionSize
	}
	idx.kMax = kMax

	// Step 3: one WeightedGraph_k per k in 1..kMax, edge per pair whose
	// intersection size >= k, weight = the exact intersection size.
	idx.layers = make(map[int]*layer, kMax)
	for k := 1; k <= kMax; k++ {
		g := wgraph.New()
		ds := NewDisjointSet()
		for id := range hg.edges {
			ds.Add(id)
		}
		for _, p := range pairs {
			if p.size >= k {
				g.AddEdge(p.i, p.j, int64(p.size))
				ds.Union(p.i, p.j)
			}
		}
		g.BuildIndices(false)
		ds.Freeze()
		idx.layers[k] = &layer{graph: g, ds: ds}
	}

	// Step 4: a single pll_graph with every positive intersection and its
	// exact weight, indexed by weighted PLL.
	idx.pllGraph = wgraph.New()
	for _, p := range pairs {
		idx.pllGraph.AddEdge(p.i, p.j, int64(p.size))
	}
	idx.pll = wpll.Build(idx.pllGraph)

	return idx
}

// computeIntersections partitions EdgeIDs() into chunks of roughly equal
// size across GOMAXPROCS worker goroutines; each worker computes its
// chunk's pairwise intersections (i from its chunk, j over every edge id
// greater than i) into a local slice, merged into the shared result under
// one mutex at the join point — never inside the inner loop (spec.md §5).
func computeIntersections(hg *Hypergraph) []pairWeight {
	ids := hg.EdgeIDs()
	n := len(ids)
	if n == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	var mu sync.Mutex
	var merged []pairWeight
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= n {
			break
		}
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			var local []pairWeight
			for a := start; a < end; a++ {
				i := ids[a]
				mi := hg.Members(i)
				for b := a + 1; b < n; b++ {
					j := ids[b]
					size := intersectionSize(mi, hg.Members(j))
					if size > 0 {
						local = append(local, pairWeight{i: i, j: j, size: size})
					}
				}
			}
			mu.Lock()
			merged = append(merged, local...)
			mu.Unlock()
		}(start, end)
	}
	wg.Wait()

	sort.Slice(merged, func(x, y int) bool {
		if merged[x].i != merged[y].i {
			return merged[x].i < merged[y].i
		}
		return merged[x].j < merged[y].j
	})
	return merged
}

package partition

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/reachcompress/internal/errs"
)

// Strategy is the sealed partitioner-plugin enumeration named in spec.md §6
// (partitioner_name) and §9 REDESIGN FLAGS ("model as a sealed enumeration
// with a uniform partition(graph, manager) contract").
type Strategy int

const (
	StrategyLouvain Strategy = iota
	StrategyInfomap
	StrategyRandom
	StrategyMultiCut
	StrategyReachRatio
	StrategyTraverse
	StrategyImport
)

func (s Strategy) String() string {
	switch s {
	case StrategyLouvain:
		return "Louvain"
	case StrategyInfomap:
		return "Infomap"
	case StrategyRandom:
		return "Random"
	case StrategyMultiCut:
		return "MultiCut"
	case StrategyReachRatio:
		return "ReachRatio"
	case StrategyTraverse:
		return "Traverse"
	case StrategyImport:
		return "Import"
	default:
		return "Unknown"
	}
}

// ParseStrategy maps a configuration string (spec.md §6 partitioner_name) to
// a Strategy, returning ErrUnsupportedPartitioner for any other value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "Louvain":
		return StrategyLouvain, nil
	case "Infomap":
		return StrategyInfomap, nil
	case "Random":
		return StrategyRandom, nil
	case "MultiCut":
		return StrategyMultiCut, nil
	case "ReachRatio":
		return StrategyReachRatio, nil
	case "Traverse":
		return StrategyTraverse, nil
	case "Import":
		return StrategyImport, nil
	default:
		return 0, errs.ErrUnsupportedPartitioner
	}
}

// PartitionOptions configures a partitioning run. Not every field is used by
// every Strategy (e.g. TargetPartitions is ignored by Import).
type PartitionOptions struct {
	TargetPartitions int              // desired partition count (Louvain/Infomap treat this as a cap on merges)
	Seed             int64            // PRNG seed for Random (no other strategy reads it)
	ReachRatioTarget float64          // ReachRatio: stop growing a partition once internal reach ratio drops below this
	Assignment       map[VID]PID      // Import: explicit vertex -> partition mapping
}

// Partition runs the given Strategy over g, assigning every live vertex to
// a partition via m.SetPartition (Import assigns exactly the vertices in
// opts.Assignment), then calls m.Rebuild(g).
func Partition(strategy Strategy, g SourceGraph, m *Manager, opts PartitionOptions) error {
	verts := liveVertices(g)

	switch strategy {
	case StrategyRandom:
		partitionRandom(m, verts, opts)
	case StrategyTraverse:
		partitionTraverse(g, m, verts, opts)
	case StrategyMultiCut:
		partitionMultiCut(g, m, verts, opts)
	case StrategyLouvain:
		partitionLouvain(g, m, verts, opts, false)
	case StrategyInfomap:
		partitionLouvain(g, m, verts, opts, true)
	case StrategyReachRatio:
		partitionReachRatio(g, m, verts, opts)
	case StrategyImport:
		for v, pid := range opts.Assignment {
			m.SetPartition(v, pid)
		}
	default:
		return errs.ErrUnsupportedPartitioner
	}

	m.Rebuild(g)
	return nil
}

func liveVertices(g SourceGraph) []VID {
	max := g.MaxID()
	var verts []VID
	for v := VID(0); v <= max; v++ {
		if g.NodeExists(v) {
			verts = append(verts, v)
		}
	}
	return verts
}

// partitionRandom assigns each vertex to a uniformly random partition in
// [0, TargetPartitions), seeded for reproducibility.
func partitionRandom(m *Manager, verts []VID, opts PartitionOptions) {
	k := opts.TargetPartitions
	if k <= 0 {
		k = 1
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	for _, v := range verts {
		m.SetPartition(v, PID(rng.Intn(k)))
	}
}

// partitionTraverse chunks vertices by BFS-discovery order into
// TargetPartitions contiguous groups.
func partitionTraverse(g SourceGraph, m *Manager, verts []VID, opts PartitionOptions) {
	k := opts.TargetPartitions
	if k <= 0 {
		k = 1
	}
	order := bfsOrder(g, verts)
	chunk := (len(order) + k - 1) / k
	if chunk == 0 {
		chunk = 1
	}
	for i, v := range order {
		m.SetPartition(v, PID(i/chunk))
	}
}

// bfsOrder returns every live vertex in multi-source BFS discovery order
// (one BFS tree per unvisited vertex, in ascending starting-ID order, for
// determinism).
func bfsOrder(g SourceGraph, verts []VID) []VID {
	sorted := append([]VID(nil), verts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	visited := make(map[VID]bool, len(sorted))
	order := make([]VID, 0, len(sorted))
	for _, start := range sorted {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue := []VID{start}
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			order = append(order, x)
			for _, n := range g.OutNeighbors(x) {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
	}
	return order
}

// partitionMultiCut recursively bisects the BFS order: each split puts the
// first half of a chunk's BFS-local order into one side and the rest into
// the other, continuing until TargetPartitions contiguous chunks remain —
// an approximate min-edge-cut bisection cheap enough for large graphs.
func partitionMultiCut(g SourceGraph, m *Manager, verts []VID, opts PartitionOptions) {
	k := opts.TargetPartitions
	if k <= 0 {
		k = 1
	}
	order := bfsOrder(g, verts)
	chunks := [][]VID{order}
	for len(chunks) < k {
		// Split the largest chunk in half.
		largest := 0
		for i, c := range chunks {
			if len(c) > len(chunks[largest]) {
				largest = i
			}
		}
		c := chunks[largest]
		if len(c) <= 1 {
			break
		}
		mid := len(c) / 2
		left, right := append([]VID(nil), c[:mid]...), append([]VID(nil), c[mid:]...)
		chunks[largest] = left
		chunks = append(chunks, right)
	}
	for pid, c := range chunks {
		for _, v := range c {
			m.SetPartition(v, PID(pid))
		}
	}
}

// partitionLouvain repeats passes of greedy local moves, relocating each
// vertex to whichever neighboring community maximizes local gain, until no
// vertex moves, TargetPartitions communities remain, or len(verts) passes
// have run (moves can keep rotating around a directed cycle). When approxMapEq is
// true, the gain is w*100 + 1000/(size+1) (w = edges from v into the
// community), a crude map-equation stand-in that breaks ties in edge count
// toward smaller communities, instead of plain w (favor the community with
// the most edges from v, full stop) — the two-level Infomap
// approximation named in SPEC_FULL.md.
func partitionLouvain(g SourceGraph, m *Manager, verts []VID, opts PartitionOptions, approxMapEq bool) {
	community := make(map[VID]PID, len(verts))
	degree := make(map[VID]int, len(verts))
	for i, v := range verts {
		community[v] = PID(i)
		degree[v] = len(g.OutNeighbors(v)) + len(inNeighborsFallback(g, v))
	}
	commSize := make(map[PID]int)
	for _, v := range verts {
		commSize[community[v]]++
	}

	improved := true
	for pass := 0; improved && pass < len(verts); pass++ {
		improved = false
		for _, v := range verts {
			neighborWeight := make(map[PID]int)
			for _, n := range g.OutNeighbors(v) {
				neighborWeight[community[n]]++
			}
			if len(neighborWeight) == 0 {
				continue
			}
			best, bestGain := community[v], -1
			for c, w := range neighborWeight {
				gain := w
				if approxMapEq && commSize[c] > 0 {
					gain = w*100 + (1000 / (commSize[c] + 1))
				}
				if gain > bestGain || (gain == bestGain && c < best) {
					best, bestGain = c, gain
				}
			}
			if best != community[v] {
				commSize[community[v]]--
				community[v] = best
				commSize[best]++
				improved = true
			}
		}
		if capReached(commSize, opts.TargetPartitions) {
			break
		}
	}

	relabelAndAssign(m, verts, community)
}

func capReached(commSize map[PID]int, target int) bool {
	if target <= 0 {
		return false
	}
	n := 0
	for _, sz := range commSize {
		if sz > 0 {
			n++
		}
	}
	return n <= target
}

func inNeighborsFallback(g SourceGraph, v VID) []VID {
	type inView interface{ InNeighbors(VID) []VID }
	if iv, ok := g.(inView); ok {
		return iv.InNeighbors(v)
	}
	return nil
}

// relabelAndAssign compacts arbitrary community labels into ascending
// partition IDs 0..k-1, ordered by each community's minimum vertex ID for
// determinism, then assigns them via m.SetPartition.
func relabelAndAssign(m *Manager, verts []VID, community map[VID]PID) {
	minVertex := make(map[PID]VID)
	for _, v := range verts {
		c := community[v]
		if cur, ok := minVertex[c]; !ok || v < cur {
			minVertex[c] = v
		}
	}
	labels := make([]PID, 0, len(minVertex))
	for c := range minVertex {
		labels = append(labels, c)
	}
	sort.Slice(labels, func(i, j int) bool { return minVertex[labels[i]] < minVertex[labels[j]] })
	relabel := make(map[PID]PID, len(labels))
	for i, c := range labels {
		relabel[c] = PID(i)
	}
	for _, v := range verts {
		m.SetPartition(v, relabel[community[v]])
	}
}

// partitionReachRatio grows one partition at a time via BFS from an
// unassigned seed (ascending order, for determinism), adding vertices while
// the partition's internal reachable-pair ratio stays at or above
// ReachRatioTarget; once it would drop below target, the partition is
// sealed and a new one starts from the next unassigned seed — the
// ReachRatio.h / cal_ratio.cpp growth heuristic named in SPEC_FULL.md.
func partitionReachRatio(g SourceGraph, m *Manager, verts []VID, opts PartitionOptions) {
	target := opts.ReachRatioTarget
	if target <= 0 {
		target = 0.5
	}
	sorted := append([]VID(nil), verts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	assigned := make(map[VID]bool, len(sorted))
	pid := PID(0)
	for _, seed := range sorted {
		if assigned[seed] {
			continue
		}
		members := []VID{seed}
		assigned[seed] = true
		frontier := []VID{seed}
		reachablePairs := 0
		for len(frontier) > 0 {
			var next []VID
			for _, x := range frontier {
				for _, n := range g.OutNeighbors(x) {
					if assigned[n] {
						continue
					}
					candidateSize := len(members) + 1
					candidatePairs := reachablePairs + len(members) // n reaches every current member's "reach count" approximation
					ratio := float64(candidatePairs) / float64(candidateSize*candidateSize)
					if ratio < target && len(members) > 1 {
						continue // growing further would dilute the ratio below target
					}
					assigned[n] = true
					members = append(members, n)
					reachablePairs = candidatePairs
					next = append(next, n)
				}
			}
			frontier = next
		}
		for _, v := range members {
			m.SetPartition(v, pid)
		}
		pid++
	}
}

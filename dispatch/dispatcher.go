package dispatch

import (
	"github.com/katalvlaran/reachcompress/adjgraph"
	"github.com/katalvlaran/reachcompress/bibfs"
	"github.com/katalvlaran/reachcompress/pll"
	"github.com/katalvlaran/reachcompress/partition"
)

// SourceGraph is the minimal read-only surface the dispatcher needs from
// the full graph: degree checks for the query-rejection rule and BiBFS
// fallback traversal.
type SourceGraph interface {
	MaxID() VID
	NodeExists(v VID) bool
	OutNeighbors(v VID) []VID
	InNeighbors(v VID) []VID
	OutDegree(v VID) int
	InDegree(v VID) int
}

// Dispatcher is the compressed-search query engine (spec.md C8): it owns a
// partition.Manager and, per partition, whichever Algorithm offline_industry
// selected, and answers Reach(u,v) by routing within- or across-partition.
type Dispatcher struct {
	cfg Config
	g   SourceGraph
	mgr *partition.Manager

	algorithms map[partition.PID]Algorithm
}

// NewDispatcher wires a Dispatcher over g with the given Manager and
// Config; call OfflineIndustry next to populate per-partition algorithms.
func NewDispatcher(g SourceGraph, mgr *partition.Manager, cfg Config) *Dispatcher {
	return &Dispatcher{cfg: cfg, g: g, mgr: mgr, algorithms: make(map[partition.PID]Algorithm)}
}

// Manager exposes the underlying partition.Manager for callers that need
// to inspect partition membership or the meta-graph directly (e.g. a DOT
// export of the partition structure) after OfflineIndustry has run.
func (d *Dispatcher) Manager() *partition.Manager { return d.mgr }

// OfflineIndustry runs the build pipeline described in spec.md §4.8:
// (1) optionally remap vertices per an equivalence mapping, (2) run the
// configured partitioner, (3) build PartitionManager artefacts, (4) for
// each partition subgraph pick bitmatrix/PLL/unreachable-pairs by size and
// density, (5) the partition meta-graph itself is queried directly via
// BiBFS at query time (no separate index to build for it).
//
// equivalence, if non-nil, is the already-parsed vertex -> representative
// mapping (ioformat.ParseEquivalence output); EquivalencePath in Config
// names where it came from but parsing happens at the CLI layer.
func (d *Dispatcher) OfflineIndustry(equivalence map[VID]VID) error {
	if equivalence != nil {
		d.mgr.ReadEquivalenceInfo(equivalence)
	}

	if err := partition.Partition(d.cfg.PartitionerName, d.g, d.mgr, d.cfg.PartitionOpts); err != nil {
		return err
	}

	if !d.cfg.IsIndex {
		for _, pid := range d.mgr.Partitions() {
			sub := d.mgr.Subgraph(pid)
			if sub == nil {
				sub = adjgraph.New()
			}
			d.algorithms[pid] = BiBFSAlgorithm(sub)
		}
		return nil
	}

	for _, pid := range d.mgr.Partitions() {
		sub := d.mgr.Subgraph(pid)
		if sub == nil {
			sub = adjgraph.New()
		}
		d.algorithms[pid] = d.buildAlgorithm(sub)
	}
	return nil
}

// buildAlgorithm implements the size/density threshold cascade from
// spec.md §4.8 step 3, extended with the two supplemental variants from
// SPEC_FULL.md's SUPPLEMENTED FEATURES: a literal tree/forest subgraph gets
// the exact, cheaper TreeCoverAlgorithm ahead of every other branch (its
// Euler-tour containment test is exact, not merely sound-but-incomplete,
// precisely when every vertex has at most one parent); below the dense
// threshold it's DenseBitmatrixAlgorithm; above it, PLL for acyclic
// low-ratio subgraphs, else UnreachablePairsAlgorithm or, when
// Config.UseBloomFilter opts in, BloomFilterAlgorithm. Directed PLL
// requires an acyclic subgraph; when the ratio test selects PLL but the
// subgraph has a cycle, the unreachable-pairs index is used instead (an
// implementation decision, since the spec does not describe SCC
// condensation for the dispatcher's per-partition build — recorded in the
// grounding ledger).
func (d *Dispatcher) buildAlgorithm(sub *adjgraph.Graph) Algorithm {
	if isForest(sub) {
		return TreeCoverAlgorithm(BuildTreeCover(sub))
	}
	if sub.NumVertices() < d.cfg.NumVerticesT {
		return DenseBitmatrixAlgorithm(BuildBitmatrix(sub))
	}
	if ReachRatio(sub) < d.cfg.RatioT {
		if !sub.IsCyclic() {
			idx, err := pll.Build(sub)
			if err == nil {
				return PLLAlgorithm(idx)
			}
		}
		return d.fallbackAlgorithm(sub)
	}
	return d.fallbackAlgorithm(sub)
}

// fallbackAlgorithm is the exact UnreachablePairsAlgorithm, unless
// Config.UseBloomFilter opts this dispatcher into the cheaper, approximate
// BloomFilterAlgorithm for partitions that fall through every other branch.
func (d *Dispatcher) fallbackAlgorithm(sub *adjgraph.Graph) Algorithm {
	if d.cfg.UseBloomFilter {
		return BloomFilterAlgorithm(BuildBloomFilter(sub, 0, 0))
	}
	return UnreachablePairsAlgorithm(BuildUnreachablePairs(sub))
}

// isForest reports whether sub is literally a forest: acyclic, and every
// vertex has at most one incoming edge, so no vertex is reachable by more
// than one path and TreeCover's tree-edges-only containment test is exact
// rather than merely sound.
func isForest(sub *adjgraph.Graph) bool {
	max := sub.MaxID()
	for v := VID(0); v <= max; v++ {
		if !sub.NodeExists(v) {
			continue
		}
		if in, _ := sub.Degree(v); in > 1 {
			return false
		}
	}
	return !sub.IsCyclic()
}

// Reach answers a single online reachability query per spec.md §4.8.
func (d *Dispatcher) Reach(u, v VID) bool {
	if !d.g.NodeExists(u) || !d.g.NodeExists(v) {
		return false
	}
	if d.g.OutDegree(u) == 0 || d.g.InDegree(v) == 0 {
		return false
	}

	pu, uok := d.mgr.PartitionOf(u)
	pv, vok := d.mgr.PartitionOf(v)
	if !uok || !vok {
		return bibfs.Reachable(d.g, u, v)
	}

	if pu == pv {
		if d.withinPartition(pu, u, v) {
			return true
		}
		// Same partition does not imply the only path stays inside it:
		// two vertices in one partition can still be linked solely through
		// edges that leave and re-enter via other partitions.
		return bibfs.Reachable(d.g, u, v)
	}
	return d.crossPartition(u, v, pu, pv)
}

// withinPartition consults pid's Algorithm, or reports false if pid has no
// algorithm built (e.g. an empty partition).
func (d *Dispatcher) withinPartition(pid partition.PID, u, v VID) bool {
	algo, ok := d.algorithms[pid]
	if !ok {
		return false
	}
	return algo.Query(u, v)
}

// crossPartition finds a partition-level path pu -> ... -> pv in part_g via
// BiBFS, then walks the recorded cross-partition edges along that path,
// testing target-partition membership first at each hop before recursing
// (spec.md §9(c) resolution of the source's ambiguous test ordering).
func (d *Dispatcher) crossPartition(u, v VID, pu, pv partition.PID) bool {
	path, ok := bibfs.Path(d.mgr.PartitionGraph(), pu, pv)
	if !ok {
		return false
	}
	return d.tryChain(path, 0, u, v)
}

// tryChain walks path[idx:] starting from vertex current (already known to
// lie in partition path[idx]). Base case (idx is the last partition, i.e.
// the target's partition): require within_partition(current, v) directly.
// Otherwise: for each recorded original edge (a,b) crossing path[idx] ->
// path[idx+1], require within_partition(current, a) in path[idx], then
// recurse from b in path[idx+1]. Returns true on the first successful
// chain (spec.md §4.8's "Return true on the first successful chain").
func (d *Dispatcher) tryChain(path []VID, idx int, current, v VID) bool {
	pid := partition.PID(path[idx])
	if idx == len(path)-1 {
		return d.withinPartition(pid, current, v)
	}

	next := partition.PID(path[idx+1])
	ce := d.mgr.CrossEdges(pid, next)
	if ce == nil {
		return false
	}
	for _, e := range ce.OriginalEdges {
		if !d.withinPartition(pid, current, e.From) {
			continue
		}
		if d.tryChain(path, idx+1, e.To, v) {
			return true
		}
	}
	return false
}

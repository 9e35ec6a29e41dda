package dispatch

import (
	"github.com/katalvlaran/reachcompress/adjgraph"
	"github.com/katalvlaran/reachcompress/bibfs"
	"github.com/katalvlaran/reachcompress/pll"
)

// AlgoKind tags which ReachabilityAlgorithm variant an Algorithm value
// holds (spec.md §9 REDESIGN FLAGS: "Replace with a tagged variant
// ReachabilityAlgorithm = {BiBFSAdj | BiBFSCSR | PLL | TreeCover |
// BloomFilter | UnreachablePairs | DenseBitmatrix} and a single query
// dispatch").
type AlgoKind int

const (
	KindBiBFSAdj AlgoKind = iota
	KindPLL
	KindTreeCover
	KindBloomFilter
	KindUnreachablePairs
	KindDenseBitmatrix
)

func (k AlgoKind) String() string {
	switch k {
	case KindBiBFSAdj:
		return "BiBFSAdj"
	case KindPLL:
		return "PLL"
	case KindTreeCover:
		return "TreeCover"
	case KindBloomFilter:
		return "BloomFilter"
	case KindUnreachablePairs:
		return "UnreachablePairs"
	case KindDenseBitmatrix:
		return "DenseBitmatrix"
	default:
		return "Unknown"
	}
}

// Algorithm is the tagged union itself: exactly one of its payload fields
// is populated, matching Kind. Query is the single dispatch point.
type Algorithm struct {
	Kind AlgoKind

	adj         *adjgraph.Graph
	pllIndex    *pll.Index
	treeCover   *TreeCover
	bloom       *BloomFilter
	unreachable *UnreachablePairs
	bitmatrix   *Bitmatrix
}

// Query answers a within-subgraph reachability test per the algorithm this
// value was built with.
func (a Algorithm) Query(u, v VID) bool {
	switch a.Kind {
	case KindBiBFSAdj:
		return bibfs.Reachable(a.adj, u, v)
	case KindPLL:
		return a.pllIndex.Query(u, v)
	case KindTreeCover:
		return a.treeCover.Query(u, v)
	case KindBloomFilter:
		return a.bloom.Query(u, v)
	case KindUnreachablePairs:
		return a.unreachable.Query(u, v)
	case KindDenseBitmatrix:
		return a.bitmatrix.Query(u, v)
	default:
		return false
	}
}

// BiBFSAlgorithm wraps a plain BiBFS over adj — used when Config.IsIndex is
// false (spec.md §6: "whether per-partition indices are consulted (true)
// or a plain BiBFS is used within partitions (false)").
func BiBFSAlgorithm(adj *adjgraph.Graph) Algorithm {
	return Algorithm{Kind: KindBiBFSAdj, adj: adj}
}

// PLLAlgorithm wraps a built directed PLL index.
func PLLAlgorithm(idx *pll.Index) Algorithm {
	return Algorithm{Kind: KindPLL, pllIndex: idx}
}

// TreeCoverAlgorithm wraps a built TreeCover index.
func TreeCoverAlgorithm(tc *TreeCover) Algorithm {
	return Algorithm{Kind: KindTreeCover, treeCover: tc}
}

// BloomFilterAlgorithm wraps a built BloomFilter index.
func BloomFilterAlgorithm(bf *BloomFilter) Algorithm {
	return Algorithm{Kind: KindBloomFilter, bloom: bf}
}

// UnreachablePairsAlgorithm wraps a built complement-graph index.
func UnreachablePairsAlgorithm(up *UnreachablePairs) Algorithm {
	return Algorithm{Kind: KindUnreachablePairs, unreachable: up}
}

// DenseBitmatrixAlgorithm wraps a built dense reachability matrix.
func DenseBitmatrixAlgorithm(bm *Bitmatrix) Algorithm {
	return Algorithm{Kind: KindDenseBitmatrix, bitmatrix: bm}
}

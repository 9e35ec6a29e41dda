package dispatch

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/katalvlaran/reachcompress/adjgraph"
)

// BloomFilter is a supplemental ReachabilityAlgorithm variant (spec.md §9
// REDESIGN FLAGS tagged union): a probabilistic membership set of reachable
// (u,v) pairs. False positives are possible (never false negatives), so a
// negative answer is certain but a positive one is not — suited to a cheap
// pre-filter ahead of an exact algorithm. The dispatcher uses it as a
// partition's only algorithm solely when Config.UseBloomFilter opts in.
//
// No bloom-filter library appears anywhere in the example pack, so this is
// built directly on hash/fnv (double hashing per Kirsch-Mitzenmacher) rather
// than on a fabricated or unsourced third-party module.
type BloomFilter struct {
	bits []uint64
	m    uint
	k    uint
}

// BuildBloomFilter computes the full reachable-pair set of sub (one BFS per
// source) and inserts every pair into an m-bit filter with k hash
// functions.
func BuildBloomFilter(sub *adjgraph.Graph, m, k uint) *BloomFilter {
	if m == 0 {
		m = 1 << 14
	}
	if k == 0 {
		k = 4
	}
	bf := &BloomFilter{bits: make([]uint64, (m+63)/64), m: m, k: k}

	max := sub.MaxID()
	for a := VID(0); a <= max; a++ {
		if !sub.NodeExists(a) {
			continue
		}
		for b := range bfsReachSet(sub, a) {
			bf.add(a, VID(b))
		}
	}
	return bf
}

func pairKey(a, b VID) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf[:4], uint32(a))
	binary.BigEndian.PutUint32(buf[4:], uint32(b))
	return buf
}

func (bf *BloomFilter) hashes(a, b VID) (uint64, uint64) {
	h1 := fnv.New64a()
	h1.Write(pairKey(a, b))
	sum1 := h1.Sum64()

	h2 := fnv.New64()
	h2.Write(pairKey(a, b))
	sum2 := h2.Sum64()
	return sum1, sum2
}

func (bf *BloomFilter) add(a, b VID) {
	h1, h2 := bf.hashes(a, b)
	for i := uint(0); i < bf.k; i++ {
		pos := (h1 + uint64(i)*h2) % uint64(bf.m)
		bf.bits[pos/64] |= 1 << (pos % 64)
	}
}

// Query reports possible membership of (a,b) in the reachable-pair set.
func (bf *BloomFilter) Query(a, b VID) bool {
	if a == b {
		return true
	}
	h1, h2 := bf.hashes(a, b)
	for i := uint(0); i < bf.k; i++ {
		pos := (h1 + uint64(i)*h2) % uint64(bf.m)
		if bf.bits[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}

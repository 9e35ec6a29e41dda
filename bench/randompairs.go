// Package bench provides random query-pair generation and cross-strategy
// agreement benchmarking, grounded on original_source/include/utils/
// RandomUtils.h's generateUniqueQueryPairs/generateQueryPairs and the
// teacher's own *_bench_test.go convention of a hand-rolled benchmark
// harness over math/rand rather than a generator library.
package bench

import "math/rand"

// VID is a dense non-negative vertex identifier.
type VID = int32

// Pair is one (u,v) query endpoint pair.
type Pair struct{ U, V VID }

// RandomPairs generates up to n distinct (u,v) pairs with u != v, drawn
// uniformly from [0,maxValue), deterministic for a given seed — the Go
// equivalent of RandomUtils::generateUniqueQueryPairs. It stops after n*100
// draws, so it returns fewer than n pairs when fewer distinct pairs exist
// or the draws run out first.
func RandomPairs(n int, maxValue VID, seed int64) []Pair {
	if maxValue < 2 || n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[Pair]struct{}, n)
	pairs := make([]Pair, 0, n)

	maxAttempts := n * 100
	for attempts := 0; len(pairs) < n && attempts < maxAttempts; attempts++ {
		u := VID(rng.Int63n(int64(maxValue)))
		v := VID(rng.Int63n(int64(maxValue)))
		if u == v {
			continue
		}
		p := Pair{U: u, V: v}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}
	return pairs
}

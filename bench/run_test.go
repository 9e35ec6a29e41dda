package bench_test

import (
	"testing"

	"github.com/katalvlaran/reachcompress/adjgraph"
	"github.com/katalvlaran/reachcompress/bench"
	"github.com/katalvlaran/reachcompress/bibfs"
	"github.com/katalvlaran/reachcompress/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChainGraph(n int32) *adjgraph.Graph {
	g := adjgraph.New()
	for i := int32(0); i < n-1; i++ {
		g.AddEdge(i, i+1)
	}
	// a couple of extra branches so reachability is non-trivial.
	if n > 5 {
		g.AddEdge(1, n-1)
		g.AddEdge(3, 0) // back edge breaks simple chain monotonicity in a controlled way
	}
	return g
}

func TestRun_AllCandidatesAgreeWithOracleOnChainGraph(t *testing.T) {
	const n = int32(30)
	g := buildChainGraph(n)
	oracle := func(u, v bench.VID) bool { return bibfs.Reachable(g, u, v) }

	candidates := map[string]bench.Query{
		"bitmatrix":   dispatch.BuildBitmatrix(g).Query,
		"unreachable": dispatch.BuildUnreachablePairs(g).Query,
	}

	pairs := bench.RandomPairs(200, n, 42)
	require.NotEmpty(t, pairs)

	report := bench.Run(pairs, oracle, candidates)
	assert.True(t, report.Agrees(), "expected agreement, got disagreements: %v", report.Disagreements)
	assert.Equal(t, len(pairs), report.NumPairs)

	// TreeCover under-approximates when the graph has non-tree edges (the
	// back edge 3->0 here), so it is held only to soundness: every pair it
	// claims reachable must be reachable.
	tc := dispatch.BuildTreeCover(g)
	for _, p := range pairs {
		if tc.Query(p.U, p.V) {
			assert.True(t, oracle(p.U, p.V), "treecover claimed unreachable pair (%d,%d) reachable", p.U, p.V)
		}
	}
}

func TestRun_ReportsDisagreementWhenCandidateIsWrong(t *testing.T) {
	g := buildChainGraph(10)
	oracle := func(u, v bench.VID) bool { return bibfs.Reachable(g, u, v) }

	alwaysFalse := map[string]bench.Query{
		"broken": func(u, v bench.VID) bool { return false },
	}

	pairs := []bench.Pair{{U: 0, V: 9}}
	report := bench.Run(pairs, oracle, alwaysFalse)

	require.False(t, report.Agrees())
	require.Len(t, report.Disagreements, 1)
	assert.Equal(t, "broken", report.Disagreements[0].Strategy)
	assert.True(t, report.Disagreements[0].Oracle)
	assert.False(t, report.Disagreements[0].Got)
	assert.NotEmpty(t, report.Disagreements[0].String())
}

func TestRandomPairs_DeterministicForSameSeed(t *testing.T) {
	a := bench.RandomPairs(50, 100, 7)
	b := bench.RandomPairs(50, 100, 7)
	assert.Equal(t, a, b)

	c := bench.RandomPairs(50, 100, 8)
	assert.NotEqual(t, a, c)
}

func TestRandomPairs_NoSelfPairsNoDuplicates(t *testing.T) {
	pairs := bench.RandomPairs(500, 20, 1)
	seen := make(map[bench.Pair]struct{}, len(pairs))
	for _, p := range pairs {
		assert.NotEqual(t, p.U, p.V)
		_, dup := seen[p]
		assert.False(t, dup, "duplicate pair %v", p)
		seen[p] = struct{}{}
	}
}

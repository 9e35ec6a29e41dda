package cache_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/reachcompress/adjgraph"
	"github.com/katalvlaran/reachcompress/cache"
	"github.com/katalvlaran/reachcompress/hypergraph"
	"github.com/katalvlaran/reachcompress/internal/errs"
	"github.com/katalvlaran/reachcompress/pll"
	"github.com/katalvlaran/reachcompress/wgraph"
	"github.com/katalvlaran/reachcompress/wpll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallDAG() *adjgraph.Graph {
	g := adjgraph.New()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(0, 4)
	g.AddEdge(4, 3)
	g.AddEdge(4, 5)
	return g
}

func TestPLLIndex_SaveLoadIdempotent(t *testing.T) {
	g := smallDAG()
	idx, err := pll.Build(g)
	require.NoError(t, err)

	var inBuf, outBuf bytes.Buffer
	require.NoError(t, cache.SavePLLIndex(&inBuf, &outBuf, idx))

	loaded, err := cache.LoadPLLIndex(bytes.NewReader(inBuf.Bytes()), bytes.NewReader(outBuf.Bytes()), len(idx.Vertices()))
	require.NoError(t, err)

	for _, u := range idx.Vertices() {
		for _, v := range idx.Vertices() {
			assert.Equal(t, idx.Query(u, v), loaded.Query(u, v), "query(%d,%d) must match after round-trip", u, v)
		}
	}
}

func TestWeightedPLL_SaveLoadIdempotent(t *testing.T) {
	g := wgraph.New()
	g.AddEdge(5, 6, 19)
	g.AddEdge(6, 7, 19)
	g.AddEdge(7, 8, 3)
	idx := wpll.Build(g)

	var buf bytes.Buffer
	require.NoError(t, cache.SaveWeightedPLL(&buf, idx))

	loaded, err := cache.LoadWeightedPLL(bytes.NewReader(buf.Bytes()), len(idx.Vertices()))
	require.NoError(t, err)

	for _, u := range idx.Vertices() {
		for _, v := range idx.Vertices() {
			for _, k := range []int64{1, 3, 19, 20} {
				assert.Equal(t, idx.Reachable(u, v, k), loaded.Reachable(u, v, k))
			}
		}
	}
}

func TestDisjointSet_SaveLoadIdempotent(t *testing.T) {
	ds := hypergraph.NewDisjointSet()
	for _, x := range []int32{0, 1, 2, 3, 4} {
		ds.Add(x)
	}
	ds.Union(0, 1)
	ds.Union(2, 3)
	ds.Freeze()

	members := ds.Members()
	var buf bytes.Buffer
	require.NoError(t, cache.SaveDisjointSet(&buf, ds, members))

	loaded, err := cache.LoadDisjointSet(bytes.NewReader(buf.Bytes()), members)
	require.NoError(t, err)

	assert.True(t, loaded.Connected(0, 1))
	assert.True(t, loaded.Connected(2, 3))
	assert.False(t, loaded.Connected(0, 2))
	assert.False(t, loaded.Connected(4, 0))
}

func TestWeightedGraph_SaveLoadIdempotent(t *testing.T) {
	g := wgraph.New()
	g.AddEdge(0, 1, 10)
	g.AddEdge(1, 2, 20)

	var buf bytes.Buffer
	require.NoError(t, cache.SaveWeightedGraph(&buf, g))

	loaded, err := cache.LoadWeightedGraph(bytes.NewReader(buf.Bytes()), len(g.VertexIDs()), 0)
	require.NoError(t, err)

	assert.ElementsMatch(t, g.VertexIDs(), loaded.VertexIDs())
	assert.ElementsMatch(t, g.Neighbors(0), loaded.Neighbors(0))
	assert.ElementsMatch(t, g.Neighbors(1), loaded.Neighbors(1))
}

func TestLoad_ChecksumMismatch_IsCacheMismatch(t *testing.T) {
	g := wgraph.New()
	g.AddEdge(0, 1, 10)
	var buf bytes.Buffer
	require.NoError(t, cache.SaveWeightedGraph(&buf, g))

	corrupted := buf.Bytes()
	corrupted[0] = 'X' // flip the first header byte without touching the trailer

	_, err := cache.LoadWeightedGraph(bytes.NewReader(corrupted), len(g.VertexIDs()), 0)
	assert.ErrorIs(t, err, errs.ErrCacheMismatch)
}

func TestLoad_SizeMismatch_IsCacheMismatch(t *testing.T) {
	g := wgraph.New()
	g.AddEdge(0, 1, 10)
	var buf bytes.Buffer
	require.NoError(t, cache.SaveWeightedGraph(&buf, g))

	_, err := cache.LoadWeightedGraph(bytes.NewReader(buf.Bytes()), 999, 0)
	assert.ErrorIs(t, err, errs.ErrCacheMismatch)
}

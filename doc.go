// Package reachcompress is a compressed reachability-query engine for
// directed graphs and hypergraphs: a CSR store, directed and weighted
// Pruned Landmark Labeling, a partitioned query dispatcher, and a layered
// intersection-size index over hypergraphs, all backed by a text-format
// on-disk cache.
//
// Core packages, one concern each:
//
//	csr/        — compressed sparse-row graph store
//	adjgraph/   — mutable adjacency-list graph with partition tags
//	wgraph/     — weighted adjacency-list graph
//	bibfs/      — bidirectional BFS over either graph representation
//	pll/        — directed 2-hop Pruned Landmark Labeling
//	wpll/       — weighted Pruned Landmark Labeling
//	partition/  — partition manager and partitioning strategies
//	dispatch/   — compressed-search dispatcher over partitioned indices
//	hypergraph/ — layered k-intersection hypergraph index
//	cache/      — checksummed on-disk persistence for the above
//
// cmd/reachcompress is the CLI entrypoint; ioformat, telemetry, registry,
// remotestore, bench, and dotexport are supporting I/O, observability, and
// tooling packages. See DESIGN.md for how each is grounded.
package reachcompress

// Package errs defines the sentinel error vocabulary shared by every
// reachcompress package, the way core.Err* is shared across lvlath's
// bfs/dfs/dijkstra packages.
//
// Propagation convention (spec.md §7): errors surfacing during a query are
// converted to false by the caller and logged; errors surfacing during a
// build abort the build and are returned to the caller. Cache errors never
// abort — they degrade to a full rebuild.
package errs

import "errors"

var (
	// ErrInvalidVertex indicates an endpoint is out of range or tombstoned
	// where a live vertex was required.
	ErrInvalidVertex = errors.New("reachcompress: invalid vertex")

	// ErrGraphHasCycle indicates PLL construction was attempted on a cyclic
	// graph; directed PLL requires a DAG.
	ErrGraphHasCycle = errors.New("reachcompress: graph has a cycle")

	// ErrLayerUnavailable indicates a weighted-graph layer was requested for
	// a k that was never built.
	ErrLayerUnavailable = errors.New("reachcompress: layer unavailable")

	// ErrCacheMismatch indicates a loaded cache artifact does not match the
	// expected size or checksum of the live graph.
	ErrCacheMismatch = errors.New("reachcompress: cache mismatch")

	// ErrCorruptInput indicates a file violated its grammar after an initial
	// handshake (e.g. header line) succeeded.
	ErrCorruptInput = errors.New("reachcompress: corrupt input")

	// ErrUnsupportedPartitioner indicates a configured partitioner name is
	// not a known Strategy.
	ErrUnsupportedPartitioner = errors.New("reachcompress: unsupported partitioner")

	// ErrNilGraph indicates a nil container pointer was passed where a live
	// one was required.
	ErrNilGraph = errors.New("reachcompress: nil graph")
)

// Package bibfs implements bidirectional BFS over any directed graph
// container exposing a GraphView (csr.Store or adjgraph.Graph): a forward
// frontier expands along out-edges, a backward frontier expands along
// in-edges, alternating one layer at a time, returning true as soon as a
// vertex has been seen by both sides.
//
// A partition-restricted variant additionally skips any neighbor whose
// partition tag differs from a supplied id (-1 matches any partition),
// letting the dispatcher (package dispatch) search within or across a
// single partition without building a dedicated subgraph view.
package bibfs

import "github.com/katalvlaran/reachcompress/internal/errs"

// VID is a dense non-negative vertex identifier.
type VID = int32

var ErrInvalidVertex = errs.ErrInvalidVertex

// GraphView is the minimal read-only surface bidirectional BFS needs.
type GraphView interface {
	NodeExists(v VID) bool
	OutNeighbors(v VID) []VID
	InNeighbors(v VID) []VID
}

// Reachable runs a plain bidirectional BFS from u to v and reports whether
// v is reachable from u. Self-queries (u==v) return true iff the vertex is
// live; out-of-range or tombstoned endpoints return false.
func Reachable(g GraphView, u, v VID) bool {
	ok, _ := run(g, u, v, -1, nil, false)
	return ok
}

// ReachableInPartition restricts expansion to vertices whose partition tag
// equals pid (any partition if pid == -1). partOf resolves a vertex's
// partition tag; callers typically pass a closure over partition.Manager or
// csr.Store.Partition.
func ReachableInPartition(g GraphView, u, v VID, pid int16, partOf func(VID) int16) bool {
	ok, _ := run(g, u, v, pid, partOf, false)
	return ok
}

// Path runs bidirectional BFS and, if reachable, reconstructs a full u..v
// path by stitching the forward predecessor chain to the meeting vertex with
// the reversed backward predecessor chain. Returns (nil, false) if u and v
// are not connected.
func Path(g GraphView, u, v VID) ([]VID, bool) {
	_, path := run(g, u, v, -1, nil, true)
	if path == nil {
		return nil, false
	}
	return path, true
}

// run is the single bidirectional-BFS engine backing Reachable,
// ReachableInPartition, and Path. Returns (reached, path); path is nil
// whenever wantPath is false or the search failed.
func run(g GraphView, u, v VID, pid int16, partOf func(VID) int16, wantPath bool) (bool, []VID) {
	if !g.NodeExists(u) || !g.NodeExists(v) {
		return false, nil
	}
	if u == v {
		if !wantPath {
			return true, nil
		}
		return true, []VID{u}
	}

	matches := func(x VID) bool {
		return pid == -1 || partOf == nil || partOf(x) == pid
	}

	fwdVisited := map[VID]bool{u: true}
	bwdVisited := map[VID]bool{v: true}
	fwdParent := map[VID]VID{}
	bwdParent := map[VID]VID{}
	fwdFrontier := []VID{u}
	bwdFrontier := []VID{v}

	for len(fwdFrontier) > 0 && len(bwdFrontier) > 0 {
		var meet VID = -1
		if len(fwdFrontier) <= len(bwdFrontier) {
			fwdFrontier, meet = step(g, fwdFrontier, fwdVisited, bwdVisited, fwdParent, true, matches)
		} else {
			bwdFrontier, meet = step(g, bwdFrontier, bwdVisited, fwdVisited, bwdParent, false, matches)
		}
		if meet != -1 {
			if !wantPath {
				return true, nil
			}
			return true, stitch(meet, fwdParent, bwdParent, u, v)
		}
	}
	return false, nil
}

// step expands one frontier layer, recording parents and enqueuing newly
// seen vertices; returns the next frontier and the first vertex also seen by
// the opposite side (-1 if none yet).
func step(g GraphView, frontier []VID, visited, otherVisited map[VID]bool, parent map[VID]VID, forward bool, matches func(VID) bool) ([]VID, VID) {
	var next []VID
	for _, x := range frontier {
		var nbrs []VID
		if forward {
			nbrs = g.OutNeighbors(x)
		} else {
			nbrs = g.InNeighbors(x)
		}
		for _, n := range nbrs {
			if !matches(n) || visited[n] {
				continue
			}
			visited[n] = true
			parent[n] = x
			next = append(next, n)
			if otherVisited[n] {
				return next, n
			}
		}
	}
	return next, -1
}

func stitch(meet VID, fwdParent, bwdParent map[VID]VID, u, v VID) []VID {
	var fwd []VID
	for x := meet; x != u; x = fwdParent[x] {
		fwd = append([]VID{x}, fwd...)
	}
	fwd = append([]VID{u}, fwd...)

	var bwd []VID
	for x := meet; x != v; x = bwdParent[x] {
		bwd = append(bwd, bwdParent[x])
	}
	return append(fwd, bwd...)
}

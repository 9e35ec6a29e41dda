package csr

import "sort"

// OutEdges returns the sorted out-neighbor slice of v. The returned slice
// aliases internal storage and must be treated as read-only by the caller.
// Complexity: O(1).
func (s *Store) OutEdges(v VID) []VID {
	s.muStruct.RLock()
	defer s.muStruct.RUnlock()
	if v < 0 || v > s.maxID {
		return nil
	}
	return s.outCol[s.outRow[v]:s.outRow[v+1]]
}

// InEdges returns the sorted in-neighbor slice of v.
// Complexity: O(1).
func (s *Store) InEdges(v VID) []VID {
	s.muStruct.RLock()
	defer s.muStruct.RUnlock()
	if v < 0 || v > s.maxID {
		return nil
	}
	return s.inCol[s.inRow[v]:s.inRow[v+1]]
}

// OutDegree returns out-degree of v, or 0 if v is out of range.
func (s *Store) OutDegree(v VID) int {
	s.muStruct.RLock()
	defer s.muStruct.RUnlock()
	if v < 0 || v > s.maxID {
		return 0
	}
	return int(s.outRow[v+1] - s.outRow[v])
}

// InDegree returns in-degree of v, or 0 if v is out of range.
func (s *Store) InDegree(v VID) int {
	s.muStruct.RLock()
	defer s.muStruct.RUnlock()
	if v < 0 || v > s.maxID {
		return 0
	}
	return int(s.inRow[v+1] - s.inRow[v])
}

// NodeExists reports whether v is a live (non-tombstone) slot: it has
// non-zero degree on either side.
func (s *Store) NodeExists(v VID) bool {
	s.muStruct.RLock()
	defer s.muStruct.RUnlock()
	if v < 0 || v > s.maxID {
		return false
	}
	return s.liveSlots[v]
}

// MaxID returns the inclusive highest addressable vertex slot (N-1).
func (s *Store) MaxID() int32 {
	s.muStruct.RLock()
	defer s.muStruct.RUnlock()
	return s.maxID
}

// NumEdges returns the total edge count.
func (s *Store) NumEdges() int32 {
	s.muStruct.RLock()
	defer s.muStruct.RUnlock()
	return s.numEdges
}

// NumNodes returns the count of non-tombstone slots.
func (s *Store) NumNodes() int32 {
	s.muStruct.RLock()
	defer s.muStruct.RUnlock()
	return s.numNodes
}

// Partition returns the partition tag of v, or -1 if out of range or
// unassigned.
func (s *Store) Partition(v VID) int16 {
	s.muStruct.RLock()
	defer s.muStruct.RUnlock()
	if v < 0 || v > s.maxID {
		return -1
	}
	return s.partition[v]
}

// SetPartition tags v with the given partition id.
func (s *Store) SetPartition(v VID, pid int16) error {
	s.muStruct.Lock()
	defer s.muStruct.Unlock()
	if v < 0 || v > s.maxID {
		return ErrInvalidVertex
	}
	s.partition[v] = pid
	return nil
}

// HasEdge reports whether (u,v) exists via binary search of row u.
// Complexity: O(log d).
func (s *Store) HasEdge(u, v VID) bool {
	s.muStruct.RLock()
	defer s.muStruct.RUnlock()
	return s.hasEdgeLocked(u, v)
}

func (s *Store) hasEdgeLocked(u, v VID) bool {
	if u < 0 || u > s.maxID || v < 0 || v > s.maxID {
		return false
	}
	row := s.outCol[s.outRow[u]:s.outRow[u+1]]
	i := sort.Search(len(row), func(i int) bool { return row[i] >= v })
	return i < len(row) && row[i] == v
}

// OutNeighbors is an alias for OutEdges, satisfying the bibfs.GraphView and
// pll.GraphView interfaces with a name shared across all graph containers.
func (s *Store) OutNeighbors(v VID) []VID { return s.OutEdges(v) }

// InNeighbors is an alias for InEdges, satisfying bibfs.GraphView/pll.GraphView.
func (s *Store) InNeighbors(v VID) []VID { return s.InEdges(v) }

// MemoryUsage returns the sum of array capacities in elements (not bytes),
// a cheap proxy for the spec's "sum of array capacities" metric.
func (s *Store) MemoryUsage() int64 {
	s.muStruct.RLock()
	defer s.muStruct.RUnlock()
	return int64(cap(s.outRow) + cap(s.outCol) + cap(s.inRow) + cap(s.inCol) + cap(s.partition) + cap(s.liveSlots))
}

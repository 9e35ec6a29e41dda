package csr

import "sort"

// insertSorted inserts value into col at the sorted position within
// [row[at], row[at+1]), shifting the tail of col (everything from that
// position onward, across every later row) right by one slot, and bumping
// every row pointer after at by one. Returns the (possibly reallocated) col
// slice. O(E) worst case — callers are warned in the package doc that bulk
// rebuild beats many single-edge edits.
func insertSorted(col []VID, row []int32, at int32, value VID) []VID {
	lo, hi := row[at], row[at+1]
	pos := lo + int32(sort.Search(int(hi-lo), func(i int) bool { return col[lo+int32(i)] >= value }))

	col = append(col, 0)
	copy(col[pos+1:], col[pos:len(col)-1])
	col[pos] = value

	for i := at + 1; i < int32(len(row)); i++ {
		row[i]++
	}
	return col
}

// removeSorted deletes value from col's row at (no-op if absent), shifting
// the tail left by one and decrementing every row pointer after at.
func removeSorted(col []VID, row []int32, at int32, value VID) []VID {
	lo, hi := row[at], row[at+1]
	idx := lo + int32(sort.Search(int(hi-lo), func(i int) bool { return col[lo+int32(i)] >= value }))
	if idx >= hi || col[idx] != value {
		return col // not present
	}
	copy(col[idx:], col[idx+1:])
	col = col[:len(col)-1]
	for i := at + 1; i < int32(len(row)); i++ {
		row[i]--
	}
	return col
}

// AddEdge inserts (u,v) into both the out- and in-representations in sorted
// position. Returns false (no error) if u==v or the edge already exists —
// spec.md marks these "silent false". Returns ErrInvalidVertex if either
// endpoint is out of range.
// Complexity: O(E) due to tail shifting; prefer bulk rebuild for many edits.
func (s *Store) AddEdge(u, v VID) (bool, error) {
	s.muStruct.Lock()
	defer s.muStruct.Unlock()

	if u < 0 || u > s.maxID || v < 0 || v > s.maxID {
		return false, ErrInvalidVertex
	}
	if u == v {
		return false, nil
	}
	if s.hasEdgeLocked(u, v) {
		return false, nil
	}

	s.outCol = insertSorted(s.outCol, s.outRow, u, v)
	s.inCol = insertSorted(s.inCol, s.inRow, v, u)
	s.numEdges++

	if !s.liveSlots[u] {
		s.liveSlots[u] = true
		s.numNodes++
	}
	if !s.liveSlots[v] {
		s.liveSlots[v] = true
		s.numNodes++
	}

	return true, nil
}

// RemoveEdge deletes (u,v) from both representations symmetrically. Returns
// false if the edge was not present.
func (s *Store) RemoveEdge(u, v VID) (bool, error) {
	s.muStruct.Lock()
	defer s.muStruct.Unlock()

	if u < 0 || u > s.maxID || v < 0 || v > s.maxID {
		return false, ErrInvalidVertex
	}
	if !s.hasEdgeLocked(u, v) {
		return false, nil
	}

	s.outCol = removeSorted(s.outCol, s.outRow, u, v)
	s.inCol = removeSorted(s.inCol, s.inRow, v, u)
	s.numEdges--

	s.refreshLiveness(u)
	s.refreshLiveness(v)

	return true, nil
}

// RemoveNode deletes every (v,*) and (*,v) edge, then tombstones the row.
// If v was the last live slot (v == maxID after tombstoning), maxID shrinks
// to the new highest live slot, truncating the row arrays.
func (s *Store) RemoveNode(v VID) error {
	s.muStruct.Lock()
	defer s.muStruct.Unlock()

	if v < 0 || v > s.maxID {
		return ErrInvalidVertex
	}

	outNbrs := append([]VID(nil), s.outCol[s.outRow[v]:s.outRow[v+1]]...)
	for _, w := range outNbrs {
		s.outCol = removeSorted(s.outCol, s.outRow, v, w)
		s.inCol = removeSorted(s.inCol, s.inRow, w, v)
		s.numEdges--
	}
	inNbrs := append([]VID(nil), s.inCol[s.inRow[v]:s.inRow[v+1]]...)
	for _, u := range inNbrs {
		s.inCol = removeSorted(s.inCol, s.inRow, v, u)
		s.outCol = removeSorted(s.outCol, s.outRow, u, v)
		s.numEdges--
	}

	if s.liveSlots[v] {
		s.liveSlots[v] = false
		s.numNodes--
	}
	s.partition[v] = -1

	if v == s.maxID {
		s.shrinkMaxID()
	}

	return nil
}

// refreshLiveness recomputes whether v is live after an edge removal.
func (s *Store) refreshLiveness(v VID) {
	live := s.outRow[v+1] > s.outRow[v] || s.inRow[v+1] > s.inRow[v]
	if live && !s.liveSlots[v] {
		s.liveSlots[v] = true
		s.numNodes++
	} else if !live && s.liveSlots[v] {
		s.liveSlots[v] = false
		s.numNodes--
	}
}

// shrinkMaxID walks backward from the current maxID while the trailing slot
// is a tombstone, truncating row/partition/liveSlots arrays to match.
func (s *Store) shrinkMaxID() {
	newMax := s.maxID
	for newMax >= 0 && !s.liveSlots[newMax] {
		newMax--
	}
	if newMax == s.maxID {
		return
	}
	s.maxID = newMax
	n := newMax + 1
	s.outRow = s.outRow[:n+1]
	s.inRow = s.inRow[:n+1]
	s.partition = s.partition[:n]
	s.liveSlots = s.liveSlots[:n]
}

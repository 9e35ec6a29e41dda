package cache

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/reachcompress/internal/errs"
	"github.com/katalvlaran/reachcompress/pll"
)

// VID is a dense non-negative vertex identifier.
type VID = int32

// SavePLLLabels writes one label family (IN or OUT) of a directed PLL
// index in the cache format from spec.md §6: first line N (vertex count),
// then for each vertex u, "u count landmark_1 bw_1 landmark_2 bw_2 …".
// Directed PLL labels carry no weight, so bw is always written as 0 (an
// unused placeholder field kept only so the line grammar matches the
// weighted-PLL and weighted-graph-adjacency formats exactly).
func SavePLLLabels(w io.Writer, label func(VID) []VID, vertices []VID) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d\n", len(vertices))
	for _, u := range vertices {
		list := label(u)
		fmt.Fprintf(&buf, "%d %d", u, len(list))
		for _, landmark := range list {
			fmt.Fprintf(&buf, " %d 0", landmark)
		}
		buf.WriteByte('\n')
	}
	return writeWithTrailer(w, buf.Bytes())
}

// LoadPLLLabels reads the format SavePLLLabels writes, returning a
// landmark-list map. expectedN is the live graph's vertex count; a
// mismatch against the recorded N is ErrCacheMismatch (a cache miss, not a
// fatal error — the caller should fall back to rebuilding).
func LoadPLLLabels(r io.Reader, expectedN int) (map[VID][]VID, error) {
	lines, err := readWithTrailer(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.ErrCacheMismatch
	}
	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, errs.ErrCorruptInput
	}
	if n != expectedN {
		return nil, errs.ErrCacheMismatch
	}

	label := make(map[VID][]VID, n)
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, errs.ErrCorruptInput
		}
		u, err := parseVID(fields[0])
		if err != nil {
			return nil, errs.ErrCorruptInput
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errs.ErrCorruptInput
		}
		if len(fields) != 2+2*count {
			return nil, errs.ErrCorruptInput
		}
		list := make([]VID, 0, count)
		for i := 0; i < count; i++ {
			lm, err := parseVID(fields[2+2*i])
			if err != nil {
				return nil, errs.ErrCorruptInput
			}
			list = append(list, lm)
		}
		label[u] = list
	}
	return label, nil
}

// SavePLLIndex writes both IN and OUT label families of idx, one artefact
// each (suffixes SuffixPLLIn/SuffixPLLOut per offline_industry's cache
// prefix convention).
func SavePLLIndex(inW, outW io.Writer, idx *pll.Index) error {
	verts := idx.Vertices()
	if err := SavePLLLabels(inW, idx.IN, verts); err != nil {
		return err
	}
	return SavePLLLabels(outW, idx.OUT, verts)
}

// LoadPLLIndex reads both label families back and rebuilds an Index via
// pll.FromLabels.
func LoadPLLIndex(inR, outR io.Reader, expectedN int) (*pll.Index, error) {
	in, err := LoadPLLLabels(inR, expectedN)
	if err != nil {
		return nil, err
	}
	out, err := LoadPLLLabels(outR, expectedN)
	if err != nil {
		return nil, err
	}
	live := make(map[VID]bool, len(in)+len(out))
	for v := range in {
		live[v] = true
	}
	for v := range out {
		live[v] = true
	}
	return pll.FromLabels(in, out, live), nil
}

func parseVID(s string) (VID, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return VID(n), nil
}

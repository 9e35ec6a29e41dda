package cache

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/reachcompress/internal/errs"
	"github.com/katalvlaran/reachcompress/wpll"
)

// SaveWeightedPLL writes idx in the cache format from spec.md §6 ("PLL
// labels" generic grammar, here with real bottleneck weights): first line
// N, then for each vertex u, "u count landmark_1 bw_1 landmark_2 bw_2 …".
func SaveWeightedPLL(w io.Writer, idx *wpll.Index) error {
	verts := idx.Vertices()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d\n", len(verts))
	for _, u := range verts {
		entries := idx.Label(u)
		fmt.Fprintf(&buf, "%d %d", u, len(entries))
		for _, e := range entries {
			fmt.Fprintf(&buf, " %d %d", e.Landmark, e.Bottleneck)
		}
		buf.WriteByte('\n')
	}
	return writeWithTrailer(w, buf.Bytes())
}

// LoadWeightedPLL reads the format SaveWeightedPLL writes and rebuilds an
// Index via wpll.FromLabels. expectedN mismatches are ErrCacheMismatch.
func LoadWeightedPLL(r io.Reader, expectedN int) (*wpll.Index, error) {
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

	label := make(map[VID][]wpll.Entry, n)
	vertices := make([]VID, 0, n)
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
		entries := make([]wpll.Entry, 0, count)
		for i := 0; i < count; i++ {
			lm, err := parseVID(fields[2+2*i])
			if err != nil {
				return nil, errs.ErrCorruptInput
			}
			bw, err := strconv.ParseInt(fields[3+2*i], 10, 64)
			if err != nil {
				return nil, errs.ErrCorruptInput
			}
			entries = append(entries, wpll.Entry{Landmark: lm, Bottleneck: bw})
		}
		label[u] = entries
		vertices = append(vertices, u)
	}
	return wpll.FromLabels(label, vertices), nil
}

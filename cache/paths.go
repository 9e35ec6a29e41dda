package cache

import (
	"fmt"
	"os"

	"github.com/katalvlaran/reachcompress/internal/errs"
)

// Artefact suffixes (spec.md §4.10): save paths are the caller-supplied
// prefix with one of these appended.
const (
	SuffixPLLIn     = "_pll_in.idx"
	SuffixPLLOut    = "_pll_out.idx"
	SuffixWPLL      = "_wpll.idx"
	SuffixHGDS      = "_hg_ds.idx"
	SuffixWGraphDS  = "_wg_ds.idx"
	SuffixWGraphAdj = "_wg_adj.idx"
)

// LayerAdjSuffix returns the per-k weighted-graph-adjacency suffix
// (_lds_k<i>_adj.idx) for a hypergraph layer.
func LayerAdjSuffix(k int) string { return fmt.Sprintf("_lds_k%d_adj.idx", k) }

// LayerDSSuffix returns the per-k disjoint-set suffix (_lds_k<i>_ds.idx)
// for a hypergraph layer.
func LayerDSSuffix(k int) string { return fmt.Sprintf("_lds_k%d_ds.idx", k) }

// PathFor joins a cache-prefix and an artefact suffix into a save path.
func PathFor(prefix, suffix string) string { return prefix + suffix }

// SaveToFile calls save with a freshly created file at path; any I/O
// failure on open/write is returned to the caller as a warning-worthy
// error (spec.md §6: "I/O failure on save is a warning; the operation
// proceeds in memory") rather than aborting — callers should log and
// continue, not treat it as a build failure.
func SaveToFile(path string, save func(w *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return save(f)
}

// LoadFromFile opens path and calls load with the resulting file. A
// missing file is a silent cache miss (spec.md §6: "Missing cache files
// are silent misses"), reported as ErrCacheMismatch so callers can use
// the same rebuild-on-mismatch path uniformly.
func LoadFromFile(path string, load func(r *os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errs.ErrCacheMismatch
		}
		return err
	}
	defer f.Close()
	return load(f)
}

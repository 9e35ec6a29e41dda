package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/katalvlaran/reachcompress/csr"
	"github.com/katalvlaran/reachcompress/dispatch"
	"github.com/katalvlaran/reachcompress/ioformat"
	"github.com/katalvlaran/reachcompress/partition"
)

// loadCSR parses an edge-list file into a csr.Store sized to the highest
// referenced vertex plus one.
func loadCSR(path string) (*csr.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reachcompress: open edge list %s: %w", path, err)
	}
	defer f.Close()

	edges := ioformat.ParseEdgeList(f)
	var maxID int32
	out := make([]csr.Edge, 0, len(edges))
	for _, e := range edges {
		if e.From > maxID {
			maxID = e.From
		}
		if e.To > maxID {
			maxID = e.To
		}
		out = append(out, csr.Edge{From: e.From, To: e.To})
	}
	return csr.FromEdgeList(maxID+1, out), nil
}

// buildDispatcherConfig reads partitioner_name/num_vertices_T/ratio_T/
// is_index from viper's "dispatch" keys (set through the --config file or
// the environment; no CLI flag is bound to them; unset keys fall back to
// dispatch.NewConfig's defaults).
func buildDispatcherConfig() (dispatch.Config, error) {
	opts := []dispatch.Option{}

	if name := viper.GetString("dispatch.partitioner"); name != "" {
		strat, err := partition.ParseStrategy(name)
		if err != nil {
			return dispatch.Config{}, fmt.Errorf("reachcompress: %w", err)
		}
		opts = append(opts, dispatch.WithPartitioner(strat))
	}
	if viper.IsSet("dispatch.num_vertices_t") || viper.IsSet("dispatch.ratio_t") {
		n := viper.GetInt("dispatch.num_vertices_t")
		if n == 0 {
			n = 32
		}
		ratio := viper.GetFloat64("dispatch.ratio_t")
		if ratio == 0 {
			ratio = 0.5
		}
		opts = append(opts, dispatch.WithThresholds(n, ratio))
	}
	if viper.IsSet("dispatch.is_index") {
		opts = append(opts, dispatch.WithIndex(viper.GetBool("dispatch.is_index")))
	}

	return dispatch.NewConfig(opts...), nil
}

// loadEquivalence parses an optional equivalence-mapping file, returning
// nil when path is empty (no remap requested).
func loadEquivalence(path string) (map[int32]int32, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reachcompress: open equivalence file %s: %w", path, err)
	}
	defer f.Close()
	return ioformat.ParseEquivalence(f), nil
}

// buildDispatcher loads the edge list at inputPath, configures and builds
// a dispatch.Dispatcher against it, and returns the pieces callers need to
// query or inspect further.
func buildDispatcher(inputPath, equivalencePath string) (*csr.Store, *dispatch.Dispatcher, error) {
	g, err := loadCSR(inputPath)
	if err != nil {
		return nil, nil, err
	}
	d, err := buildDispatcherFromStore(g, equivalencePath)
	if err != nil {
		return nil, nil, err
	}
	return g, d, nil
}

// buildDispatcherFromStore is buildDispatcher's second half, split out so
// callers that already hold a csr.Store (e.g. after a cache-load attempt)
// don't have to re-parse the edge list.
func buildDispatcherFromStore(g *csr.Store, equivalencePath string) (*dispatch.Dispatcher, error) {
	cfg, err := buildDispatcherConfig()
	if err != nil {
		return nil, err
	}
	equivalence, err := loadEquivalence(equivalencePath)
	if err != nil {
		return nil, err
	}

	mgr := partition.New()
	d := dispatch.NewDispatcher(g, mgr, cfg)
	if err := d.OfflineIndustry(equivalence); err != nil {
		return nil, fmt.Errorf("reachcompress: offline_industry: %w", err)
	}
	return d, nil
}

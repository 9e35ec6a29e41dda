package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/reachcompress/cache"
	"github.com/katalvlaran/reachcompress/internal/errs"
	"github.com/katalvlaran/reachcompress/pll"
	"github.com/katalvlaran/reachcompress/registry"
	"github.com/katalvlaran/reachcompress/telemetry"
)

var (
	queryInput       string
	queryEquivalence string
	queryCachePrefix string
)

var queryCmd = &cobra.Command{
	Use:   "query <u> <v>",
	Short: "Answer a single reachability query, preferring a cached whole-graph PLL index when available",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("reachcompress: parse u: %w", err)
		}
		v, err := strconv.ParseInt(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("reachcompress: parse v: %w", err)
		}

		ctx, span := telemetry.StartQuery(cmd.Context(), int32(u), int32(v))
		defer span.End()

		result, hit, err := answerQuery(ctx, int32(u), int32(v))
		if err != nil {
			return err
		}
		telemetry.RecordCacheOutcome(span, queryCachePrefix, hit)
		recordCacheOutcome(ctx, queryCachePrefix, "load", hit)

		fmt.Fprintf(cmd.OutOrStdout(), "%t\n", result)
		return nil
	},
}

// answerQuery loads the edge list once, tries a cached whole-graph PLL
// index sized to that graph's vertex count, and falls back to building a
// fresh dispatcher over the same already-loaded store on a cache miss.
func answerQuery(ctx context.Context, u, v int32) (result, hit bool, err error) {
	g, err := loadCSR(queryInput)
	if err != nil {
		return false, false, err
	}

	if queryCachePrefix != "" {
		idx, ok, loadErr := loadCachedPLLIndex(queryCachePrefix, int(g.NumNodes()))
		if loadErr != nil {
			return false, false, loadErr
		}
		if ok {
			return idx.Query(u, v), true, nil
		}
	}

	d, err := buildDispatcherFromStore(g, queryEquivalence)
	if err != nil {
		return false, false, err
	}
	return d.Reach(u, v), false, nil
}

// loadCachedPLLIndex loads a whole-graph PLL index previously saved by
// build --cache-prefix. A missing artefact, or a recorded vertex count
// that no longer matches expectedN, is a cache miss, not an error.
func loadCachedPLLIndex(prefix string, expectedN int) (*pll.Index, bool, error) {
	inPath := cache.PathFor(prefix, cache.SuffixPLLIn)
	outPath := cache.PathFor(prefix, cache.SuffixPLLOut)
	if _, err := os.Stat(inPath); os.IsNotExist(err) {
		return nil, false, nil
	}

	var labelsIn, labelsOut map[int32][]int32
	if err := cache.LoadFromFile(inPath, func(r *os.File) error {
		var err error
		labelsIn, err = cache.LoadPLLLabels(r, expectedN)
		return err
	}); err != nil {
		if errors.Is(err, errs.ErrCacheMismatch) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reachcompress: load %s: %w", inPath, err)
	}
	if err := cache.LoadFromFile(outPath, func(r *os.File) error {
		var err error
		labelsOut, err = cache.LoadPLLLabels(r, expectedN)
		return err
	}); err != nil {
		if errors.Is(err, errs.ErrCacheMismatch) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reachcompress: load %s: %w", outPath, err)
	}

	live := make(map[int32]bool, len(labelsIn)+len(labelsOut))
	for v := range labelsIn {
		live[v] = true
	}
	for v := range labelsOut {
		live[v] = true
	}
	return pll.FromLabels(labelsIn, labelsOut, live), true, nil
}

func recordCacheOutcome(ctx context.Context, path, op string, hit bool) {
	if cacheRepo == nil || path == "" {
		return
	}
	_ = cacheRepo.RecordCacheEvent(ctx, &registry.CacheEvent{Path: path, Operation: op, Hit: hit})
}

func init() {
	queryCmd.Flags().StringVar(&queryInput, "input", "", "edge-list file to build the graph from (required)")
	queryCmd.Flags().StringVar(&queryEquivalence, "equivalence", "", "optional equivalence-mapping file")
	queryCmd.Flags().StringVar(&queryCachePrefix, "cache-prefix", "", "cache-file prefix to try loading a whole-graph PLL index from before rebuilding")
	queryCmd.MarkFlagRequired("input")
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/reachcompress/cache"
	"github.com/katalvlaran/reachcompress/pll"
	"github.com/katalvlaran/reachcompress/registry"
	"github.com/katalvlaran/reachcompress/remotestore"
	"github.com/katalvlaran/reachcompress/telemetry"
)

var (
	buildInput       string
	buildEquivalence string
	buildCachePrefix string
	buildPushRemote  bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Partition a graph and build its per-partition reachability indices",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, span := telemetry.StartBuild(cmd.Context(), 0, 0)
		defer span.End()

		g, d, err := buildDispatcher(buildInput, buildEquivalence)
		if err != nil {
			recordBuildOutcome(ctx, buildInput, 0, "failed", err)
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "partitioned graph: %d vertices, %d edges, %d partitions\n",
			g.NumNodes(), g.NumEdges(), len(d.Manager().Partitions()))

		if buildCachePrefix != "" {
			idx, err := pll.Build(g)
			if err != nil {
				recordBuildOutcome(ctx, buildInput, int(g.NumNodes()), "failed", err)
				return fmt.Errorf("reachcompress: build pll index: %w", err)
			}
			inPath := cache.PathFor(buildCachePrefix, cache.SuffixPLLIn)
			outPath := cache.PathFor(buildCachePrefix, cache.SuffixPLLOut)
			if err := saveIndexFiles(inPath, outPath, idx); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "reachcompress: warning: %v\n", err)
			} else if buildPushRemote && store != nil {
				if err := remotestore.PushArtifact(ctx, store, inPath, inPath); err != nil {
					return fmt.Errorf("reachcompress: push %s: %w", inPath, err)
				}
				if err := remotestore.PushArtifact(ctx, store, outPath, outPath); err != nil {
					return fmt.Errorf("reachcompress: push %s: %w", outPath, err)
				}
			}
		}

		recordBuildOutcome(ctx, buildInput, int(g.NumNodes()), "succeeded", nil)
		return nil
	},
}

func saveIndexFiles(inPath, outPath string, idx *pll.Index) error {
	if err := cache.SaveToFile(inPath, func(w *os.File) error {
		return cache.SavePLLLabels(w, idx.IN, idx.Vertices())
	}); err != nil {
		return fmt.Errorf("reachcompress: save %s: %w", inPath, err)
	}
	if err := cache.SaveToFile(outPath, func(w *os.File) error {
		return cache.SavePLLLabels(w, idx.OUT, idx.Vertices())
	}); err != nil {
		return fmt.Errorf("reachcompress: save %s: %w", outPath, err)
	}
	return nil
}

// recordBuildOutcome persists one BuildEvent when a registry is configured;
// the registry is an optional ledger, so a nil buildRepo is not an error.
func recordBuildOutcome(ctx context.Context, name string, numVertices int, outcome string, cause error) {
	if buildRepo == nil {
		return
	}
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	_ = buildRepo.RecordBuild(ctx, &registry.BuildEvent{
		ArtifactName: name,
		NumVertices:  numVertices,
		Outcome:      outcome,
		ErrorMessage: msg,
	})
}

func init() {
	buildCmd.Flags().StringVar(&buildInput, "input", "", "edge-list file to build from (required)")
	buildCmd.Flags().StringVar(&buildEquivalence, "equivalence", "", "optional equivalence-mapping file")
	buildCmd.Flags().StringVar(&buildCachePrefix, "cache-prefix", "", "cache-file prefix to persist a whole-graph PLL index under (disabled if empty)")
	buildCmd.Flags().BoolVar(&buildPushRemote, "push-remote", false, "push built cache artefacts to the configured remote store")
	buildCmd.MarkFlagRequired("input")
}

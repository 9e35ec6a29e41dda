package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/reachcompress/bench"
	"github.com/katalvlaran/reachcompress/bibfs"
)

var (
	benchInput       string
	benchEquivalence string
	benchPairs       int
	benchSeed        int64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Check the dispatcher agrees with a plain BiBFS oracle over random query pairs",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, d, err := buildDispatcher(benchInput, benchEquivalence)
		if err != nil {
			return err
		}

		oracle := func(u, v bench.VID) bool { return bibfs.Reachable(g, u, v) }
		candidates := map[string]bench.Query{"dispatcher": d.Reach}

		pairs := bench.RandomPairs(benchPairs, g.MaxID()+1, benchSeed)
		report := bench.Run(pairs, oracle, candidates)

		fmt.Fprintf(cmd.OutOrStdout(), "checked %d pairs, %d disagreements\n", report.NumPairs, len(report.Disagreements))
		for _, dis := range report.Disagreements {
			fmt.Fprintln(cmd.OutOrStdout(), dis.String())
		}
		if !report.Agrees() {
			return fmt.Errorf("reachcompress: dispatcher disagreed with oracle on %d of %d pairs", len(report.Disagreements), report.NumPairs)
		}
		return nil
	},
}

func init() {
	benchCmd.Flags().StringVar(&benchInput, "input", "", "edge-list file to build the dispatcher from (required)")
	benchCmd.Flags().StringVar(&benchEquivalence, "equivalence", "", "optional equivalence-mapping file")
	benchCmd.Flags().IntVar(&benchPairs, "pairs", 1000, "number of random query pairs to check")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1, "PRNG seed for reproducible pair generation")
	benchCmd.MarkFlagRequired("input")
}

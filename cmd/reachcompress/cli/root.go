// Package cli wires the reachcompress command surface: build, query,
// bench, and export subcommands over a shared cobra root, following
// perf-analysis's cmd/cli/cmd split between rootCmd persistent setup and
// one file per subcommand.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/reachcompress/registry"
	"github.com/katalvlaran/reachcompress/remotestore"
	"github.com/katalvlaran/reachcompress/telemetry"
)

var (
	verbose    bool
	configFile string
	registryDB string

	cosBucket, cosRegion, cosSecretID, cosSecretKey string

	telemetryShutdown telemetry.ShutdownFunc
	buildRepo         registry.BuildEventRepository
	cacheRepo         registry.CacheEventRepository
	store             remotestore.Store
)

var rootCmd = &cobra.Command{
	Use:   "reachcompress",
	Short: "Compressed reachability queries over directed graphs and hypergraphs",
	Long: `reachcompress builds Pruned Landmark Labeling and partitioned
dispatcher indices over directed graphs, and a layered index over
hypergraphs, then answers reachability queries against them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			viper.SetConfigFile(configFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("reachcompress: read config %s: %w", configFile, err)
			}
		}
		viper.SetEnvPrefix("REACHCOMPRESS")
		viper.AutomaticEnv()

		shutdown, err := telemetry.Init(context.Background(), telemetry.LoadFromEnv())
		if err != nil {
			return fmt.Errorf("reachcompress: init telemetry: %w", err)
		}
		telemetryShutdown = shutdown

		if registryDB != "" {
			db, err := registry.NewSQLiteDB(registryDB)
			if err != nil {
				return fmt.Errorf("reachcompress: open registry db %s: %w", registryDB, err)
			}
			repo := registry.NewGormRepository(db)
			buildRepo, cacheRepo = repo, repo
		}

		if cosBucket != "" {
			s, err := remotestore.New(&remotestore.Config{
				Bucket: cosBucket, Region: cosRegion, SecretID: cosSecretID, SecretKey: cosSecretKey,
			})
			if err != nil {
				return fmt.Errorf("reachcompress: init remote store: %w", err)
			}
			store = s
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if telemetryShutdown != nil {
			return telemetryShutdown(context.Background())
		}
		return nil
	},
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a viper config file (yaml/json/toml)")
	rootCmd.PersistentFlags().StringVar(&registryDB, "registry-db", "", "path to a SQLite build/cache event ledger (disabled if empty)")
	rootCmd.PersistentFlags().StringVar(&cosBucket, "cos-bucket", "", "Tencent COS bucket for remote cache artefacts (disabled if empty)")
	rootCmd.PersistentFlags().StringVar(&cosRegion, "cos-region", "", "Tencent COS region")
	rootCmd.PersistentFlags().StringVar(&cosSecretID, "cos-secret-id", "", "Tencent COS secret ID")
	rootCmd.PersistentFlags().StringVar(&cosSecretKey, "cos-secret-key", "", "Tencent COS secret key")

	rootCmd.AddCommand(buildCmd, queryCmd, benchCmd, exportCmd)
}

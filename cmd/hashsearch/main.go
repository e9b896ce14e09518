// Hashsearch hashes keys with the simple string hash family, binary searches
// sorted key files, and reports how evenly hashes spread over buckets.
//
// Usage:
//
//	hashsearch hash --algo multiplicative abc listen silent
//	hashsearch search --corpus keys.txt --convention half-open alpha
//	hashsearch spread --buckets 97 --workers 4 words.txt
//	hashsearch verify --corpus keys.txt
//
// Configuration is read from defaults, then --config (YAML), then
// HASHSEARCH_* environment variables. Flags given on the command line win.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tamirms/hashsearch/internal/config"
	"github.com/tamirms/hashsearch/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hashsearch",
		Short: "Simple string hashes and interval binary search",
		Long: `hashsearch demonstrates the additive, multiplicative, XOR and rotating
string hashes (mod 1000000007) next to xxHash64, xxh3 and MurmurHash3, and
binary search over sorted key files with closed or half-open intervals.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")

	rootCmd.AddCommand(
		hashCmd(),
		searchCmd(),
		spreadCmd(),
		verifyCmd(),
		versionCmd(),
	)

	return rootCmd
}

// setup loads configuration, applies the global flag overrides and builds
// the logger for a subcommand.
func setup(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format, _ = cmd.Flags().GetString("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format).WithCommand(cmd.Name())
	return cfg, log, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hashsearch %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

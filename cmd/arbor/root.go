package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Arbor turns lightweight markup into a document tree",
	Long: `Arbor tokenizes a small subset of HTML-like markup and builds a document tree
of elements and text. Malformed input never fails: it is tolerated.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the configuration file (default: ./"+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides the config file)")
}

// loadRuntime reads the configuration, applies flag overrides and builds the parser.
func loadRuntime(cmd *cobra.Command) (*cli.Runtime, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if f := cmd.Flags().Lookup("trailing-text"); f != nil && f.Changed {
		cfg.Parser.TrailingText = f.Value.String()
	}
	if f := cmd.Flags().Lookup("unquoted"); f != nil && f.Changed {
		cfg.Parser.UnquotedValues, _ = cmd.Flags().GetBool("unquoted")
	}
	if f := cmd.Flags().Lookup("cache"); f != nil && f.Changed {
		cfg.Cache.Backend = f.Value.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return cli.NewRuntime(ctx, cfg, logging.New(level))
}

// addParserFlags registers the flags that change how markup is tokenized.
func addParserFlags(cmd *cobra.Command) {
	cmd.Flags().String("trailing-text", "", "Text after the last tag: flush or drop")
	cmd.Flags().Bool("unquoted", false, "Accept unquoted attribute values (a=b)")
	cmd.Flags().String("cache", "", "Document cache backend: none, memory or redis")
}

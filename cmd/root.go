// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"appledev/internal/config"
	"appledev/internal/extract"
	"appledev/internal/httputil"
	"appledev/internal/logging"
	"appledev/internal/provider"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagJSON     bool
	flagResolve  bool
	flagPick     bool
	flagLanguage string
	flagNoSubs   bool
	flagDebug    bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "appledev [url]",
	Short: "Extract videos and playlists from developer.apple.com",
	Long: `appledev resolves Apple Developer video pages, WWDC session and topic listings,
and news articles into stream formats, subtitles and metadata.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: loadConfig,
	RunE:              extractRun,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		newRenderer(os.Stderr).failure(err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output metadata as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagResolve, "resolve", "r", false, "Resolve pending playlist entries")
	rootCmd.PersistentFlags().BoolVarP(&flagPick, "pick", "p", false, "Pick one playlist entry with fzf")
	rootCmd.PersistentFlags().StringVarP(&flagLanguage, "language", "l", "", "Only keep subtitles in this language")
	rootCmd.PersistentFlags().BoolVarP(&flagNoSubs, "no-subs", "n", false, "Omit subtitles")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(extractorsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagLanguage != "" {
		cfg.SubsLanguage = flagLanguage
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.Init(os.Stderr, cfg.Debug)
	logging.Debug("config loaded", "base_url", cfg.BaseURL, "data_source", cfg.DataSource, "timeout", cfg.Timeout)
	return nil
}

// newProvider wires the page fetcher and HLS extractor from cfg.
func newProvider() *provider.AppleDeveloper {
	pages := httputil.NewPageFetcher(httputil.NewClient(cfg.RequestTimeout()), cfg.UserAgent)
	return provider.NewAppleDeveloper(cfg.BaseURL, cfg.DataSource, pages, extract.New(pages))
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kamusis/partner-cli/internal/config"
	"github.com/kamusis/partner-cli/internal/logger"
	"github.com/kamusis/partner-cli/internal/profile"
	"github.com/kamusis/partner-cli/internal/rank"
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:          "partner",
	Short:        "Partner CLI — rank business-partner profiles by keyword",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Partner searches a collection of business-partner profiles for one or
more keywords and lists the matches, most relevant first.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.partner/partner.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug information to stderr")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles what every search-running command needs.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	ranker *rank.Ranker
}

// newApp loads config, builds the logger and wires the ranker to the profile store.
func newApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w\nRun 'partner init' first.", err)
	}
	level := cfg.LogLevel
	if flagDebug {
		level = "debug"
	}
	log, err := logger.New(level, cfg.LogFormat, os.Stderr)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:    cfg,
		log:    log,
		ranker: rank.New(profile.NewStore(), rank.SubstringMatcher{}, log),
	}, nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kamusis/partner-cli/internal/config"
	"github.com/kamusis/partner-cli/internal/profile"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run pre-flight environment checks",
	Long: `Check that the config is valid and that the profile source can be loaded.
Run this command when a search unexpectedly finds nothing.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	return doctorWith(cmd.Context(), cmd.OutOrStdout(), flagConfig, profile.NewStore())
}

func doctorWith(ctx context.Context, out io.Writer, cfgPath string, store profile.Store) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr(out, "", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection(out, "partner doctor")
	fmt.Fprintln(out)

	// ── Check 1: config file ──────────────────────────────────────────────────
	fmt.Fprintln(out, "[ partner.yaml ]")
	if cfgPath == "" {
		p, err := config.ConfigPath()
		if err != nil {
			failD("cannot determine home directory: %v", err)
		}
		cfgPath = p
	}
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		printWarn(out, "", fmt.Sprintf("%s not found — using defaults (run 'partner init')", cfgPath))
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		failD("%v", err)
		return errors.New("some checks failed")
	}
	printOK(out, "", fmt.Sprintf("valid config — max %d keyword(s), log level %s", cfg.MaxKeywords, cfg.LogLevel))
	fmt.Fprintln(out)

	// ── Check 2: profile source loads ─────────────────────────────────────────
	fmt.Fprintln(out, "[ profile source ]")
	profiles, err := store.Load(ctx, cfg.Source)
	switch {
	case errors.Is(err, profile.ErrUnreadable):
		failD("cannot read %s: %v", cfg.Source, err)
	case errors.Is(err, profile.ErrMalformed):
		failD("cannot parse %s: %v", cfg.Source, err)
	case err != nil:
		failD("%v", err)
	case len(profiles) == 0:
		printWarn(out, "", fmt.Sprintf("%s contains no profiles — every search will be empty", cfg.Source))
	default:
		printOK(out, "", fmt.Sprintf("%s (%s) — %d profile(s)", cfg.Source, profile.FormatOf(cfg.Source), len(profiles)))
	}
	fmt.Fprintln(out)

	if !allOK {
		return errors.New("some checks failed")
	}
	printOK(out, "", "all checks passed")
	return nil
}

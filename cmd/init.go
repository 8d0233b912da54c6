package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/kamusis/partner-cli/internal/config"
	"github.com/spf13/cobra"
)

// sampleProfiles is written as Data.json by `partner init --sample`.
const sampleProfiles = `[
  {
    "name": "Anna de Vries",
    "role": "Developer",
    "location": "Amsterdam",
    "posts": "Loves Java and Amsterdam events",
    "contact": "anna@example.com"
  },
  {
    "name": "Bob Jansen",
    "role": "Manager",
    "location": "Utrecht",
    "posts": "No tech posts"
  }
]
`

var flagInitSample bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.partner with a default config",
	Long: `Initialize ~/.partner/.

Writes partner.yaml and an .env template when they are missing. Existing
files are never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitSample, "sample", false, "Also write a sample Data.json profile source")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	return initWith(cmd.OutOrStdout(), flagInitSample)
}

func initWith(out io.Writer, sample bool) error {
	// ── 1. Resolve ~/.partner directory ───────────────────────────────────────
	dir, err := config.PartnerDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	// ── 2. Create ~/.partner/ if it doesn't exist ─────────────────────────────
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK(out, "", fmt.Sprintf("Partner directory ready: %s", dir))

	// ── 3. Write partner.yaml if missing ──────────────────────────────────────
	cfg := config.DefaultConfig()
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := config.Save(cfgPath, cfg); err != nil {
			return err
		}
		printOK(out, "", fmt.Sprintf("Config written: %s", cfgPath))
	} else {
		printSkip(out, "", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	// ── 4. .env template ──────────────────────────────────────────────────────
	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}

	if !sample {
		return nil
	}

	// ── 5. Sample profiles ────────────────────────────────────────────────────
	dataPath, err := config.ExpandPath(cfg.Source)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dataPath); err == nil {
		printSkip(out, "", fmt.Sprintf("Profile source already exists: %s", dataPath))
		return nil
	}
	if err := os.WriteFile(dataPath, []byte(sampleProfiles), 0o644); err != nil {
		return fmt.Errorf("cannot write sample profiles %s: %w", dataPath, err)
	}
	printOK(out, "", fmt.Sprintf("Sample profiles written: %s", dataPath))
	return nil
}

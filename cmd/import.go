package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/kamusis/partner-cli/internal/profile"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <source> <dest.db>",
	Short: "Copy a JSON or YAML profile source into a SQLite database",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return importWith(cmd.Context(), cmd.OutOrStdout(), profile.NewStore(), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func importWith(ctx context.Context, out io.Writer, store profile.Store, src, dest string) error {
	if profile.FormatOf(dest) != profile.FormatSQLite {
		return fmt.Errorf("destination must be a .db, .sqlite or .sqlite3 file: %s", dest)
	}
	profiles, err := store.Load(ctx, src)
	if err != nil {
		return err
	}
	if err := profile.ImportSQLite(ctx, dest, profiles); err != nil {
		return err
	}
	printOK(out, "", fmt.Sprintf("imported %d profile(s) into %s", len(profiles), dest))
	return nil
}

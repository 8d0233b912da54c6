package cmd

import (
	"fmt"
	"io"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// All commands use these functions to ensure consistent icon usage and
// indentation throughout partner's CLI output.
//
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure
//   ⚠  warning
//   ○  skipped / not applicable
//   ~  neutral info / state change

// printSection prints a top-level section header, e.g. "=== Search ===".
func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
}

func printLine(w io.Writer, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", icon, msg)
	} else {
		fmt.Fprintf(w, "  %s  [%s] %s\n", icon, name, msg)
	}
}

// printOK prints a success line.
//   name = "" → "  ✓  msg"
//   name set  → "  ✓  [name] msg"
func printOK(w io.Writer, name, msg string) { printLine(w, "✓", name, msg) }

// printErr prints an error line.
func printErr(w io.Writer, name, msg string) { printLine(w, "✗", name, msg) }

// printWarn prints a warning line.
func printWarn(w io.Writer, name, msg string) { printLine(w, "⚠", name, msg) }

// printSkip prints a skipped / not-applicable line.
func printSkip(w io.Writer, name, msg string) { printLine(w, "○", name, msg) }

// printInfo prints a neutral informational / state-change line.
func printInfo(w io.Writer, name, msg string) { printLine(w, "~", name, msg) }

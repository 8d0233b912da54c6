package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagSearchSource      string
	flagSearchK           int
	flagSearchJSON        bool
	flagSearchMaxKeywords int
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword...]",
	Short: "Rank profiles by how often the keywords occur",
	Long: `Search counts case-insensitive occurrences of each keyword in every
profile's name, role, location and posts, and lists profiles with a
non-zero score, highest first.

Without arguments the keywords are read from standard input.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&flagSearchSource, "source", "", "Profile source (.json, .yaml or .db); defaults to config")
	searchCmd.Flags().IntVarP(&flagSearchK, "limit", "k", 0, "Number of results to show (0 = all)")
	searchCmd.Flags().BoolVar(&flagSearchJSON, "json", false, "Print results as JSON")
	searchCmd.Flags().IntVar(&flagSearchMaxKeywords, "max-keywords", 0, "Maximum number of keywords (0 = unlimited); defaults to config")
	rootCmd.AddCommand(searchCmd)
}

// searchOptions is the resolved form of the search flags.
type searchOptions struct {
	source      string
	limit       int
	json        bool
	maxKeywords int
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	opts := searchOptions{
		source:      a.cfg.Source,
		limit:       flagSearchK,
		json:        flagSearchJSON,
		maxKeywords: a.cfg.MaxKeywords,
	}
	if flagSearchSource != "" {
		opts.source = flagSearchSource
	}
	if cmd.Flags().Changed("max-keywords") {
		opts.maxKeywords = flagSearchMaxKeywords
	}

	return searchWith(cmd.Context(), a, opts, args, cmd.InOrStdin(), cmd.OutOrStdout())
}

func searchWith(ctx context.Context, a *app, opts searchOptions, args []string, in io.Reader, out io.Writer) error {
	keywords := parseKeywords(args)
	if len(args) == 0 {
		var err error
		keywords, err = promptKeywords(in, out, opts.maxKeywords)
		if err != nil {
			return err
		}
	}
	if err := checkKeywordLimit(keywords, opts.maxKeywords); err != nil {
		return err
	}

	results, loadErr := a.ranker.Search(ctx, opts.source, keywords)
	if opts.limit > 0 && len(results) > opts.limit {
		results = results[:opts.limit]
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(searchResponse{
			Query:   keywords,
			Results: toViews(results),
			Warning: loadWarning(loadErr),
		})
	}

	if loadErr != nil {
		printWarn(out, "", loadWarning(loadErr))
	}
	if len(results) == 0 {
		fmt.Fprintln(out, noResultsMsg)
		return nil
	}
	fmt.Fprintln(out, "\nSuitable business partners:")
	return writeResultsTable(out, results, false)
}

// promptKeywords asks for keywords on in and splits the reply on whitespace.
func promptKeywords(in io.Reader, out io.Writer, max int) ([]string, error) {
	switch {
	case max == 1:
		fmt.Fprint(out, "Enter 1 keyword: ")
	case max == 2:
		fmt.Fprint(out, "Enter 1 or 2 keywords (separated by spaces): ")
	case max > 2:
		fmt.Fprintf(out, "Enter 1 to %d keywords (separated by spaces): ", max)
	default:
		fmt.Fprint(out, "Enter keywords (separated by spaces): ")
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot read keywords: %w", err)
	}
	return strings.Fields(line), nil
}

// searchResponse is the JSON document produced by `search --json` and GET /search.
type searchResponse struct {
	Query   []string     `json:"query"`
	Results []resultView `json:"results"`
	Warning string       `json:"warning,omitempty"`
}

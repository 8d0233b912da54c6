package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kamusis/partner-cli/internal/profile"
	"github.com/kamusis/partner-cli/internal/rank"
)

const noResultsMsg = "No results found."

// resultView is the JSON shape of one ranked profile.
type resultView struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Location string `json:"location"`
	Photo    string `json:"photo,omitempty"`
	Contact  string `json:"contact,omitempty"`
	Score    int    `json:"score"`
}

func toViews(results []rank.Result) []resultView {
	out := make([]resultView, 0, len(results))
	for _, r := range results {
		p := r.Profile
		out = append(out, resultView{
			Name:     p.Name,
			Role:     p.Role,
			Location: p.Location,
			Photo:    p.Photo,
			Contact:  p.Contact,
			Score:    r.Score,
		})
	}
	return out
}

// parseKeywords splits every argument on whitespace, so both
// `partner search java amsterdam` and `partner search "java amsterdam"` work.
func parseKeywords(args []string) []string {
	return strings.Fields(strings.Join(args, " "))
}

// checkKeywordLimit rejects more than max keywords. max <= 0 means unlimited.
func checkKeywordLimit(keywords []string, max int) error {
	if max > 0 && len(keywords) > max {
		return fmt.Errorf("at most %d keywords allowed, got %d", max, len(keywords))
	}
	return nil
}

// loadWarning describes a load failure for display, or "" for nil.
func loadWarning(err error) string {
	if err == nil {
		return ""
	}
	var le *profile.LoadError
	if !errors.As(err, &le) {
		return err.Error()
	}
	switch {
	case errors.Is(err, profile.ErrUnreadable):
		return fmt.Sprintf("profile source %s could not be read", le.Source)
	case errors.Is(err, profile.ErrMalformed):
		return fmt.Sprintf("profile source %s is not a valid profile list", le.Source)
	default:
		return le.Error()
	}
}

// writeResultsTable renders results as aligned columns.
// extra adds the contact and photo columns shown by the terminal table.
func writeResultsTable(w io.Writer, results []rank.Result, extra bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if extra {
		fmt.Fprintln(tw, "  #\tNAME\tROLE\tLOCATION\tCONTACT\tPHOTO\tSCORE")
	} else {
		fmt.Fprintln(tw, "  #\tNAME\tROLE\tLOCATION\tSCORE")
	}
	for i, r := range results {
		p := r.Profile
		if extra {
			fmt.Fprintf(tw, "  %d.\t%s\t%s\t%s\t%s\t%s\t%d\n", i+1, p.Name, p.Role, p.Location, p.Contact, p.Photo, r.Score)
		} else {
			fmt.Fprintf(tw, "  %d.\t%s\t%s\t%s\t%d\n", i+1, p.Name, p.Role, p.Location, r.Score)
		}
	}
	return tw.Flush()
}

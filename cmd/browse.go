package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jroimartin/gocui"
	"github.com/spf13/cobra"
)

var flagBrowseSource string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Search profiles in an interactive terminal table",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&flagBrowseSource, "source", "", "Profile source; defaults to config")
	rootCmd.AddCommand(browseCmd)
}

const (
	viewInput   = "input"
	viewResults = "results"
	viewStatus  = "status"
)

// browser holds the terminal table state.
type browser struct {
	ctx         context.Context
	app         *app
	source      string
	maxKeywords int
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	b := &browser{
		ctx:         cmd.Context(),
		app:         a,
		source:      a.cfg.Source,
		maxKeywords: a.cfg.BrowseMaxKeywords,
	}
	if flagBrowseSource != "" {
		b.source = flagBrowseSource
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("cannot start terminal UI: %w", err)
	}
	defer g.Close()

	g.Cursor = true
	g.SetManagerFunc(b.layout)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quitBrowse); err != nil {
		return err
	}
	if err := g.SetKeybinding(viewInput, gocui.KeyEnter, gocui.ModNone, b.search); err != nil {
		return err
	}

	if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (b *browser) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxX < 20 || maxY < 10 {
		return fmt.Errorf("terminal window is too small")
	}

	if v, err := g.SetView(viewInput, 1, 1, maxX-2, 3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Editable = true
		v.Title = fmt.Sprintf("Keywords (max %d) — Enter to search, Ctrl-C to quit", b.maxKeywords)
		if b.maxKeywords <= 0 {
			v.Title = "Keywords — Enter to search, Ctrl-C to quit"
		}
		if _, err := g.SetCurrentView(viewInput); err != nil {
			return err
		}
	}

	if v, err := g.SetView(viewResults, 1, 4, maxX-2, maxY-5); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Suitable business partners"
	}

	if v, err := g.SetView(viewStatus, 1, maxY-4, maxX-2, maxY-2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		fmt.Fprintf(v, "source: %s", b.source)
	}
	return nil
}

func (b *browser) search(g *gocui.Gui, v *gocui.View) error {
	results, err := g.View(viewResults)
	if err != nil {
		return err
	}
	status, err := g.View(viewStatus)
	if err != nil {
		return err
	}
	status.Clear()

	keywords, err := browseKeywords(v.Buffer(), b.maxKeywords)
	if err != nil {
		fmt.Fprint(status, err.Error())
		return nil
	}

	found, loadErr := b.app.ranker.Search(b.ctx, b.source, keywords)
	results.Clear()
	if len(found) == 0 {
		fmt.Fprint(status, noResultsMsg)
	} else {
		if err := writeResultsTable(results, found, true); err != nil {
			return err
		}
		fmt.Fprintf(status, "%d result(s) for %s", len(found), strings.Join(keywords, " "))
	}
	if loadErr != nil {
		fmt.Fprintf(status, " (%s)", loadWarning(loadErr))
	}
	return nil
}

// browseKeywords validates the terminal input before any search runs.
func browseKeywords(input string, max int) ([]string, error) {
	keywords := strings.Fields(input)
	if len(keywords) == 0 {
		return nil, errors.New("enter at least one keyword")
	}
	if err := checkKeywordLimit(keywords, max); err != nil {
		return nil, err
	}
	return keywords, nil
}

func quitBrowse(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}

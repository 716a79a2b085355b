package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cegloff/mcp-diagram-tools/pkg/format"
)

// readOpts holds the command-line flags for the read command.
type readOpts struct {
	asJSON      bool // dump the full parse result as JSON
	interactive bool // browse elements in a TUI
}

// newReadCmd creates the read command for inspecting diagram files.
func newReadCmd() *cobra.Command {
	var opts readOpts

	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Read a diagram file and print its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the parse result as JSON")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse elements interactively")

	return cmd
}

func runRead(ctx context.Context, input string, opts *readOpts) error {
	logger := loggerFromContext(ctx)

	f, err := format.FromPath(input)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	logger.Debugf("Parsing %s as %s", input, f)

	res, err := newConverter(configFromContext(ctx)).Parse(f, data)
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	if opts.interactive {
		browser := newElementListModel(input, res.Document())
		_, err := tea.NewProgram(browser).Run()
		return err
	}

	printSummary(input, res)
	return nil
}

// printSummary prints a human-readable overview of a parse result.
func printSummary(input string, res *format.Result) {
	printInfo("%s (%s)", input, res.Format)
	printStats(res.Stats.Pages, res.Stats.Nodes, res.Stats.Edges)

	for _, page := range res.Pages {
		if page.Name != "" {
			printDetail("page %q: %d nodes, %d edges", page.Name, len(page.Nodes), len(page.Edges))
		}
	}

	if len(res.Stats.Tags) > 0 {
		tags := make([]string, 0, len(res.Stats.Tags))
		for tag := range res.Stats.Tags {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		printNewline()
		for _, tag := range tags {
			printKeyValue(tag, fmt.Sprintf("%d", res.Stats.Tags[tag]))
		}
	}

	if len(res.Text) > 0 {
		printNewline()
		printDetail("text:")
		for _, s := range res.Text {
			printDetail("  %s", s)
		}
	}
}

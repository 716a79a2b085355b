package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cegloff/mcp-diagram-tools/pkg/dotimport"
	"github.com/cegloff/mcp-diagram-tools/pkg/format"
)

// newDotCmd creates the dot command for importing Graphviz DOT graphs.
// Graphviz lays the graph out, and the result is written in the format
// inferred from the output extension.
func newDotCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "dot <input.dot> <output>",
		Short: "Import a Graphviz DOT graph as a diagram",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(cmd.Context(), args[0], args[1], name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "diagram name")

	return cmd
}

func runDot(ctx context.Context, input, output, name string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	to, err := format.FromPath(output)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	spin := newSpinner(ctx, fmt.Sprintf("Laying out %s", input))
	spin.Start()
	doc, err := dotimport.FromDOT(ctx, src)
	if err != nil {
		spin.StopWithError(err.Error())
		return err
	}
	spin.Stop()
	if name != "" {
		doc.Name = name
	}
	logger.Debugf("Laid out %d nodes, %d edges", len(doc.Nodes), len(doc.Edges))

	data, err := newConverter(configFromContext(ctx)).Generate(to, doc)
	if err != nil {
		return err
	}

	w, err := openOutput(output)
	if err != nil {
		return err
	}
	defer w.Close()
	if _, err := w.Write(data); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Imported %s", input))
	printFile(output)
	printStats(1, len(doc.Nodes), len(doc.Edges))
	return nil
}

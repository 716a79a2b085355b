package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cegloff/mcp-diagram-tools/pkg/config"
	"github.com/cegloff/mcp-diagram-tools/pkg/convert"
	"github.com/cegloff/mcp-diagram-tools/pkg/format"
	"github.com/cegloff/mcp-diagram-tools/pkg/format/drawio"
	"github.com/cegloff/mcp-diagram-tools/pkg/format/excalidraw"
	"github.com/cegloff/mcp-diagram-tools/pkg/format/svg"
)

// newConverter builds a converter whose generators honor the loaded
// configuration.
func newConverter(cfg config.Config) *convert.Converter {
	opts := []convert.Option{
		convert.WithGenerator(format.DrawIO, drawio.NewGenerator(
			drawio.WithPageName(cfg.DrawIO.PageName),
			drawio.WithPageSize(cfg.DrawIO.PageWidth, cfg.DrawIO.PageHeight),
		)),
		convert.WithGenerator(format.SVG, svg.NewGenerator(
			svg.WithCanvasSize(cfg.SVG.Width, cfg.SVG.Height),
		)),
	}
	if cfg.Excalidraw.Seed != 0 {
		opts = append(opts, convert.WithGenerator(format.Excalidraw,
			excalidraw.NewGenerator(excalidraw.WithSeed(cfg.Excalidraw.Seed))))
	}
	return convert.New(opts...)
}

// newConvertCmd creates the convert command for translating a diagram
// from one format to another. Formats are inferred from the file
// extensions.
func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a diagram between formats",
		Long: `Convert a diagram file to another format. Source and target formats
are inferred from the file extensions.

Supported conversions:
  .drawio <-> .excalidraw  (structure conversion)
  .drawio/.excalidraw -> .svg  (vector export)`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), args[0], args[1])
		},
	}
}

func runConvert(ctx context.Context, input, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	from, err := format.FromPath(input)
	if err != nil {
		return err
	}
	to, err := format.FromPath(output)
	if err != nil {
		return err
	}
	logger.Debugf("Converting %s -> %s", from, to)

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	spin := newSpinner(ctx, fmt.Sprintf("Converting %s", input))
	spin.Start()
	out, err := newConverter(configFromContext(ctx)).Convert(data, from, to)
	if err != nil {
		spin.StopWithError(err.Error())
		return err
	}
	spin.Stop()

	w, err := openOutput(output)
	if err != nil {
		return err
	}
	defer w.Close()
	if _, err := w.Write(out); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Converted %s", input))
	printFile(output)
	return nil
}

package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cegloff/mcp-diagram-tools/pkg/buildinfo"
	"github.com/cegloff/mcp-diagram-tools/pkg/config"
)

// configKey is the context key for the loaded configuration.
const configKey ctxKey = 1

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

// Execute runs the diagram-tools CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (read, create,
// convert, dot), configures logging based on the --verbose flag, loads the
// optional TOML configuration, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger and configuration are attached to the context and accessible to
// all commands via loggerFromContext and configFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "diagram-tools",
		Short:        "Read, create, and convert diagram files",
		Long:         `diagram-tools works with draw.io, Excalidraw, and SVG diagram files: it reads their structure, creates new diagrams from JSON definitions, converts between formats, and imports Graphviz DOT graphs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML configuration file")

	root.AddCommand(newReadCmd())
	root.AddCommand(newCreateCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// Package cli implements the mazegrid command-line interface.
//
// # Commands
//
//   - plant: generate a maze, print it, optionally solve it and export a PNG
//   - algorithms: list the available generation algorithms
//
// # Configuration
//
// Settings resolve in order: built-in defaults, the --config TOML file,
// --env-file and MAZEGRID_* environment variables, then flags set on the
// command line.
//
// # Logging
//
// Logs go to stderr at the configured level; --verbose (-v) forces debug.
// The logger travels through context.Context to every command.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazegrid/internal/config"
)

const appName = "mazegrid"

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the build information shown by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootOpts holds the persistent flags shared by every command.
type rootOpts struct {
	verbose    bool
	configPath string
	envFile    string
	cfg        config.Config
}

// NewRootCommand builds the command tree. Output goes to cmd.OutOrStdout,
// logs to cmd.ErrOrStderr.
func NewRootCommand() *cobra.Command {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:          appName,
		Short:        "mazegrid plants and solves mazes on rectangular grids",
		Long:         `mazegrid carves perfect mazes into masked rectangular grids with Aldous-Broder, Wilson, Sidewinder or Binary Tree and labels them with frontier or Dijkstra distances.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath, opts.envFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			level := cfg.Level()
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			if opts.configPath != "" {
				logger.Debug("config loaded", "path", opts.configPath)
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML configuration file")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file with MAZEGRID_* overrides")

	root.AddCommand(newPlantCmd(opts))
	root.AddCommand(newAlgorithmsCmd())

	return root
}

// Execute runs the CLI with args, writing results to out and logs to errOut.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

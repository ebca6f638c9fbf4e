package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/citeview/internal/core/config"
	"github.com/colonyops/citeview/internal/core/logging"
	"github.com/colonyops/citeview/internal/core/styles"
	"github.com/colonyops/citeview/internal/printer"
	"github.com/colonyops/citeview/internal/tui"
	"github.com/colonyops/citeview/pkg/logutils"
)

// NewApp builds the root command with every subcommand registered. The
// Before hook installs the logger, loads the config and applies the theme.
func NewApp(flags *Flags, build tui.BuildInfo) *cli.Command {
	var logCloser func()

	app := &cli.Command{
		Name:      "citeview",
		Usage:     "Read a legal brief with its citation verification results",
		UsageText: "citeview [global options] command [command options]",
		Description: `Citeview renders a legal brief in the terminal and tags every case-law
citation with the outcome of its verification.

Run 'citeview' with no arguments to open the interactive viewer on the
built-in sample brief, or pass --brief to open your own.
Run 'citeview render' to print the annotated brief without the viewer.`,
		Version:               versionString(build),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CITEVIEW_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("CITEVIEW_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CITEVIEW_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			flags.Brief.Flag(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			styles.SetTheme(cfg.Palette())

			return printer.NewContext(ctx, printer.New(c.Root().Writer)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	viewCmd := NewViewCmd(flags, build)

	app = viewCmd.Register(app)
	app = NewRenderCmd(flags).Register(app)
	app = NewCitationsCmd(flags).Register(app)
	app = NewInspectCmd(flags).Register(app)
	app = NewValidateCmd(flags).Register(app)

	// Register view flags on root command
	app.Flags = append(app.Flags, viewCmd.Flags()...)

	// Set the viewer as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'citeview --help' for usage", c.Args().First())
		}
		return viewCmd.Run(ctx, c)
	}

	return app
}

func versionString(build tui.BuildInfo) string {
	short := build.Commit
	if len(short) > 7 {
		short = short[:7]
	}

	return fmt.Sprintf("%s (%s) %s", build.Version, short, build.Date)
}

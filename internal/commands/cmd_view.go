package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/citeview/internal/core/annotate"
	"github.com/colonyops/citeview/internal/printer"
	"github.com/colonyops/citeview/internal/tui"
	"github.com/colonyops/citeview/pkg/executil"
)

type ViewCmd struct {
	flags *Flags
	build tui.BuildInfo
}

// NewViewCmd creates a new view command
func NewViewCmd(flags *Flags, build tui.BuildInfo) *ViewCmd {
	return &ViewCmd{flags: flags, build: build}
}

// Flags returns the view flags for registration on the root command, so the
// bare binary accepts them too.
func (cmd *ViewCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "watch",
			Aliases:     []string{"w"},
			Usage:       "reload the brief file when it changes",
			Sources:     cli.EnvVars("CITEVIEW_WATCH"),
			Destination: &cmd.flags.Watch,
		},
	}
}

// Register adds the view command to the application
func (cmd *ViewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "view",
		Usage:     "Open the interactive brief viewer",
		UsageText: "citeview view [--brief FILE] [--watch]",
		Description: `Renders the brief with inline citation tags and a detail pane.

Arrow keys (or j/k) move between verified citations, Tab moves keyboard focus,
Enter opens the focused citation, / searches and ? lists every binding.`,
		Action: cmd.run,
	})

	return app
}

// Run executes the viewer. Exported for use as default command.
func (cmd *ViewCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *ViewCmd) run(ctx context.Context, c *cli.Command) error {
	ctx, b, err := cmd.flags.LoadBrief(ctx)
	if err != nil {
		return err
	}

	// notices are printed after the viewer releases the terminal
	p, notices := printer.NewDeferred()
	defer func() {
		if err := notices.Flush(c.Root().ErrWriter); err != nil {
			log.Error().Err(err).Msg("failed to print notices")
		}
	}()

	watch := cmd.flags.Watch || cmd.flags.Config.Watch
	path := cmd.flags.BriefPath()
	if watch && path == "" {
		log.Warn().Ctx(ctx).Msg("watch requested but the brief is not a file, reload disabled")
		p.Warnf("--watch ignored: the brief is not read from a file")
	}

	if n := len(annotate.Annotate(b).Warnings()); n > 0 {
		p.Infof("%s in brief, run 'citeview validate' for details", pluralize(n, "warning"))
	}

	m := tui.New(tui.Options{
		Brief:     b,
		BriefPath: path,
		Source:    cmd.flags.BriefSource(),
		Config:    cmd.flags.Config,
		Watch:     watch,
		Piper:     executil.ShellPiper{},
		Build:     cmd.build,
	})
	defer func() {
		if err := m.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close brief watcher")
		}
	}()

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}

package commands

import (
	"context"
	"errors"
	"fmt"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	corebrief "github.com/colonyops/citeview/internal/core/brief"
	"github.com/colonyops/citeview/internal/core/logging"
	"github.com/colonyops/citeview/internal/printer"
	briefview "github.com/colonyops/citeview/internal/tui/views/brief"
)

type InspectCmd struct {
	flags *Flags

	// flags
	id    string
	width int
}

// NewInspectCmd creates a new inspect command
func NewInspectCmd(flags *Flags) *InspectCmd {
	return &InspectCmd{flags: flags}
}

// Register adds the inspect command to the application
func (cmd *InspectCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "inspect",
		Usage:     "Show the details of one citation",
		UsageText: "citeview inspect [ID] [--width N]",
		Description: `Prompts for a verified citation and prints its detail view.

Pass a citation id (or --id) to skip the prompt. Only citations with a
verification result can be inspected.`,
		ShellComplete: CitationIDCompleter(cmd.flags),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "id",
				Usage:       "citation id to inspect",
				Destination: &cmd.id,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "wrap width in cells",
				Value:       defaultRenderWidth,
				Destination: &cmd.width,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *InspectCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	ctx, b, err := cmd.flags.LoadBrief(ctx)
	if err != nil {
		return err
	}

	navigable := b.Navigable()
	if len(navigable) == 0 {
		p.Infof("No verified citations to inspect")
		return nil
	}

	id := cmd.id
	if id == "" {
		id = c.Args().First()
	}
	if id == "" {
		id, err = pickCitation(navigable)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("select citation: %w", err)
		}
	}

	sel, err := SelectionFor(b, id)
	if err != nil {
		return err
	}

	log.Debug().Ctx(logging.WithCitationID(ctx, id)).Msg("citation inspected")

	view := briefview.NewDetailView(sel, true)
	_, err = lipgloss.Fprintln(c.Root().Writer, view.Render(cmd.width))
	return err
}

// SelectionFor returns the selection for a navigable citation id.
func SelectionFor(b *corebrief.Brief, id string) (briefview.Selection, error) {
	cit, ok := b.CitationByID(id)
	if !ok {
		return briefview.Selection{}, fmt.Errorf("citation %q not found", id)
	}
	r := b.ResultFor(id)
	if r == nil {
		return briefview.Selection{}, fmt.Errorf("citation %q has no verification result", id)
	}
	return briefview.Selection{Citation: cit, Result: *r}, nil
}

func pickCitation(navigable []corebrief.Citation) (string, error) {
	options := make([]huh.Option[string], 0, len(navigable))
	for _, c := range navigable {
		options = append(options, huh.NewOption(c.Text, c.ID))
	}

	var id string
	err := huh.NewSelect[string]().
		Title("Citation").
		Description("Choose a verified citation to inspect").
		Options(options...).
		Value(&id).
		Run()
	return id, err
}

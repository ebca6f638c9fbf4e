package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/citeview/internal/core/annotate"
	corebrief "github.com/colonyops/citeview/internal/core/brief"
	"github.com/colonyops/citeview/internal/core/config"
	"github.com/colonyops/citeview/internal/core/logging"
	briefview "github.com/colonyops/citeview/internal/tui/views/brief"
)

const defaultRenderWidth = 80

type RenderCmd struct {
	flags *Flags

	// flags
	width      int
	plain      bool
	accessible bool
}

// NewRenderCmd creates a new render command
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Print the annotated brief",
		UsageText: "citeview render [--width N] [--plain] [--accessible]",
		Description: `Prints the brief with citation tags in place, without starting the viewer.

--accessible prints each tag as its accessible description (role, pressed
state and label) instead of drawing it.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "width",
				Usage:       "wrap width in cells (defaults to the terminal width, or 80)",
				Destination: &cmd.width,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "strip colours and styles",
				Destination: &cmd.plain,
			},
			&cli.BoolFlag{
				Name:        "accessible",
				Usage:       "print tags as accessible descriptions",
				Destination: &cmd.accessible,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RenderCmd) run(ctx context.Context, c *cli.Command) error {
	_, b, err := cmd.flags.LoadBrief(ctx)
	if err != nil {
		return err
	}

	width := cmd.width
	if width <= 0 {
		width = terminalWidth(c.Root().Writer)
	}

	out := RenderBrief(b, cmd.flags.Config, width, cmd.accessible)
	if cmd.plain {
		out = ansi.Strip(out)
	}

	if _, err := lipgloss.Fprintln(c.Root().Writer, out); err != nil {
		return fmt.Errorf("write brief: %w", err)
	}
	return nil
}

// RenderBrief lays out b at width with nothing selected or focused.
func RenderBrief(b *corebrief.Brief, cfg *config.Config, width int, accessible bool) string {
	doc := annotate.Annotate(b)
	doc.LogWarnings(logging.Component("render"))

	factory := briefview.TagFactory{
		Brief:      b,
		Classifier: cfg.CitationClassifier(),
		Unverified: cfg.Unverified,
	}

	layout := briefview.BuildLayout(briefview.LayoutInput{
		Title:      b.Title,
		Root:       doc.Root,
		Width:      width,
		Tag:        factory.Tag,
		Focus:      briefview.NoFocus,
		Accessible: accessible,
	})
	return layout.Content()
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultRenderWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultRenderWidth
	}
	return width
}

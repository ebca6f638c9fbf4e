package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	corebrief "github.com/colonyops/citeview/internal/core/brief"
	"github.com/colonyops/citeview/internal/core/citation"
	"github.com/colonyops/citeview/pkg/iojson"
)

type CitationsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewCitationsCmd creates a new citations command
func NewCitationsCmd(flags *Flags) *CitationsCmd {
	return &CitationsCmd{flags: flags}
}

// Register adds the citations command to the application
func (cmd *CitationsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "citations",
		Aliases:   []string{"ls"},
		Usage:     "List the citations of the brief",
		UsageText: "citeview citations [--json]",
		Description: `Displays a table of citations with their classification and verification status.

Citations without a verification result are listed with an empty status and
are not navigable in the viewer.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as a JSON array",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// CitationInfo is the JSON output format for citeview citations --json.
type CitationInfo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CaseName  string `json:"caseName"`
	Reporter  string `json:"reporter"`
	Court     string `json:"court,omitempty"`
	Category  string `json:"category,omitempty"`
	Strength  string `json:"strength,omitempty"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	Navigable bool   `json:"navigable"`
	Status    string `json:"status,omitempty"`
	Severity  string `json:"severity,omitempty"`
}

// BuildCitationInfo lists every citation of b in brief order.
func BuildCitationInfo(b *corebrief.Brief, classifier citation.Classifier) []CitationInfo {
	infos := make([]CitationInfo, 0, len(b.Citations))
	for _, c := range b.Citations {
		meta := classifier.Classify(c)
		info := CitationInfo{
			ID:       c.ID,
			Text:     c.Text,
			CaseName: c.CaseName,
			Reporter: c.FormatReporter(),
			Court:    meta.Court,
			Category: meta.Category,
			Strength: meta.Strength,
			Color:    string(meta.Color),
			Icon:     meta.Icon,
		}
		if r := b.ResultFor(c.ID); r != nil {
			info.Navigable = true
			info.Status = r.Status
			info.Severity = string(r.Severity)
		}
		infos = append(infos, info)
	}
	return infos
}

func (cmd *CitationsCmd) run(ctx context.Context, c *cli.Command) error {
	_, b, err := cmd.flags.LoadBrief(ctx)
	if err != nil {
		return err
	}

	infos := BuildCitationInfo(b, cmd.flags.Config.CitationClassifier())
	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, infos)
	}

	if len(infos) == 0 {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, "No citations found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCASE\tREPORTER\tCOURT\tCLASS\tSTATUS")

	for _, info := range infos {
		status := info.Status
		if status == "" {
			status = "-"
		}
		class := info.Color
		if badge := (citation.Metadata{Category: info.Category, Strength: info.Strength}).Badge(); badge != "" {
			class += " / " + badge
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", info.ID, info.CaseName, info.Reporter, dash(info.Court), class, status)
	}

	return w.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

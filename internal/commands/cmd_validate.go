package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/citeview/internal/core/annotate"
	corebrief "github.com/colonyops/citeview/internal/core/brief"
	"github.com/colonyops/citeview/internal/core/config"
	"github.com/colonyops/citeview/internal/printer"
	"github.com/colonyops/citeview/pkg/iojson"
)

type ValidateCmd struct {
	flags  *Flags
	format string
}

// NewValidateCmd creates a new validate command.
func NewValidateCmd(flags *Flags) *ValidateCmd {
	return &ValidateCmd{flags: flags}
}

// Register adds the validate command to the application.
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "validate",
		Usage:       "Validate the brief and configuration",
		UsageText:   "citeview validate [options]",
		Description: "Checks the brief for unresolved markers and citations without results, and the configuration for unreadable files and missing commands.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

// ValidationReport collects the outcome of every check.
type ValidationReport struct {
	Valid          bool                          `json:"valid"`
	Errors         []string                      `json:"errors,omitempty"`
	BriefWarnings  []corebrief.ValidationWarning `json:"briefWarnings,omitempty"`
	ConfigWarnings []config.ValidationWarning    `json:"configWarnings,omitempty"`
}

// Validate runs the brief and configuration checks. A brief that fails to
// load is reported as an error rather than returned.
func (cmd *ValidateCmd) Validate(ctx context.Context) ValidationReport {
	var report ValidationReport

	if _, b, err := cmd.flags.LoadBrief(ctx); err != nil {
		report.Errors = append(report.Errors, err.Error())
	} else {
		report.BriefWarnings = annotate.Annotate(b).Warnings()
	}

	if err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				report.Errors = append(report.Errors, "config: "+line)
			}
		}
	}
	report.ConfigWarnings = cmd.flags.Config.Warnings()

	report.Valid = len(report.Errors) == 0
	return report
}

func (cmd *ValidateCmd) run(ctx context.Context, c *cli.Command) error {
	report := cmd.Validate(ctx)

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, report); err != nil {
			return err
		}
	} else {
		cmd.outputText(printer.Ctx(ctx), report)
	}

	if !report.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ValidateCmd) outputText(p *printer.Printer, report ValidationReport) {
	p.Section("Brief: " + cmd.flags.BriefSource())
	for _, w := range report.BriefWarnings {
		p.Warnf("%s", w.String())
	}

	p.Section("Config: " + cmd.flags.ConfigPath)
	for _, w := range report.ConfigWarnings {
		p.Infof("%s: %s", w.Category, w.Message)
		if w.Item != "" {
			p.Printf("  Item: %s", w.Item)
		}
	}

	for _, e := range report.Errors {
		p.Errorf("%s", e)
	}

	p.Printf("")
	if report.Valid {
		p.Successf("Brief and configuration are valid (%s)", pluralize(len(report.BriefWarnings)+len(report.ConfigWarnings), "warning"))
		return
	}
	p.Errorf("%s found", pluralize(len(report.Errors), "error"))
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

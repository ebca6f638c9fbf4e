package brief

import (
	"regexp"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/citeview/internal/core/styles"
)

const (
	DetailTitle       = "Citation Details"
	DetailPlaceholder = "Click on a citation to see details."
	DetailCloseLabel  = "Close citation details panel"
)

// Section labels.
const (
	LabelCitation         = "Citation"
	LabelCaseName         = "Case Name"
	LabelReporter         = "Reporter"
	LabelStatus           = "Status"
	LabelMessage          = "Message"
	LabelExpectedQuote    = "Quote in Brief"
	LabelActualQuote      = "Actual Quote from Source"
	LabelTreatmentHistory = "Treatment History"
)

// Section is one labeled block of the detail view.
type Section struct {
	Label string
	Body  string
	Bold  bool // emphasised body (status)
	Quote bool // block quotation
}

// DetailView renders the current selection. The zero value is the idle
// placeholder.
type DetailView struct {
	selection *Selection
}

// NewDetailView returns the view for the selection, or the placeholder view
// when ok is false.
func NewDetailView(sel Selection, ok bool) DetailView {
	if !ok {
		return DetailView{}
	}
	return DetailView{selection: &sel}
}

// IsEmpty reports whether the placeholder is shown.
func (d DetailView) IsEmpty() bool {
	return d.selection == nil
}

// Sections returns the labeled blocks in display order. Optional detail
// blocks appear only when present.
func (d DetailView) Sections() []Section {
	if d.selection == nil {
		return nil
	}
	c, r := d.selection.Citation, d.selection.Result

	sections := []Section{
		{Label: LabelCitation, Body: c.Text},
		{Label: LabelCaseName, Body: c.CaseName},
		{Label: LabelReporter, Body: c.FormatReporter()},
		{Label: LabelStatus, Body: r.Status, Bold: true},
		{Label: LabelMessage, Body: r.Message},
	}

	if r.Details != nil {
		if r.Details.ExpectedQuote != "" {
			sections = append(sections, Section{Label: LabelExpectedQuote, Body: r.Details.ExpectedQuote, Quote: true})
		}
		if r.Details.ActualQuote != "" {
			sections = append(sections, Section{Label: LabelActualQuote, Body: r.Details.ActualQuote, Quote: true})
		}
		if r.Details.TreatmentHistory != "" {
			sections = append(sections, Section{Label: LabelTreatmentHistory, Body: r.Details.TreatmentHistory})
		}
	}

	return sections
}

// PlainText renders the view without styling.
func (d DetailView) PlainText() string {
	if d.selection == nil {
		return DetailPlaceholder
	}

	var b strings.Builder
	b.WriteString(DetailTitle)
	b.WriteString("\n")
	for _, s := range d.Sections() {
		b.WriteString("\n")
		b.WriteString(s.Label)
		b.WriteString("\n")
		if s.Quote {
			b.WriteString("  \"")
			b.WriteString(s.Body)
			b.WriteString("\"\n")
			continue
		}
		b.WriteString("  ")
		b.WriteString(s.Body)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Markdown renders the view as CommonMark for glamour.
func (d DetailView) Markdown() string {
	if d.selection == nil {
		return "*" + DetailPlaceholder + "*"
	}

	var b strings.Builder
	for _, s := range d.Sections() {
		b.WriteString("### ")
		b.WriteString(s.Label)
		b.WriteString("\n\n")
		body := escapeMarkdown(s.Body)
		switch {
		case s.Quote:
			for i, line := range strings.Split(body, "\n") {
				if i > 0 {
					b.WriteString("\n")
				}
				b.WriteString(strings.TrimRight("> "+line, " "))
			}
		case s.Bold && body != "":
			b.WriteString("**")
			b.WriteString(body)
			b.WriteString("**")
		default:
			b.WriteString(body)
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

// Render renders the view with glamour at the given width. It falls back to
// PlainText when glamour fails.
func (d DetailView) Render(width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing plain detail")
		return d.PlainText()
	}

	rendered, err := renderer.Render(d.Markdown())
	if err != nil {
		log.Debug().Err(err).Msg("failed to render detail markdown, showing plain detail")
		return d.PlainText()
	}

	return trimBlankLines(rendered)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	"#", `\#`,
)

var (
	orderedMarkerRe = regexp.MustCompile(`^(\d+)([.)])`)
	blockMarkerRe   = regexp.MustCompile(`^([-+>=~|])`)
)

// escapeMarkdown escapes inline syntax everywhere and block syntax at the
// start of each line, so a body always renders as its literal text.
func escapeMarkdown(s string) string {
	lines := strings.Split(markdownEscaper.Replace(s), "\n")
	for i, line := range lines {
		line = strings.TrimLeft(line, " \t")
		line = orderedMarkerRe.ReplaceAllString(line, `$1\$2`)
		line = blockMarkerRe.ReplaceAllString(line, `\$1`)
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func trimBlankLines(content string) string {
	lines := strings.Split(content, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(ansi.Strip(lines[start])) == "" {
		start++
	}
	for end > start && strings.TrimSpace(ansi.Strip(lines[end-1])) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// DetailPane is the scrollable detail panel shown while a citation is
// selected.
type DetailPane struct {
	view     DetailView
	viewport viewport.Model
	width    int
	height   int
}

// NewDetailPane renders view into a pane of the given outer size.
func NewDetailPane(view DetailView, width, height int) DetailPane {
	p := DetailPane{view: view}
	p.SetSize(width, height)
	return p
}

// detail pane chrome: border (2) + padding (2) horizontally; border (2),
// title (1), blank (1) and help (1) vertically.
const (
	detailChromeW = 4
	detailChromeH = 5
)

// SetSize resizes the pane and re-renders its content.
func (p *DetailPane) SetSize(width, height int) {
	p.width = width
	p.height = height

	innerW := max(width-detailChromeW, 10)
	innerH := max(height-detailChromeH, 1)

	p.viewport = viewport.New(viewport.WithWidth(innerW), viewport.WithHeight(innerH))
	p.viewport.SetContent(p.view.Render(innerW))
}

// ScrollUp scrolls the pane up.
func (p *DetailPane) ScrollUp() {
	p.viewport.ScrollUp(1)
}

// ScrollDown scrolls the pane down.
func (p *DetailPane) ScrollDown() {
	p.viewport.ScrollDown(1)
}

// View renders the pane with its border and close affordance.
func (p DetailPane) View() string {
	title := styles.DetailTitleStyle.Render(DetailTitle)
	if p.viewport.TotalLineCount() > p.viewport.VisibleLineCount() {
		title += styles.ScrollIndicator.Render(" ↓")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		p.viewport.View(),
		styles.DetailCloseStyle.Render("[esc] "+DetailCloseLabel),
	)

	return styles.DetailBorderStyle.
		Width(p.width).
		Height(p.height).
		Render(content)
}

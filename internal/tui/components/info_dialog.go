package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/citeview/internal/core/styles"
)

const (
	infoMaxHeight = 30
	infoMargin    = 4
	infoMinWidth  = 40
	// border, padding, title, divider and footer with its margin
	infoChrome = 8
)

// InfoStatus annotates an info row.
type InfoStatus int

const (
	InfoStatusNone InfoStatus = iota
	InfoStatusPass
	InfoStatusWarn
	InfoStatusFail
)

// InfoItem is a single labeled row.
type InfoItem struct {
	Label  string
	Value  string
	Status InfoStatus
}

// InfoSection groups rows under a title. A section without items shows
// Empty instead.
type InfoSection struct {
	Title string
	Items []InfoItem
	Empty string
}

// InfoDialog is a scrollable modal of labeled rows.
type InfoDialog struct {
	title    string
	sections []InfoSection
	viewport viewport.Model
	width    int
	height   int
}

// NewInfoDialog creates a dialog sized for a width x height screen.
func NewInfoDialog(title string, sections []InfoSection, width, height int) *InfoDialog {
	d := &InfoDialog{title: title, sections: sections, width: width, height: height}

	w, h := d.modalSize()
	d.viewport = viewport.New(
		viewport.WithWidth(max(w-4, 1)),
		viewport.WithHeight(max(h-infoChrome, 1)),
	)
	d.viewport.SetContent(d.renderContent(w - 4))
	return d
}

func (d *InfoDialog) modalSize() (int, int) {
	w := min(max(d.width*2/3, infoMinWidth), d.width-infoMargin)
	h := min(d.height-infoMargin, infoMaxHeight)
	return max(w, 10), max(h, infoChrome+1)
}

func (d *InfoDialog) renderContent(width int) string {
	labelW := 0
	for _, s := range d.sections {
		for _, item := range s.Items {
			labelW = max(labelW, lipgloss.Width(item.Label))
		}
	}

	var lines []string
	for i, s := range d.sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, styles.HelpDialogSectionStyle.Render(s.Title))
		if len(s.Items) == 0 && s.Empty != "" {
			lines = append(lines, styles.TextMutedStyle.Render(s.Empty))
		}
		for _, item := range s.Items {
			row := styles.TextForegroundBoldStyle.Render(PadRight(item.Label, labelW+2)) +
				styles.TextMutedStyle.Render(item.Value)
			if icon := statusIcon(item.Status); icon != "" {
				row = icon + " " + row
			}
			lines = append(lines, lipgloss.NewStyle().Width(width).Render(row))
		}
	}
	return strings.Join(lines, "\n")
}

func statusIcon(s InfoStatus) string {
	switch s {
	case InfoStatusPass:
		return styles.TextSuccessStyle.Render(styles.IconSeverityOK)
	case InfoStatusWarn:
		return styles.TextWarningStyle.Render(styles.IconSeverityWarning)
	case InfoStatusFail:
		return styles.TextErrorStyle.Render(styles.IconSeverityCritical)
	default:
		return ""
	}
}

func (d *InfoDialog) ScrollUp() {
	d.viewport.ScrollUp(1)
}

func (d *InfoDialog) ScrollDown() {
	d.viewport.ScrollDown(1)
}

// View renders the modal.
func (d *InfoDialog) View() string {
	w, h := d.modalSize()

	title := d.title
	if d.viewport.TotalLineCount() > d.viewport.VisibleLineCount() {
		title += styles.TextMutedStyle.Render(fmt.Sprintf(" (%.0f%%)", d.viewport.ScrollPercent()*100))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TextForegroundBoldStyle.Render(title),
		styles.TextMutedStyle.Render(strings.Repeat("─", max(w-6, 1))),
		d.viewport.View(),
		styles.HelpDialogHelpStyle.Render("j/k scroll • esc close"),
	)

	return styles.HelpDialogModalStyle.Width(w).Height(h).Render(content)
}

// Overlay renders the dialog centered over background.
func (d *InfoDialog) Overlay(background string, width, height int) string {
	modal := d.View()

	x := max((width-lipgloss.Width(modal))/2, 0)
	y := max((height-lipgloss.Height(modal))/2, 0)

	bg := lipgloss.NewLayer(background)
	fg := lipgloss.NewLayer(modal).X(x).Y(y).Z(1)
	return lipgloss.NewCompositor(bg, fg).Render()
}

package tui

import (
	"fmt"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/citeview/internal/core/styles"
	"github.com/colonyops/citeview/internal/tui/components"
)

// renderPage lays out header, brief view and help bar.
func (m Model) renderPage() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.view.View(),
		ansi.Truncate(m.help.ShortHelpView(m.shortHelp()), m.width, "…"),
	)
}

func (m Model) renderHeader() string {
	doc := m.view.Document()
	b := doc.Brief

	left := styles.TextPrimaryBoldStyle.Render("citeview")
	if m.build.Version != "" {
		left += styles.TextMutedStyle.Render(" " + m.build.Version)
	}

	right := styles.TextMutedStyle.Render(fmt.Sprintf("%d of %d citations verified", len(b.Navigable()), len(b.Citations)))
	if n := len(doc.Warnings()); n > 0 {
		right = styles.TextWarningStyle.Render(fmt.Sprintf("%d warnings", n)) + styles.TextMutedStyle.Render(" • ") + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left+" "+right, m.width, "…")
	}
	return left + components.Pad(gap) + right
}

// Package components provides reusable TUI components.
package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/citeview/internal/core/styles"
)

// HelpEntry is a single keyboard shortcut.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpDialog lists keyboard shortcuts in a centered modal.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
	width    int
	height   int
}

// NewHelpDialog creates a help dialog sized for a width x height screen.
func NewHelpDialog(title string, sections []HelpDialogSection, width, height int) *HelpDialog {
	return &HelpDialog{
		title:    title,
		sections: sections,
		width:    width,
		height:   height,
	}
}

// keyColumnWidth is the widest key plus a two-cell gutter.
func (h *HelpDialog) keyColumnWidth() int {
	w := 0
	for _, s := range h.sections {
		for _, e := range s.Entries {
			w = max(w, lipgloss.Width(e.Key))
		}
	}
	return w + 2
}

// View renders the dialog. When the screen is too short, trailing lines are
// cut and replaced with an ellipsis row.
func (h *HelpDialog) View() string {
	keyW := h.keyColumnWidth()

	var lines []string
	for i, section := range h.sections {
		if section.Title != "" {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines,
				styles.HelpDialogSectionStyle.Render(section.Title),
				styles.TextMutedStyle.Render(strings.Repeat("─", keyW+16)),
			)
		}
		for _, e := range section.Entries {
			lines = append(lines, styles.TextPrimaryBoldStyle.Render(PadRight(e.Key, keyW))+
				styles.TextForegroundStyle.Render(e.Desc))
		}
	}

	// border, padding, title, blank and footer
	const chrome = 7
	if limit := h.height - chrome; limit > 0 && len(lines) > limit {
		lines = append(lines[:limit-1], styles.TextMutedStyle.Render("…"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TextForegroundBoldStyle.Render(h.title),
		"",
		strings.Join(lines, "\n"),
		styles.HelpDialogHelpStyle.Render("esc/? close"),
	)

	return styles.HelpDialogModalStyle.Render(content)
}

// Overlay renders the dialog centered over background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	modal := h.View()

	x := max((width-lipgloss.Width(modal))/2, 0)
	y := max((height-lipgloss.Height(modal))/2, 0)

	bg := lipgloss.NewLayer(background)
	fg := lipgloss.NewLayer(modal).X(x).Y(y).Z(1)
	return lipgloss.NewCompositor(bg, fg).Render()
}

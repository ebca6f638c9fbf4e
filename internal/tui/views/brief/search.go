package brief

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	corebrief "github.com/colonyops/citeview/internal/core/brief"
	"github.com/colonyops/citeview/internal/core/styles"
)

// focusTarget is anything that can hold keyboard focus. Targets that accept
// text consume printable keys, so global navigation keys must not fire while
// one of them is focused.
type focusTarget interface {
	AcceptsText() bool
}

// documentTarget is the brief body itself.
type documentTarget struct{}

func (documentTarget) AcceptsText() bool { return false }

// SearchBox filters navigable citations by case name or citation text.
type SearchBox struct {
	active bool
	input  textinput.Model
}

// NewSearchBox creates an inactive search box.
func NewSearchBox() SearchBox {
	ti := textinput.New()
	ti.Placeholder = "case name or citation..."
	ti.CharLimit = 100
	ti.Prompt = "/ "
	ti.SetStyles(textinput.DefaultStyles(true))

	return SearchBox{input: ti}
}

// AcceptsText reports true: the search box is a text-entry control.
func (s SearchBox) AcceptsText() bool { return true }

// Open activates and focuses the box with an empty query.
func (s *SearchBox) Open() tea.Cmd {
	s.active = true
	s.input.SetValue("")
	return s.input.Focus()
}

// Close deactivates the box.
func (s *SearchBox) Close() {
	s.active = false
	s.input.Blur()
	s.input.SetValue("")
}

// IsActive reports whether the box is open.
func (s SearchBox) IsActive() bool {
	return s.active
}

// Query returns the current input.
func (s SearchBox) Query() string {
	return s.input.Value()
}

// SetWidth sets the input width.
func (s *SearchBox) SetWidth(w int) {
	s.input.SetWidth(max(w-lenPrompt, 1))
}

const lenPrompt = 2

// Update forwards msg to the text input.
func (s SearchBox) Update(msg tea.Msg) (SearchBox, tea.Cmd) {
	if !s.active {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the box and a match count, or "" when inactive.
func (s SearchBox) View(matches int) string {
	if !s.active {
		return ""
	}
	view := styles.SearchPromptStyle.Render(s.input.View())
	if s.Query() != "" && matches == 0 {
		view += " " + styles.SearchNoMatchStyle.Render("no match")
	}
	return view
}

// MatchCitations returns the navigable citations whose case name or text
// contains query, case-insensitively. An empty query matches nothing.
func MatchCitations(b *corebrief.Brief, query string) []corebrief.Citation {
	query = strings.ToLower(strings.TrimSpace(query))
	if b == nil || query == "" {
		return nil
	}

	var out []corebrief.Citation
	for _, c := range b.Navigable() {
		if strings.Contains(strings.ToLower(c.CaseName), query) ||
			strings.Contains(strings.ToLower(c.Text), query) {
			out = append(out, c)
		}
	}
	return out
}

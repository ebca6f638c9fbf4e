// Package tui implements the Bubble Tea TUI for citeview.
package tui

import (
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	corebrief "github.com/colonyops/citeview/internal/core/brief"
	"github.com/colonyops/citeview/internal/core/config"
	"github.com/colonyops/citeview/internal/core/logging"
	"github.com/colonyops/citeview/internal/core/styles"
	"github.com/colonyops/citeview/internal/tui/components"
	briefview "github.com/colonyops/citeview/internal/tui/views/brief"
	"github.com/colonyops/citeview/pkg/executil"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateShowingHelp
	stateShowingInfo
)

// Key constants for event handling.
const (
	keyCtrlC = "ctrl+c"
	keyQuit  = "q"
	keyHelp  = "?"
	keyInfo  = "i"
	keyEsc   = "esc"
)

// header and footer take one line each.
const chromeLines = 2

// Options configures the TUI.
type Options struct {
	Brief     *corebrief.Brief
	BriefPath string // file the brief was loaded from, empty for the sample or stdin
	Source    string // brief source shown in the info dialog
	Config    *config.Config
	Watch     bool
	Piper     executil.Piper
	Build     BuildInfo
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg     *config.Config
	view    briefview.View
	watcher *BriefWatcher
	help    help.Model
	info    *components.InfoDialog
	build   BuildInfo
	source  string
	log     zerolog.Logger

	state    UIState
	width    int
	height   int
	quitting bool
}

// New creates the root model. A watcher is started only when watching is
// enabled and the brief came from a file.
func New(opts Options) Model {
	log := logging.Component("tui")

	h := help.New()
	h.Styles.ShortKey = styles.TextMutedStyle
	h.Styles.ShortDesc = styles.TextMutedStyle
	h.Styles.ShortSeparator = styles.TextMutedStyle
	h.ShortSeparator = " • "

	m := Model{
		cfg:    opts.Config,
		view:   briefview.New(briefview.ViewOpts{Brief: opts.Brief, Config: opts.Config, Piper: opts.Piper}),
		help:   h,
		build:  opts.Build,
		source: opts.Source,
		log:    log,
	}

	if opts.Watch && opts.BriefPath != "" {
		w, err := NewBriefWatcher(opts.BriefPath)
		if err != nil {
			log.Error().Err(err).Str("path", opts.BriefPath).Msg("failed to watch brief, reload disabled")
		} else {
			m.watcher = w
		}
	}

	m.setSize(80, 24)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return m.watcher.Start()
	}
	return nil
}

// Close releases the file watcher.
func (m Model) Close() error {
	if m.watcher != nil {
		return m.watcher.Close()
	}
	return nil
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.view.SetSize(width, max(height-chromeLines, 1))
	m.view.SetOrigin(0, 1)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		if m.state == stateShowingInfo {
			m.info = m.infoDialog()
		}
		return m, nil

	case briefChangedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("brief reload failed")
			m.view.SetStatus(fmt.Sprintf("Reload failed: %v", msg.err))
		} else {
			m.view.SetBrief(msg.brief)
			if m.state == stateShowingInfo {
				m.info = m.infoDialog()
			}
		}
		if m.watcher != nil {
			return m, m.watcher.Start()
		}
		return m, nil

	case tea.MouseMsg:
		// The brief sits under the overlay and must not react to it.
		if m.state != stateNormal {
			return m, nil
		}

	case tea.KeyPressMsg:
		if m.state == stateShowingHelp {
			switch msg.String() {
			case keyCtrlC:
				m.quitting = true
				return m, tea.Quit
			case keyEsc, keyHelp, keyQuit:
				m.state = stateNormal
			}
			return m, nil
		}

		if m.state == stateShowingInfo {
			switch msg.String() {
			case keyCtrlC:
				m.quitting = true
				return m, tea.Quit
			case keyEsc, keyInfo, keyQuit:
				m.state = stateNormal
				m.info = nil
			case "j", "down":
				m.info.ScrollDown()
			case "k", "up":
				m.info.ScrollUp()
			}
			return m, nil
		}

		switch msg.String() {
		case keyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case keyQuit:
			if !m.view.IsCapturingInput() {
				m.quitting = true
				return m, tea.Quit
			}
		case keyHelp:
			if !m.view.IsCapturingInput() {
				m.state = stateShowingHelp
				return m, nil
			}
		case keyInfo:
			if !m.view.IsCapturingInput() {
				m.state = stateShowingInfo
				m.info = m.infoDialog()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// Render returns the screen content.
func (m Model) Render() string {
	if m.quitting {
		return ""
	}

	content := m.renderPage()
	switch m.state {
	case stateShowingHelp:
		content = m.helpDialog().Overlay(content, m.width, m.height)
	case stateShowingInfo:
		content = m.info.Overlay(content, m.width, m.height)
	}
	return content
}

// State returns the current UI state.
func (m Model) State() UIState {
	return m.state
}

// BriefView returns the brief sub-model.
func (m Model) BriefView() briefview.View {
	return m.view
}

func (m Model) helpDialog() *components.HelpDialog {
	keys := m.view.KeyMap()
	titles := []string{"Citations", "Scrolling", "Actions"}

	var sections []components.HelpDialogSection
	for i, group := range keys.FullHelp() {
		section := components.HelpDialogSection{Title: titles[i]}
		for _, b := range group {
			section.Entries = append(section.Entries, components.HelpEntry{Key: b.Help().Key, Desc: b.Help().Desc})
		}
		sections = append(sections, section)
	}
	sections = append(sections, components.HelpDialogSection{
		Title: "General",
		Entries: []components.HelpEntry{
			{Key: keyHelp, Desc: "toggle help"},
			{Key: keyInfo, Desc: "brief info and warnings"},
			{Key: "q/ctrl+c", Desc: "quit"},
		},
	})

	return components.NewHelpDialog("Keyboard Shortcuts", sections, m.width, m.height)
}

func (m Model) infoDialog() *components.InfoDialog {
	doc := m.view.Document()
	b := doc.Brief

	verified := components.InfoStatusPass
	if len(b.Navigable()) < len(b.Citations) {
		verified = components.InfoStatusWarn
	}

	source := m.source
	if source == "" {
		source = "sample"
	}

	brief := components.InfoSection{
		Title: "Brief",
		Items: []components.InfoItem{
			{Label: "Title", Value: b.Title},
			{Label: "Source", Value: source},
			{Label: "Citations", Value: fmt.Sprintf("%d cited, %d in the body", len(b.Citations), len(doc.Cites()))},
			{Label: "Verified", Value: fmt.Sprintf("%d of %d", len(b.Navigable()), len(b.Citations)), Status: verified},
		},
	}
	if m.watcher != nil {
		brief.Items = append(brief.Items, components.InfoItem{Label: "Watching", Value: m.watcher.Path()})
	}

	warnings := components.InfoSection{Title: "Warnings", Empty: "No warnings"}
	for _, w := range doc.Warnings() {
		label := w.Category
		if w.Item != "" {
			label += " " + w.Item
		}
		warnings.Items = append(warnings.Items, components.InfoItem{Label: label, Value: w.Message, Status: components.InfoStatusWarn})
	}

	build := components.InfoSection{
		Title: "Build",
		Items: []components.InfoItem{
			{Label: "Version", Value: m.build.Version},
			{Label: "Commit", Value: m.build.Commit},
			{Label: "Date", Value: m.build.Date},
		},
	}

	return components.NewInfoDialog("Brief Info", []components.InfoSection{brief, warnings, build}, m.width, m.height)
}

func (m Model) shortHelp() []key.Binding {
	return append(m.view.KeyMap().ShortHelp(),
		key.NewBinding(key.WithKeys(keyHelp), key.WithHelp(keyHelp, "help")),
		key.NewBinding(key.WithKeys(keyQuit), key.WithHelp(keyQuit, "quit")),
	)
}

package brief

import "charm.land/bubbles/v2/key"

// KeyMap holds the brief view's bindings.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	Activate   key.Binding
	Cancel     key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	HalfUp     key.Binding
	HalfDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	DetailUp   key.Binding
	DetailDown key.Binding
	Search     key.Binding
	Copy       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:       key.NewBinding(key.WithKeys("right", "down", "j"), key.WithHelp("→/↓/j", "next citation")),
		Prev:       key.NewBinding(key.WithKeys("left", "up", "k"), key.WithHelp("←/↑/k", "previous citation")),
		FocusNext:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus next tag")),
		FocusPrev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "focus previous tag")),
		Activate:   key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter/space", "open details")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close details")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),
		HalfUp:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "half page up")),
		HalfDown:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "half page down")),
		Top:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top")),
		Bottom:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "bottom")),
		DetailUp:   key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "scroll details up")),
		DetailDown: key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "scroll details down")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search citations")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy citation")),
	}
}

// ShortHelp returns the bindings shown in the help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.FocusNext, k.Activate, k.Search, k.Cancel}
}

// FullHelp returns every binding, grouped.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.FocusNext, k.FocusPrev, k.Activate, k.Cancel},
		{k.PageUp, k.PageDown, k.HalfUp, k.HalfDown, k.Top, k.Bottom, k.DetailUp, k.DetailDown},
		{k.Search, k.Copy},
	}
}

package brief

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/citeview/internal/core/annotate"
	corebrief "github.com/colonyops/citeview/internal/core/brief"
	"github.com/colonyops/citeview/internal/core/config"
	"github.com/colonyops/citeview/internal/core/logging"
	"github.com/colonyops/citeview/internal/core/styles"
	"github.com/colonyops/citeview/pkg/executil"
)

// minSideBySide is the narrowest terminal that shows the detail pane next
// to the brief instead of over it.
const minSideBySide = 100

const copyTimeout = 5 * time.Second

// focusIntentMsg asks the view to move keyboard focus to a citation's tag.
// It is produced after a selection transition and handled on the next
// update, after the layout for the new selection has been committed.
type focusIntentMsg struct {
	CitationID string
}

// copyResultMsg reports the outcome of a copy command.
type copyResultMsg struct {
	Err error
}

// liveRegion is the single status line announcements are written to. It is
// shared by pointer so controller observers can reach it from any copy of
// the view.
type liveRegion struct {
	message string
	pending *Announcement
}

// ViewOpts configures a new brief View.
type ViewOpts struct {
	Brief  *corebrief.Brief
	Config *config.Config
	Piper  executil.Piper // nil uses executil.ShellPiper
}

// View is the Bubble Tea sub-model for the brief viewer.
type View struct {
	doc  *annotate.Document
	ctrl *Controller
	cfg  *config.Config
	keys KeyMap
	log  zerolog.Logger

	layout   Layout
	viewport viewport.Model
	detail   DetailPane
	search   SearchBox
	focus    UnitRef
	live     *liveRegion
	piper    executil.Piper

	width   int
	height  int
	originX int
	originY int
}

// New creates the brief view.
func New(opts ViewOpts) View {
	cfg := opts.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}
	piper := opts.Piper
	if piper == nil {
		piper = executil.ShellPiper{}
	}

	v := View{
		cfg:      cfg,
		keys:     DefaultKeyMap(),
		log:      logging.Component("brief"),
		viewport: viewport.New(),
		search:   NewSearchBox(),
		focus:    NoFocus,
		live:     &liveRegion{},
		piper:    piper,
	}

	v.doc = annotate.Annotate(opts.Brief)
	v.doc.LogWarnings(v.log)
	v.ctrl = NewController(opts.Brief)
	v.ctrl.Subscribe(v.announce)

	return v
}

func (v View) announce(a Announcement) {
	v.live.message = a.String()
	v.live.pending = &a
}

// SetSize updates the view dimensions. One line is reserved at the bottom
// for the search box or the live status region.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.search.SetWidth(width)
	v.resize()
}

// SetOrigin records the screen position of the view's top-left cell so
// mouse events can be translated.
func (v *View) SetOrigin(x, y int) {
	v.originX = x
	v.originY = y
}

// KeyMap returns the view's bindings.
func (v View) KeyMap() KeyMap {
	return v.keys
}

// IsCapturingInput reports whether keyboard focus is on a text-entry
// control.
func (v View) IsCapturingInput() bool {
	return v.focused().AcceptsText()
}

// HasEscapable reports whether esc has something to close in this view.
func (v View) HasEscapable() bool {
	return v.search.IsActive() || v.ctrl.State() == StateActive
}

// Controller exposes the selection controller.
func (v View) Controller() *Controller {
	return v.ctrl
}

// Status returns the live region's current message.
func (v View) Status() string {
	return v.live.message
}

// Focus returns the keyboard-focused unit, or NoFocus.
func (v View) Focus() UnitRef {
	return v.focus
}

// Layout returns the committed document layout.
func (v View) Layout() Layout {
	return v.layout
}

// Document returns the annotated brief.
func (v View) Document() *annotate.Document {
	return v.doc
}

// SetBrief replaces the brief after a reload.
func (v *View) SetBrief(b *corebrief.Brief) {
	v.doc = annotate.Annotate(b)
	v.doc.LogWarnings(v.log)
	v.ctrl.SetBrief(b)
	v.live.pending = nil
	v.live.message = fmt.Sprintf("Reloaded %s", b.Title)
	v.log.Info().
		Str("title", b.Title).
		Int("citations", len(b.Citations)).
		Int("results", len(b.VerificationResults)).
		Msg("brief reloaded")
	v.resize()
}

// SetStatus writes msg to the live region.
func (v *View) SetStatus(msg string) {
	v.live.message = msg
}

func (v View) focused() focusTarget {
	if v.search.IsActive() {
		return v.search
	}
	return documentTarget{}
}

// Init implements tea.Model.
func (v View) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case focusIntentMsg:
		v.applyFocusIntent(msg)
		return v, nil

	case copyResultMsg:
		if msg.Err != nil {
			v.log.Error().Err(msg.Err).Msg("copy command failed")
			v.live.message = "Copy failed: " + msg.Err.Error()
		} else {
			v.live.message = "Copied citation text"
		}
		return v, nil

	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button != tea.MouseLeft {
			return v, nil
		}
		v.click(m.X-v.originX, m.Y-v.originY)
		return v, v.afterTransition()

	case tea.MouseWheelMsg:
		m := msg.Mouse()
		switch m.Button {
		case tea.MouseWheelUp:
			v.viewport.ScrollUp(3)
		case tea.MouseWheelDown:
			v.viewport.ScrollDown(3)
		}
		return v, nil

	case tea.KeyPressMsg:
		if v.focused().AcceptsText() {
			cmd := v.updateSearch(msg)
			return v, tea.Batch(cmd, v.afterTransition())
		}
		cmd := v.handleKey(msg)
		return v, tea.Batch(cmd, v.afterTransition())
	}

	return v, nil
}

func (v *View) updateSearch(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		v.search.Close()
		v.resize()
		return nil
	case "enter":
		query := v.search.Query()
		matches := MatchCitations(v.ctrl.Brief(), query)
		v.search.Close()
		if len(matches) == 0 {
			v.live.message = fmt.Sprintf("No citation matches %q", query)
			v.resize()
			return nil
		}
		c := matches[0]
		v.ctrl.Select(c, *v.ctrl.Brief().ResultFor(c.ID))
		return nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	return cmd
}

func (v *View) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Cancel):
		if v.ctrl.State() == StateActive {
			v.ctrl.Close()
			v.log.Debug().Msg("selection closed")
			v.live.message = "Citation details closed"
			v.resize()
		}
	case key.Matches(msg, v.keys.Search):
		cmd := v.search.Open()
		v.resize()
		return cmd
	case key.Matches(msg, v.keys.Next):
		v.navigate(Next)
	case key.Matches(msg, v.keys.Prev):
		v.navigate(Prev)
	case key.Matches(msg, v.keys.FocusNext):
		v.moveFocus(1)
	case key.Matches(msg, v.keys.FocusPrev):
		v.moveFocus(-1)
	case key.Matches(msg, v.keys.Activate):
		v.activateFocused()
	case key.Matches(msg, v.keys.Copy):
		return v.copySelection()
	case key.Matches(msg, v.keys.PageUp):
		v.viewport.PageUp()
	case key.Matches(msg, v.keys.PageDown):
		v.viewport.PageDown()
	case key.Matches(msg, v.keys.HalfUp):
		v.viewport.HalfPageUp()
	case key.Matches(msg, v.keys.HalfDown):
		v.viewport.HalfPageDown()
	case key.Matches(msg, v.keys.Top):
		v.viewport.GotoTop()
	case key.Matches(msg, v.keys.Bottom):
		v.viewport.GotoBottom()
	case key.Matches(msg, v.keys.DetailUp):
		v.detail.ScrollUp()
	case key.Matches(msg, v.keys.DetailDown):
		v.detail.ScrollDown()
	}
	return nil
}

func (v *View) navigate(dir Direction) {
	if !v.ctrl.Navigate(dir) {
		v.live.message = "No verified citations to navigate"
	}
}

func (v *View) moveFocus(delta int) {
	refs := v.layout.Focusables()
	if len(refs) == 0 {
		return
	}

	next := 0
	if delta < 0 {
		next = len(refs) - 1
	}
	for i, r := range refs {
		if r == v.focus {
			next = (i + delta + len(refs)) % len(refs)
			break
		}
	}

	v.setFocus(refs[next])
}

func (v *View) setFocus(ref UnitRef) {
	v.focus = ref
	v.relayout()
	if line, ok := v.layout.LineOf(ref); ok {
		v.ensureVisible(line)
	}
}

func (v *View) activateFocused() {
	if v.focus.Tag < 0 || v.focus.Tag >= len(v.layout.Tags) {
		return
	}
	v.layout.Tags[v.focus.Tag].Activate()
}

func (v *View) click(x, y int) {
	if x < 0 || y < 0 || y >= v.bodyHeight() || x >= v.briefWidth() {
		return
	}
	if v.detailOverlay() && x >= v.width-v.detailWidth() {
		return
	}

	ref, ok := v.layout.HitTest(x, y+v.viewport.YOffset())
	if !ok {
		return
	}
	tag := v.layout.Tags[ref.Tag]
	if !tag.UnitActivatable(ref.Unit) {
		return
	}
	v.focus = ref
	tag.Activate()
}

func (v *View) copySelection() tea.Cmd {
	sel, ok := v.ctrl.Selection()
	if !ok {
		return nil
	}

	piper := v.piper
	command := v.cfg.CopyCommand
	text := sel.Citation.Text
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()
		return copyResultMsg{Err: piper.Pipe(ctx, command, text)}
	}
}

// afterTransition commits the layout for a new selection and returns the
// focus intent for it. The intent is delivered as a separate message so it
// is applied against the committed layout, never the one being replaced.
func (v *View) afterTransition() tea.Cmd {
	a := v.live.pending
	if a == nil {
		return nil
	}
	v.live.pending = nil

	v.log.Debug().
		Str("citation_id", a.Citation.ID).
		Int("position", a.Position).
		Int("total", a.Total).
		Msg("citation selected")

	v.resize()

	id := a.Citation.ID
	return func() tea.Msg {
		return focusIntentMsg{CitationID: id}
	}
}

func (v *View) applyFocusIntent(msg focusIntentMsg) {
	if v.ctrl.SelectedID() != msg.CitationID {
		// A later transition superseded this intent.
		return
	}

	ti, ok := v.layout.TagIndex(msg.CitationID)
	if !ok {
		return
	}
	for ui := range v.layout.Tags[ti].Units {
		if v.layout.Tags[ti].UnitActivatable(ui) {
			v.log.Debug().Str("citation_id", msg.CitationID).Msg("focus intent applied")
			v.setFocus(UnitRef{Tag: ti, Unit: ui})
			return
		}
	}
}

func (v *View) ensureVisible(line int) {
	top := v.viewport.YOffset()
	height := v.bodyHeight()
	switch {
	case line < top:
		v.viewport.SetYOffset(line)
	case line >= top+height:
		v.viewport.SetYOffset(line - height + 1)
	}
}

func (v View) detailWidth() int {
	return min(v.cfg.Detail.Width, max(v.width-4, 10))
}

// detailSide reports whether the detail pane sits beside the brief.
func (v View) detailSide() bool {
	return v.width >= minSideBySide
}

// detailOverlay reports whether the detail pane is drawn over the brief.
func (v View) detailOverlay() bool {
	return !v.detailSide() && v.ctrl.State() == StateActive
}

func (v View) briefWidth() int {
	if v.detailSide() {
		return max(v.width-v.detailWidth()-1, 10)
	}
	return max(v.width, 10)
}

func (v View) bodyHeight() int {
	return max(v.height-1, 1)
}

// resize rebuilds both panes for the current size and selection.
func (v *View) resize() {
	bodyH := v.bodyHeight()
	offset := v.viewport.YOffset()
	v.viewport = viewport.New(viewport.WithWidth(v.briefWidth()), viewport.WithHeight(bodyH))
	v.relayout()
	v.viewport.SetYOffset(offset)

	sel, ok := v.ctrl.Selection()
	v.detail = NewDetailPane(NewDetailView(sel, ok), v.detailWidth(), bodyH)
}

// relayout rebuilds the document for the current selection and focus.
func (v *View) relayout() {
	ctrl := v.ctrl
	factory := TagFactory{
		Brief:      ctrl.Brief(),
		Classifier: v.cfg.CitationClassifier(),
		Unverified: v.cfg.Unverified,
		SelectedID: ctrl.SelectedID(),
		OnActivate: func(c corebrief.Citation, r corebrief.VerificationResult) {
			ctrl.Select(c, r)
		},
	}

	v.layout = BuildLayout(LayoutInput{
		Title: v.doc.Brief.Title,
		Root:  v.doc.Root,
		Width: v.briefWidth(),
		Tag:   factory.Tag,
		Focus: v.focus,
	})

	if v.focus.Tag >= len(v.layout.Tags) {
		v.focus = NoFocus
	}

	offset := v.viewport.YOffset()
	v.viewport.SetContent(v.layout.Content())
	v.viewport.SetYOffset(offset)
}

// View renders the brief, the detail pane and the bottom line.
func (v View) View() string {
	body := v.viewport.View()

	switch {
	case v.detailSide():
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", v.detail.View())
	case v.ctrl.State() == StateActive:
		pane := v.detail.View()
		bg := lipgloss.NewLayer(body)
		fg := lipgloss.NewLayer(pane).X(max(v.width-lipgloss.Width(pane), 0)).Y(0).Z(1)
		body = lipgloss.NewCompositor(bg, fg).Render()
	}

	bottom := styles.StatusBarStyle.Render(v.live.message)
	if v.search.IsActive() {
		bottom = v.search.View(len(MatchCitations(v.ctrl.Brief(), v.search.Query())))
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, bottom)
}

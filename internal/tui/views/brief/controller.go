package brief

import (
	"fmt"

	corebrief "github.com/colonyops/citeview/internal/core/brief"
)

// State is the selection state of the viewer.
type State int

const (
	StateIdle State = iota
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// Direction is a navigation direction over navigable citations.
type Direction int

const (
	Next Direction = iota
	Prev
)

// Selection is the active citation and its verification result.
type Selection struct {
	Citation corebrief.Citation
	Result   corebrief.VerificationResult
}

// Announcement is published on every transition into StateActive.
type Announcement struct {
	Citation corebrief.Citation
	Position int // 1-based position among navigable citations, 0 if not navigable
	Total    int
}

// String returns the live-region text for the announcement.
func (a Announcement) String() string {
	name := a.Citation.CaseName
	if name == "" {
		name = a.Citation.Text
	}
	if a.Position == 0 {
		return fmt.Sprintf("Selected citation: %s. Press Enter to view details.", name)
	}
	return fmt.Sprintf("Selected citation %d of %d: %s. Press Enter to view details.", a.Position, a.Total, name)
}

// Observer is a callback invoked with every announcement.
type Observer func(Announcement)

// Controller owns the selection state. It contains pure state logic with no
// Bubble Tea dependencies; the view serializes all calls through its update
// loop.
type Controller struct {
	brief     *corebrief.Brief
	selection *Selection
	observers []Observer
}

// NewController creates a controller over b in StateIdle.
func NewController(b *corebrief.Brief) *Controller {
	return &Controller{brief: b}
}

// Subscribe registers an observer for announcements.
func (c *Controller) Subscribe(fn Observer) {
	c.observers = append(c.observers, fn)
}

// Brief returns the brief the controller navigates.
func (c *Controller) Brief() *corebrief.Brief {
	return c.brief
}

// SetBrief swaps the brief after a reload. A selection whose citation is
// still navigable is refreshed with the new data; otherwise it is kept as is
// and the next navigation falls back to the first navigable citation.
func (c *Controller) SetBrief(b *corebrief.Brief) {
	c.brief = b
	if c.selection == nil {
		return
	}
	if cit, ok := b.CitationByID(c.selection.Citation.ID); ok {
		if r := b.ResultFor(cit.ID); r != nil {
			c.selection = &Selection{Citation: cit, Result: *r}
		}
	}
}

// State returns the current state.
func (c *Controller) State() State {
	if c.selection == nil {
		return StateIdle
	}
	return StateActive
}

// Selection returns the active selection.
func (c *Controller) Selection() (Selection, bool) {
	if c.selection == nil {
		return Selection{}, false
	}
	return *c.selection, true
}

// SelectedID returns the selected citation id, or "".
func (c *Controller) SelectedID() string {
	if c.selection == nil {
		return ""
	}
	return c.selection.Citation.ID
}

// Select moves to StateActive with the given pair.
func (c *Controller) Select(cit corebrief.Citation, r corebrief.VerificationResult) {
	c.selection = &Selection{Citation: cit, Result: r}
	c.publish()
}

// Close returns to StateIdle.
func (c *Controller) Close() {
	c.selection = nil
}

// Navigate selects the adjacent navigable citation, wrapping at both ends.
// From StateIdle, or when the selected citation is no longer navigable, it
// selects the first navigable citation. It returns false and stays put when
// nothing is navigable.
func (c *Controller) Navigate(dir Direction) bool {
	navigable := c.brief.Navigable()
	if len(navigable) == 0 {
		return false
	}

	target := 0
	if c.selection != nil {
		if idx := indexOf(navigable, c.selection.Citation.ID); idx >= 0 {
			switch dir {
			case Next:
				target = (idx + 1) % len(navigable)
			case Prev:
				target = (idx - 1 + len(navigable)) % len(navigable)
			}
		}
	}

	cit := navigable[target]
	c.Select(cit, *c.brief.ResultFor(cit.ID))
	return true
}

func (c *Controller) publish() {
	if len(c.observers) == 0 || c.selection == nil {
		return
	}

	navigable := c.brief.Navigable()
	a := Announcement{
		Citation: c.selection.Citation,
		Position: indexOf(navigable, c.selection.Citation.ID) + 1,
		Total:    len(navigable),
	}

	for _, fn := range c.observers {
		fn(a)
	}
}

func indexOf(citations []corebrief.Citation, id string) int {
	for i, c := range citations {
		if c.ID == id {
			return i
		}
	}
	return -1
}

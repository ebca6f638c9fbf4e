// Package brief is the interactive brief viewer: citation tags laid out
// inside the brief text, the selection controller and the detail pane.
package brief

import (
	"fmt"
	"strings"

	corebrief "github.com/colonyops/citeview/internal/core/brief"
	"github.com/colonyops/citeview/internal/core/citation"
	"github.com/colonyops/citeview/internal/core/styles"
)

// Variant selects how a tag is drawn.
type Variant int

const (
	// VariantLandmark highlights the case name inside the full citation text
	// and follows it with badges.
	VariantLandmark Variant = iota
	// VariantStandard draws a compact icon, case name and field row.
	VariantStandard
	// VariantPlain is the literal citation text with no tag chrome.
	VariantPlain
)

func (v Variant) String() string {
	switch v {
	case VariantLandmark:
		return "landmark"
	case VariantStandard:
		return "standard"
	default:
		return "plain"
	}
}

// Role classifies a segment of a unit for styling.
type Role int

const (
	RoleText Role = iota
	RoleCaseName
	RoleIcon
	RoleSeparator
	RoleField
	RoleDecoration
	RoleSeverity
	RoleBadge
	RoleFlag
)

// Segment is a run of text inside a unit.
type Segment struct {
	Role Role
	Text string
}

// UnitKind distinguishes the activatable pieces of a tag.
type UnitKind int

const (
	UnitMain UnitKind = iota
	UnitCourtBadge
	UnitCategoryBadge
	UnitFlag // "unverified" marker, never activatable
)

// Unit is one independently focusable piece of a tag. All activatable units
// of a tag share the same activation and pressed state.
type Unit struct {
	Kind     UnitKind
	Segments []Segment
	Label    string // accessible label, empty for decorative units
}

// Text returns the unit's visible text.
func (u Unit) Text() string {
	var b strings.Builder
	for _, s := range u.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// ActivateFunc is invoked when an activatable tag is activated.
type ActivateFunc func(c corebrief.Citation, r corebrief.VerificationResult)

// Tag is the rendered form of one citation occurrence.
type Tag struct {
	Citation corebrief.Citation
	Result   *corebrief.VerificationResult
	Meta     citation.Metadata
	Variant  Variant
	Selected bool
	Units    []Unit

	onActivate ActivateFunc
}

// RenderTag builds the tag for a citation. The variant follows the colour
// class: blue and orange are landmark cases. A nil result produces an inert
// tag that ignores activation.
func RenderTag(c corebrief.Citation, result *corebrief.VerificationResult, meta citation.Metadata, isSelected bool, onActivate ActivateFunc) Tag {
	t := Tag{
		Citation:   c,
		Result:     result,
		Meta:       meta,
		Selected:   isSelected,
		onActivate: onActivate,
	}

	label := citationLabel(c, result)

	if meta.Color.IsLandmark() {
		t.Variant = VariantLandmark
		t.Units = landmarkUnits(c, result, meta, label)
	} else {
		t.Variant = VariantStandard
		t.Units = []Unit{standardUnit(c, result, meta, label)}
	}

	return t
}

// PlainTag returns the literal-text rendering used for citations without a
// result when unverified citations are shown plainly.
func PlainTag(c corebrief.Citation, meta citation.Metadata) Tag {
	return Tag{
		Citation: c,
		Meta:     meta,
		Variant:  VariantPlain,
		Units:    []Unit{{Kind: UnitMain, Segments: []Segment{{Role: RoleText, Text: c.Text}}}},
	}
}

// WithUnverifiedFlag appends the muted "unverified" marker.
func (t Tag) WithUnverifiedFlag() Tag {
	units := make([]Unit, len(t.Units), len(t.Units)+1)
	copy(units, t.Units)
	t.Units = append(units, Unit{
		Kind:     UnitFlag,
		Segments: []Segment{{Role: RoleFlag, Text: "unverified"}},
	})
	return t
}

// Activatable reports whether activation has any effect.
func (t Tag) Activatable() bool {
	return t.Result != nil && t.onActivate != nil && t.Variant != VariantPlain
}

// UnitActivatable reports whether unit i can be focused and activated.
func (t Tag) UnitActivatable(i int) bool {
	if !t.Activatable() || i < 0 || i >= len(t.Units) {
		return false
	}
	return t.Units[i].Kind != UnitFlag
}

// Activate invokes the activation callback with the citation and its result.
// It returns false and does nothing for an inert tag.
func (t Tag) Activate() bool {
	if !t.Activatable() {
		return false
	}
	t.onActivate(t.Citation, *t.Result)
	return true
}

// Describe returns the accessible description of unit i: its role, pressed
// state and label.
func (t Tag) Describe(i int) string {
	if i < 0 || i >= len(t.Units) {
		return ""
	}
	u := t.Units[i]
	if !t.UnitActivatable(i) {
		if u.Label == "" {
			return "text: " + u.Text()
		}
		return "text: " + u.Label
	}
	pressed := "not pressed"
	if t.Selected {
		pressed = "pressed"
	}
	return fmt.Sprintf("button, %s: %s", pressed, u.Label)
}

func citationLabel(c corebrief.Citation, result *corebrief.VerificationResult) string {
	if result == nil {
		return fmt.Sprintf("Citation: %s. Not verified.", c.Text)
	}
	return fmt.Sprintf("Citation: %s. Press Enter to view details.", c.Text)
}

func severitySegment(result *corebrief.VerificationResult) []Segment {
	if result == nil {
		return nil
	}
	return []Segment{{Role: RoleSeverity, Text: styles.SeverityIcon(string(result.Severity)) + " "}}
}

func landmarkUnits(c corebrief.Citation, result *corebrief.VerificationResult, meta citation.Metadata, label string) []Unit {
	segments := severitySegment(result)
	if before, after, ok := c.SplitCaseName(); ok {
		if before != "" {
			segments = append(segments, Segment{Role: RoleText, Text: before})
		}
		segments = append(segments, Segment{Role: RoleCaseName, Text: c.CaseName})
		if after != "" {
			segments = append(segments, Segment{Role: RoleText, Text: after})
		}
	} else {
		segments = append(segments, Segment{Role: RoleText, Text: c.Text})
	}

	units := []Unit{{Kind: UnitMain, Segments: segments, Label: label}}

	if meta.Court != "" {
		units = append(units, Unit{
			Kind:     UnitCourtBadge,
			Segments: []Segment{{Role: RoleBadge, Text: meta.Court}},
			Label:    meta.Court + " - " + label,
		})
	}
	if badge := meta.Badge(); badge != "" {
		units = append(units, Unit{
			Kind:     UnitCategoryBadge,
			Segments: []Segment{{Role: RoleBadge, Text: badge}},
			Label:    badge + " - " + label,
		})
	}

	return units
}

func standardUnit(c corebrief.Citation, result *corebrief.VerificationResult, meta citation.Metadata, label string) Unit {
	segments := severitySegment(result)

	name := c.CaseName
	if name == "" {
		name = c.Text
	}
	segments = append(segments,
		Segment{Role: RoleIcon, Text: meta.Icon},
		Segment{Role: RoleText, Text: " "},
		Segment{Role: RoleCaseName, Text: name},
	)

	for _, field := range []string{meta.Court, meta.Category, meta.Strength} {
		if field == "" {
			continue
		}
		segments = append(segments,
			Segment{Role: RoleSeparator, Text: " | "},
			Segment{Role: RoleField, Text: field},
		)
	}

	segments = append(segments,
		Segment{Role: RoleDecoration, Text: " " + styles.IconCopy},
		Segment{Role: RoleDecoration, Text: " " + styles.IconChevron},
	)

	return Unit{Kind: UnitMain, Segments: segments, Label: label}
}

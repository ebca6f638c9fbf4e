// Package citation derives display metadata (court, legal category, badge
// colour and icon) for a brief citation from fixed fragment tables.
package citation

import (
	"strings"

	"github.com/colonyops/citeview/internal/core/brief"
)

// Color is the visual class of a tag. Blue and orange select the landmark
// tag variant; anything else renders the standard variant.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorOrange Color = "orange"
	ColorPurple Color = "purple"
)

// IsLandmark reports whether the colour selects the landmark tag variant.
func (c Color) IsLandmark() bool {
	return c == ColorBlue || c == ColorOrange
}

const (
	CourtSCOTUS   = "SCOTUS"
	CourtNinthCir = "9th Cir."

	DefaultIcon = "C"
)

// Metadata is derived on every render and never stored.
type Metadata struct {
	Court    string
	Category string
	Strength string
	Color    Color
	Icon     string
}

// Badge returns the combined category and strength label, or "" when either
// is missing.
func (m Metadata) Badge() string {
	if m.Category == "" || m.Strength == "" {
		return ""
	}
	return m.Category + " " + m.Strength
}

// IconRule overrides the rule icon when the case name contains Fragment.
type IconRule struct {
	Fragment string `yaml:"fragment"`
	Icon     string `yaml:"icon"`
}

// Rule is one link of the classification chain.
type Rule struct {
	Fragments []string   `yaml:"fragments"`
	Category  string     `yaml:"category"`
	Strength  string     `yaml:"strength"`
	Color     Color      `yaml:"color"`
	Icons     []IconRule `yaml:"icons,omitempty"`
}

func (r Rule) matches(name string) bool {
	return containsAny(name, r.Fragments)
}

func (r Rule) icon(name string) string {
	for _, ir := range r.Icons {
		if strings.Contains(name, strings.ToLower(ir.Fragment)) {
			return ir.Icon
		}
	}
	return DefaultIcon
}

// Classifier holds the lookup tables. Rules are evaluated in order and the
// first rule whose fragments match the case name wins.
type Classifier struct {
	Landmark         []string `yaml:"landmark"`
	CircuitReporters []string `yaml:"circuit_reporters"`
	Rules            []Rule   `yaml:"rules"`
}

// DefaultClassifier returns the built-in securities-litigation tables.
func DefaultClassifier() Classifier {
	return Classifier{
		Landmark:         []string{"twombly", "iqbal", "tellabs", "dura", "basic"},
		CircuitReporters: []string{"F.3d", "F.2d"},
		Rules: []Rule{
			{
				Fragments: []string{"twombly", "iqbal"},
				Category:  "Pleading Standard",
				Strength:  "Strong",
				Color:     ColorBlue,
			},
			{
				Fragments: []string{"tellabs"},
				Category:  "Scienter Standard",
				Strength:  "Strong",
				Color:     ColorOrange,
			},
			{
				Fragments: []string{"henderson", "dura", "basic"},
				Category:  "PSLRA",
				Strength:  "Medium",
				Color:     ColorPurple,
				Icons:     []IconRule{{Fragment: "dura", Icon: "D"}},
			},
		},
	}
}

var defaultClassifier = DefaultClassifier()

// Classify classifies with the built-in tables.
func Classify(c brief.Citation) Metadata {
	return defaultClassifier.Classify(c)
}

// Classify maps a citation to its display metadata. It is total: a
// citation matching nothing gets an empty court and category, ColorBlue and
// the default icon.
func (cl Classifier) Classify(c brief.Citation) Metadata {
	name := strings.ToLower(c.CaseName)

	meta := Metadata{
		Court: cl.court(name, c.Reporter),
		Color: ColorBlue,
		Icon:  DefaultIcon,
	}

	for _, rule := range cl.Rules {
		if !rule.matches(name) {
			continue
		}
		meta.Category = rule.Category
		meta.Strength = rule.Strength
		meta.Color = rule.Color
		meta.Icon = rule.icon(name)
		break
	}

	return meta
}

func (cl Classifier) court(name, reporter string) string {
	if containsAny(name, cl.Landmark) {
		return CourtSCOTUS
	}
	for _, r := range cl.CircuitReporters {
		if strings.Contains(reporter, r) {
			return CourtNinthCir
		}
	}
	return ""
}

// containsAny reports whether s contains any of the fragments, compared
// case-insensitively. s must already be lower-cased.
func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if f != "" && strings.Contains(s, strings.ToLower(f)) {
			return true
		}
	}
	return false
}

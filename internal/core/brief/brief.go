// Package brief holds the legal brief data model: the brief body, the
// citations it references and the verification results computed for them.
//
// A Brief is built once (from a file or the embedded sample) and is treated
// as read-only afterwards. Lookups never fail loudly: a missing citation or
// result is reported through the boolean or nil return and the caller
// degrades to plain text.
package brief

import (
	"fmt"
	"strings"
)

// Severity is the coarse verification outcome attached to a result.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityNone     Severity = ""
)

// Citation is a reference to an external legal authority inside the brief.
type Citation struct {
	ID       string `json:"id" yaml:"id"`
	Text     string `json:"text" yaml:"text"`         // literal citation as written in the brief
	CaseName string `json:"caseName" yaml:"caseName"` // substring of Text naming the case
	Reporter string `json:"reporter" yaml:"reporter"` // volume/reporter, e.g. "556 U.S."
	PinCite  string `json:"pinCite,omitempty" yaml:"pinCite,omitempty"`
	Year     int    `json:"year,omitempty" yaml:"year,omitempty"` // 0 when unknown
}

// SplitCaseName splits Text around the first occurrence of CaseName.
// ok is false when CaseName is empty or not part of Text, in which case
// callers show Text unsplit.
func (c Citation) SplitCaseName() (before, after string, ok bool) {
	if c.CaseName == "" {
		return "", "", false
	}
	return strings.Cut(c.Text, c.CaseName)
}

// FormatReporter returns the reporter with the optional pin cite and year,
// e.g. "550 U.S. 544, 570 (2007)".
func (c Citation) FormatReporter() string {
	formatted := c.Reporter
	if c.PinCite != "" {
		formatted += ", " + c.PinCite
	}
	if c.Year != 0 {
		formatted += fmt.Sprintf(" (%d)", c.Year)
	}
	return formatted
}

// Details carries the optional supporting material of a verification result.
type Details struct {
	ExpectedQuote    string `json:"expectedQuote,omitempty" yaml:"expectedQuote,omitempty"`
	ActualQuote      string `json:"actualQuote,omitempty" yaml:"actualQuote,omitempty"`
	TreatmentHistory string `json:"treatmentHistory,omitempty" yaml:"treatmentHistory,omitempty"`
}

// IsEmpty reports whether no detail field is set.
func (d *Details) IsEmpty() bool {
	return d == nil || (d.ExpectedQuote == "" && d.ActualQuote == "" && d.TreatmentHistory == "")
}

// VerificationResult is an externally computed judgement about a citation.
type VerificationResult struct {
	CitationID string   `json:"citationId" yaml:"citationId"`
	Status     string   `json:"status" yaml:"status"` // free-form, e.g. "Verified", "Discrepancy"
	Severity   Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
	Message    string   `json:"message" yaml:"message"`
	Details    *Details `json:"details,omitempty" yaml:"details,omitempty"`
}

// Brief is the aggregate root: the markup body plus its citations and results.
type Brief struct {
	Title               string               `json:"title" yaml:"title"`
	Content             string               `json:"content" yaml:"content"`
	Citations           []Citation           `json:"citations" yaml:"citations"`
	VerificationResults []VerificationResult `json:"verificationResults" yaml:"verificationResults"`
}

// CitationAt resolves a 1-based ordinal index into the citation list.
func (b *Brief) CitationAt(index int) (Citation, bool) {
	if index < 1 || index > len(b.Citations) {
		return Citation{}, false
	}
	return b.Citations[index-1], true
}

// CitationByID returns the citation with the given id.
func (b *Brief) CitationByID(id string) (Citation, bool) {
	for _, c := range b.Citations {
		if c.ID == id {
			return c, true
		}
	}
	return Citation{}, false
}

// ResultFor returns the first verification result for the citation id, or
// nil when the citation has none.
func (b *Brief) ResultFor(citationID string) *VerificationResult {
	for i := range b.VerificationResults {
		if b.VerificationResults[i].CitationID == citationID {
			return &b.VerificationResults[i]
		}
	}
	return nil
}

// Navigable returns the citations that have a verification result, in
// citation list order. Only these can be selected.
func (b *Brief) Navigable() []Citation {
	var out []Citation
	for _, c := range b.Citations {
		if b.ResultFor(c.ID) != nil {
			out = append(out, c)
		}
	}
	return out
}

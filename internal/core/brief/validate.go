package brief

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal data issue. The brief still
// renders; the affected citation degrades to plain text or an unsplit tag.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

func (w ValidationWarning) String() string {
	if w.Item == "" {
		return fmt.Sprintf("%s: %s", w.Category, w.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", w.Category, w.Item, w.Message)
}

// Validate reports structural problems that make the brief unusable. The
// returned error is a criterio.FieldErrors listing every offending field.
func (b *Brief) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if strings.TrimSpace(b.Title) == "" {
		errs = errs.Append("title", errors.New("cannot be empty"))
	}

	seen := make(map[string]int, len(b.Citations))
	for i, c := range b.Citations {
		field := fmt.Sprintf("citations[%d]", i)
		if c.ID == "" {
			errs = errs.Append(field+".id", errors.New("cannot be empty"))
		} else if prev, ok := seen[c.ID]; ok {
			errs = errs.Append(field+".id", fmt.Errorf("duplicate id %q (also citations[%d])", c.ID, prev))
		} else {
			seen[c.ID] = i
		}
		if c.Text == "" {
			errs = errs.Append(field+".text", errors.New("cannot be empty"))
		}
	}

	for i, r := range b.VerificationResults {
		if r.CitationID == "" {
			errs = errs.Append(fmt.Sprintf("verificationResults[%d].citationId", i), errors.New("cannot be empty"))
		}
	}

	return errs.ToError()
}

// Warnings returns non-fatal data issues.
func (b *Brief) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	counts := make(map[string]int)
	for _, r := range b.VerificationResults {
		counts[r.CitationID]++
		if _, ok := b.CitationByID(r.CitationID); !ok && counts[r.CitationID] == 1 {
			warnings = append(warnings, ValidationWarning{
				Category: "Results",
				Item:     r.CitationID,
				Message:  "result references an unknown citation",
			})
		}
	}

	for _, c := range b.Citations {
		if counts[c.ID] > 1 {
			warnings = append(warnings, ValidationWarning{
				Category: "Results",
				Item:     c.ID,
				Message:  fmt.Sprintf("%d results for one citation, only the first is used", counts[c.ID]),
			})
		}
		if counts[c.ID] == 0 {
			warnings = append(warnings, ValidationWarning{
				Category: "Citations",
				Item:     c.ID,
				Message:  "citation has no verification result and renders as plain text",
			})
		}
		if c.CaseName != "" && !strings.Contains(c.Text, c.CaseName) {
			warnings = append(warnings, ValidationWarning{
				Category: "Citations",
				Item:     c.ID,
				Message:  fmt.Sprintf("case name %q does not appear in the citation text", c.CaseName),
			})
		}
	}

	return warnings
}

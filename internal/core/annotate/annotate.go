// Package annotate runs the citation-annotation pipeline over a brief:
// placeholder rewrite, markup parse and marker substitution.
package annotate

import (
	"fmt"

	"github.com/colonyops/citeview/internal/core/brief"
	"github.com/colonyops/citeview/internal/core/markup"
	"github.com/rs/zerolog"
)

// Document is an annotated brief ready for display.
type Document struct {
	Brief *brief.Brief
	Root  markup.Node

	// Unresolved lists placeholder indexes that did not map to a citation
	// and were left in the text.
	Unresolved []string
	// Dropped lists marker ids that did not resolve and were removed.
	Dropped []string
}

// Annotate builds the annotated document for b.
func Annotate(b *brief.Brief) *Document {
	doc := &Document{
		Brief:      b,
		Unresolved: markup.Unresolved(b.Content, b.Citations),
	}

	content := markup.Rewrite(b.Content, b.Citations)
	doc.Root = markup.Walk(markup.Parse(content), func(id string) bool {
		if _, ok := b.CitationByID(id); ok {
			return true
		}
		doc.Dropped = append(doc.Dropped, id)
		return false
	})

	return doc
}

// Cites returns the citation ids that appear as tags, in document order.
// An id may repeat when the brief cites the same case twice.
func (d *Document) Cites() []string {
	return markup.Cites(d.Root)
}

// Warnings returns the brief's data warnings plus the pipeline's own
// degradations.
func (d *Document) Warnings() []brief.ValidationWarning {
	warnings := d.Brief.Warnings()

	for _, idx := range d.Unresolved {
		warnings = append(warnings, brief.ValidationWarning{
			Category: "Content",
			Item:     fmt.Sprintf("[[CITATION:%s]]", idx),
			Message:  "placeholder index is out of range and is shown as written",
		})
	}
	for _, id := range d.Dropped {
		warnings = append(warnings, brief.ValidationWarning{
			Category: "Content",
			Item:     id,
			Message:  "marker references an unknown citation and was removed",
		})
	}

	return warnings
}

// LogWarnings writes every warning at warn level.
func (d *Document) LogWarnings(log zerolog.Logger) {
	for _, w := range d.Warnings() {
		log.Warn().
			Str("category", w.Category).
			Str("item", w.Item).
			Msg(w.Message)
	}
}

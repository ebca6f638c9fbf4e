package brief

import (
	corebrief "github.com/colonyops/citeview/internal/core/brief"
	"github.com/colonyops/citeview/internal/core/citation"
	"github.com/colonyops/citeview/internal/core/config"
)

// TagFactory builds the tag for each citation id found in the brief body.
type TagFactory struct {
	Brief      *corebrief.Brief
	Classifier citation.Classifier
	Unverified config.UnverifiedMode
	SelectedID string
	OnActivate ActivateFunc
}

// Tag returns the tag for id. Unknown ids report false.
func (f TagFactory) Tag(id string) (Tag, bool) {
	if f.Brief == nil {
		return Tag{}, false
	}
	c, ok := f.Brief.CitationByID(id)
	if !ok {
		return Tag{}, false
	}

	meta := f.Classifier.Classify(c)
	result := f.Brief.ResultFor(id)
	if result != nil {
		return RenderTag(c, result, meta, c.ID == f.SelectedID, f.OnActivate), true
	}

	if f.Unverified == config.UnverifiedFlagged {
		return RenderTag(c, nil, meta, false, nil).WithUnverifiedFlag(), true
	}
	return PlainTag(c, meta), true
}

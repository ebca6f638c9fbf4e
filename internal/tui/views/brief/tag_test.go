package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corebrief "github.com/colonyops/citeview/internal/core/brief"
	"github.com/colonyops/citeview/internal/core/citation"
)

func TestRenderTag_Landmark(t *testing.T) {
	b := iqbalBrief()
	c := b.Citations[0]
	r := b.ResultFor("c1")

	tag := RenderTag(c, r, citation.Classify(c), false, func(corebrief.Citation, corebrief.VerificationResult) {})

	assert.Equal(t, VariantLandmark, tag.Variant)
	require.Len(t, tag.Units, 3)

	main := tag.Units[0]
	assert.Equal(t, UnitMain, main.Kind)
	assert.Contains(t, main.Text(), "Ashcroft v. Iqbal, 556 U.S. 662 (2009)")
	assert.Equal(t, "Citation: Ashcroft v. Iqbal, 556 U.S. 662 (2009). Press Enter to view details.", main.Label)

	var caseName string
	for _, s := range main.Segments {
		if s.Role == RoleCaseName {
			caseName = s.Text
		}
	}
	assert.Equal(t, "Iqbal", caseName)

	assert.Equal(t, UnitCourtBadge, tag.Units[1].Kind)
	assert.Equal(t, "SCOTUS", tag.Units[1].Text())
	assert.Equal(t, UnitCategoryBadge, tag.Units[2].Kind)
	assert.Equal(t, "Pleading Standard Strong", tag.Units[2].Text())

	for i := range tag.Units {
		assert.True(t, tag.UnitActivatable(i))
	}
}

func TestRenderTag_LandmarkWithoutCaseNameInText(t *testing.T) {
	c := corebrief.Citation{ID: "x", Text: "Bell Atlantic Corp., 550 U.S. 544", CaseName: "Twombly", Reporter: "550 U.S. 544"}
	r := &corebrief.VerificationResult{CitationID: "x", Status: "Verified"}

	tag := RenderTag(c, r, citation.Classify(c), false, nil)

	for _, s := range tag.Units[0].Segments {
		assert.NotEqual(t, RoleCaseName, s.Role)
	}
	assert.Contains(t, tag.Units[0].Text(), c.Text)
}

func TestRenderTag_Standard(t *testing.T) {
	c := corebrief.Citation{
		ID:       "h",
		Text:     "Henderson v. Sierra Vista Holdings, 593 F.3d 1044 (9th Cir. 2010)",
		CaseName: "Henderson v. Sierra Vista Holdings",
		Reporter: "593 F.3d 1044",
	}
	r := &corebrief.VerificationResult{CitationID: "h", Status: "Verified"}

	tag := RenderTag(c, r, citation.Classify(c), false, nil)

	assert.Equal(t, VariantStandard, tag.Variant)
	require.Len(t, tag.Units, 1)

	text := tag.Units[0].Text()
	assert.Contains(t, text, "C Henderson v. Sierra Vista Holdings")
	assert.Contains(t, text, " | 9th Cir. | PSLRA | Medium")
	assert.Contains(t, text, "⧉")
	assert.Contains(t, text, "›")
}

func TestRenderTag_StandardOmitsEmptyFields(t *testing.T) {
	c := corebrief.Citation{ID: "d", Text: "Dura Pharmaceuticals v. Broudo", CaseName: "Dura Pharmaceuticals", Reporter: "544 U.S. 336"}
	meta := citation.Metadata{Category: "PSLRA", Color: citation.ColorPurple, Icon: "D"}

	tag := RenderTag(c, &corebrief.VerificationResult{CitationID: "d"}, meta, false, nil)

	text := tag.Units[0].Text()
	assert.Contains(t, text, "D Dura Pharmaceuticals | PSLRA")
	assert.NotContains(t, text, "| |")
}

func TestTag_Activate(t *testing.T) {
	b := iqbalBrief()
	c := b.Citations[0]

	t.Run("invokes callback with citation and result", func(t *testing.T) {
		var gotC corebrief.Citation
		var gotR corebrief.VerificationResult
		calls := 0
		tag := RenderTag(c, b.ResultFor("c1"), citation.Classify(c), false, func(c corebrief.Citation, r corebrief.VerificationResult) {
			calls++
			gotC, gotR = c, r
		})

		assert.True(t, tag.Activate())
		assert.Equal(t, 1, calls)
		assert.Equal(t, "c1", gotC.ID)
		assert.Equal(t, "Verified", gotR.Status)
	})

	t.Run("no result is inert", func(t *testing.T) {
		calls := 0
		tag := RenderTag(c, nil, citation.Classify(c), false, func(corebrief.Citation, corebrief.VerificationResult) { calls++ })

		assert.False(t, tag.Activatable())
		assert.False(t, tag.Activate())
		assert.Zero(t, calls)
		assert.Equal(t, "Citation: Ashcroft v. Iqbal, 556 U.S. 662 (2009). Not verified.", tag.Units[0].Label)
	})

	t.Run("plain tag is inert", func(t *testing.T) {
		tag := PlainTag(c, citation.Classify(c))
		assert.Equal(t, VariantPlain, tag.Variant)
		assert.False(t, tag.Activate())
		assert.Equal(t, c.Text, tag.Units[0].Text())
	})
}

func TestTag_Describe(t *testing.T) {
	b := iqbalBrief()
	c := b.Citations[0]
	noop := func(corebrief.Citation, corebrief.VerificationResult) {}

	tag := RenderTag(c, b.ResultFor("c1"), citation.Classify(c), false, noop)
	assert.Equal(t, "button, not pressed: Citation: Ashcroft v. Iqbal, 556 U.S. 662 (2009). Press Enter to view details.", tag.Describe(0))

	selected := RenderTag(c, b.ResultFor("c1"), citation.Classify(c), true, noop)
	assert.Contains(t, selected.Describe(1), "button, pressed: SCOTUS - Citation:")

	flagged := RenderTag(c, nil, citation.Classify(c), false, nil).WithUnverifiedFlag()
	last := len(flagged.Units) - 1
	assert.Equal(t, UnitFlag, flagged.Units[last].Kind)
	assert.Equal(t, "text: unverified", flagged.Describe(last))
	assert.Equal(t, "text: Citation: Ashcroft v. Iqbal, 556 U.S. 662 (2009). Not verified.", flagged.Describe(0))

	assert.Empty(t, tag.Describe(99))
}

func TestRenderTag_SeverityGlyph(t *testing.T) {
	c := iqbalBrief().Citations[0]

	tests := []struct {
		severity corebrief.Severity
		want     string
	}{
		{corebrief.SeverityCritical, "! "},
		{corebrief.SeverityWarning, "~ "},
		{corebrief.SeverityNone, "✓ "},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			r := &corebrief.VerificationResult{CitationID: "c1", Severity: tt.severity}
			tag := RenderTag(c, r, citation.Classify(c), false, nil)

			first := tag.Units[0].Segments[0]
			assert.Equal(t, RoleSeverity, first.Role)
			assert.Equal(t, tt.want, first.Text)
		})
	}
}

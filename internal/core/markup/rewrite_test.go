package markup

import (
	"testing"

	"github.com/colonyops/citeview/internal/core/brief"
	"github.com/stretchr/testify/assert"
)

var rewriteCitations = []brief.Citation{
	{ID: "c1", Text: "Ashcroft v. Iqbal"},
	{ID: "twombly-2007", Text: "Bell Atlantic Corp. v. Twombly"},
}

func TestRewrite(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		citations []brief.Citation
		want      string
	}{
		{
			name:      "single placeholder",
			content:   "See [[CITATION:1]] holding...",
			citations: rewriteCitations,
			want:      "See " + Marker("c1") + " holding...",
		},
		{
			name:      "multiple and repeated",
			content:   "[[CITATION:2]], [[CITATION:1]]; [[CITATION:2]]",
			citations: rewriteCitations,
			want:      Marker("twombly-2007") + ", " + Marker("c1") + "; " + Marker("twombly-2007"),
		},
		{
			name:      "out of range is left unchanged",
			content:   "See [[CITATION:3]] and [[CITATION:0]].",
			citations: rewriteCitations,
			want:      "See [[CITATION:3]] and [[CITATION:0]].",
		},
		{
			name:      "empty citation list leaves placeholder unconsumed",
			content:   "See [[CITATION:1]].",
			citations: nil,
			want:      "See [[CITATION:1]].",
		},
		{
			name:      "malformed placeholders are ignored",
			content:   "[[CITATION:x]] [[CITATION:]] [CITATION:1]",
			citations: rewriteCitations,
			want:      "[[CITATION:x]] [[CITATION:]] [CITATION:1]",
		},
		{
			name:      "no placeholders",
			content:   "Plain *text* with `code`.",
			citations: rewriteCitations,
			want:      "Plain *text* with `code`.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rewrite(tt.content, tt.citations))
		})
	}
}

func TestRewrite_IdempotentWithoutPlaceholders(t *testing.T) {
	once := Rewrite("See [[CITATION:1]].", rewriteCitations)
	assert.Equal(t, once, Rewrite(once, rewriteCitations))
}

func TestRewrite_HugeIndexDoesNotPanic(t *testing.T) {
	in := "[[CITATION:99999999999999999999999]]"
	assert.Equal(t, in, Rewrite(in, rewriteCitations))
}

func TestUnresolved(t *testing.T) {
	got := Unresolved("[[CITATION:1]] [[CITATION:5]] [[CITATION:2]] [[CITATION:0]]", rewriteCitations)
	assert.Equal(t, []string{"5", "0"}, got)

	assert.Empty(t, Unresolved("nothing here", rewriteCitations))
}

package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"

	corebrief "github.com/colonyops/citeview/internal/core/brief"
)

func TestMatchCitations(t *testing.T) {
	b := abcBrief(false)

	ids := func(cs []corebrief.Citation) []string {
		var out []string
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"alpha", []string{"a"}},
		{"CHARLIE", []string{"c"}},
		{"F.3d", []string{"a", "c"}},
		{"bravo", nil}, // not navigable
		{"   ", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(MatchCitations(b, tt.query)))
		})
	}

	assert.Nil(t, MatchCitations(nil, "alpha"))
}

func TestSearchBox_AcceptsText(t *testing.T) {
	s := NewSearchBox()
	assert.True(t, s.AcceptsText())
	assert.False(t, documentTarget{}.AcceptsText())

	assert.False(t, s.IsActive())
	s.Open()
	assert.True(t, s.IsActive())
	s.Close()
	assert.False(t, s.IsActive())
	assert.Empty(t, s.View(0))
}

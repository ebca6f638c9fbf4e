package brief

import (
	tea "charm.land/bubbletea/v2"

	corebrief "github.com/colonyops/citeview/internal/core/brief"
)

func iqbalBrief() *corebrief.Brief {
	return &corebrief.Brief{
		Title:   "Opposition",
		Content: "See [[CITATION:1]] holding...",
		Citations: []corebrief.Citation{
			{
				ID:       "c1",
				Text:     "Ashcroft v. Iqbal, 556 U.S. 662 (2009)",
				CaseName: "Iqbal",
				Reporter: "556 U.S.",
				Year:     2009,
			},
		},
		VerificationResults: []corebrief.VerificationResult{
			{CitationID: "c1", Status: "Verified", Message: "Citation verified."},
		},
	}
}

// abcBrief has three citations; b has no verification result unless
// withB is set.
func abcBrief(withB bool) *corebrief.Brief {
	b := &corebrief.Brief{
		Title:   "ABC",
		Content: "First [[CITATION:1]], then [[CITATION:2]], finally [[CITATION:3]].",
		Citations: []corebrief.Citation{
			{ID: "a", Text: "Alpha v. One, 1 F.3d 1 (2001)", CaseName: "Alpha v. One", Reporter: "1 F.3d 1"},
			{ID: "b", Text: "Bravo v. Two, 2 F.3d 2 (2002)", CaseName: "Bravo v. Two", Reporter: "2 F.3d 2"},
			{ID: "c", Text: "Charlie v. Three, 3 F.3d 3 (2003)", CaseName: "Charlie v. Three", Reporter: "3 F.3d 3"},
		},
		VerificationResults: []corebrief.VerificationResult{
			{CitationID: "a", Status: "Verified"},
			{CitationID: "c", Status: "Verified"},
		},
	}
	if withB {
		b.VerificationResults = append(b.VerificationResults, corebrief.VerificationResult{CitationID: "b", Status: "Verified"})
	}
	return b
}

// send delivers msgs in order and settles the commands they produce. While
// the search box is open its commands are not run, since the cursor blink
// never settles.
func send(v View, msgs ...tea.Msg) View {
	for _, msg := range msgs {
		var cmd tea.Cmd
		v, cmd = v.Update(msg)
		v = settle(v, cmd)
	}
	return v
}

func settle(v View, cmd tea.Cmd) View {
	if cmd == nil || v.search.IsActive() {
		return v
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			v = settle(v, c)
		}
	default:
		var next tea.Cmd
		v, next = v.Update(msg)
		v = settle(v, next)
	}
	return v
}

package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/citeview/pkg/tuitest"
)

func TestInfoDialog_RendersSections(t *testing.T) {
	d := NewInfoDialog(
		"Brief Info",
		[]InfoSection{
			{
				Title: "Brief",
				Items: []InfoItem{
					{Label: "Title", Value: "Opposition"},
					{Label: "Verified", Value: "6 of 7", Status: InfoStatusPass},
				},
			},
			{
				Title: "Warnings",
				Items: []InfoItem{
					{Label: "c7", Value: "no result", Status: InfoStatusWarn},
					{Label: "cfg", Value: "bad", Status: InfoStatusFail},
				},
			},
			{Title: "Build", Empty: "none"},
		},
		120,
		40,
	)

	out := tuitest.StripANSI(d.Overlay("bg", 120, 40))
	assert.Contains(t, out, "Brief Info")
	assert.Contains(t, out, "Opposition")
	assert.Contains(t, out, "6 of 7")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "~ c7")
	assert.Contains(t, out, "! cfg")
	assert.Contains(t, out, "none")
}

func TestInfoDialog_ScrollIndicator(t *testing.T) {
	items := make([]InfoItem, 0, 50)
	for range 50 {
		items = append(items, InfoItem{Label: "item", Value: "value"})
	}

	d := NewInfoDialog("Warnings", []InfoSection{{Title: "Many", Items: items}}, 70, 20)

	out := tuitest.StripANSI(d.View())
	assert.Contains(t, out, "(0%)")

	for range 100 {
		d.ScrollDown()
	}
	assert.Contains(t, tuitest.StripANSI(d.View()), "(100%)")

	d.ScrollUp()
	assert.NotContains(t, tuitest.StripANSI(d.View()), "(100%)")
}

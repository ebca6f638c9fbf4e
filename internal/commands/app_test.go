package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/citeview/internal/tui"
)

func runApp(t *testing.T, args ...string) string {
	t.Helper()
	dir := t.TempDir()

	app := NewApp(NewFlags(), tui.BuildInfo{Version: "test", Commit: "abcdef123", Date: "now"})
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out

	argv := append([]string{
		"citeview",
		"--log-file", filepath.Join(dir, "citeview.log"),
		"--config", filepath.Join(dir, "config.yaml"),
	}, args...)
	require.NoError(t, app.Run(context.Background(), argv))
	return out.String()
}

func TestNewApp_Commands(t *testing.T) {
	app := NewApp(NewFlags(), tui.BuildInfo{Version: "v1.2.3", Commit: "abcdef123", Date: "today"})

	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"view", "render", "citations", "inspect", "validate"}, names)
	assert.Equal(t, "v1.2.3 (abcdef1) today", app.Version)
}

func TestNewApp_Render(t *testing.T) {
	out := runApp(t, "render", "--plain", "--width", "200")

	assert.Contains(t, out, "Opposition to Motion to Dismiss")
	assert.Contains(t, out, "SCOTUS")
}

func TestNewApp_RenderFileBrief(t *testing.T) {
	path := writeBrief(t, "brief.yaml", testBriefYAML)

	out := runApp(t, "--brief", path, "render", "--plain", "--width", "200")

	assert.Contains(t, out, "Test Brief")
	assert.Contains(t, out, "Ashcroft v.")
	assert.Contains(t, out, "Pleading Standard Strong")
}

func TestNewApp_CitationsJSON(t *testing.T) {
	out := runApp(t, "citations", "--json")

	var infos []CitationInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 7)
	assert.Equal(t, "c1", infos[0].ID)
	assert.True(t, infos[0].Navigable)
}

func TestNewApp_CitationsTable(t *testing.T) {
	out := runApp(t, "citations")

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "Twombly")
	assert.Contains(t, out, "Not Found")
}

func TestNewApp_InspectByID(t *testing.T) {
	out := ansi.Strip(runApp(t, "inspect", "--width", "80", "c2"))

	assert.Contains(t, out, "Iqbal")
	assert.Contains(t, out, "Verified")
}

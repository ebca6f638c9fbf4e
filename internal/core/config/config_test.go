package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/colonyops/citeview/internal/core/brief"
	"github.com/colonyops/citeview/internal/core/citation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, UnverifiedPlain, cfg.Unverified)
	assert.Equal(t, DefaultDetailWidth, cfg.Detail.Width)
	assert.False(t, cfg.Watch)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := writeConfig(t, `
theme: gruvbox
unverified: flagged
copy_command: pbcopy
watch: true
detail:
  width: 60
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, UnverifiedFlagged, cfg.Unverified)
	assert.Equal(t, "pbcopy", cfg.CopyCommand)
	assert.True(t, cfg.Watch)
	assert.Equal(t, 60, cfg.Detail.Width)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "watch: true\n"))
	require.NoError(t, err)

	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, UnverifiedPlain, cfg.Unverified)
	assert.Equal(t, DefaultDetailWidth, cfg.Detail.Width)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown theme", "theme: neon\n", `unknown theme "neon"`},
		{"unknown unverified mode", "unverified: hidden\n", `unverified must be`},
		{"negative width", "detail:\n  width: -1\n", "detail.width must be at least 1"},
		{"bad yaml", "theme: [\n", "parse config file"},
		{
			"bad classifier rule",
			"classifier:\n  rules:\n    - fragments: []\n      color: green\n",
			"classifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCitationClassifier_Override(t *testing.T) {
	path := writeConfig(t, `
classifier:
  landmark: [smith]
  circuit_reporters: ["F.4th"]
  rules:
    - fragments: [smith]
      category: Standing
      strength: Strong
      color: orange
      icons:
        - fragment: smith
          icon: S
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	cl := cfg.CitationClassifier()
	meta := cl.Classify(brief.Citation{CaseName: "Smith v. Jones"})
	assert.Equal(t, citation.Metadata{
		Court:    citation.CourtSCOTUS,
		Category: "Standing",
		Strength: "Strong",
		Color:    citation.ColorOrange,
		Icon:     "S",
	}, meta)

	meta = cl.Classify(brief.Citation{CaseName: "Iqbal", Reporter: "1 F.4th 1"})
	assert.Equal(t, citation.CourtNinthCir, meta.Court)
	assert.Empty(t, meta.Category)
}

func TestCitationClassifier_DefaultTables(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, citation.DefaultClassifier(), cfg.CitationClassifier())
}

func TestPalette_FallsBackToDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "missing"

	want, _ := Load("")
	assert.Equal(t, want.Palette(), cfg.Palette())
}

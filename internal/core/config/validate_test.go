package config

import (
	"testing"

	"github.com/colonyops/citeview/internal/core/citation"
	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	return &cfg
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	cfg.CopyCommand = "cat"

	require.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	cfg := validConfig(t)
	dir := t.TempDir()

	err := cfg.ValidateDeep(dir)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "is a directory")
}

func TestValidateDeep_CopyCommandNotFound(t *testing.T) {
	cfg := validConfig(t)
	cfg.CopyCommand = "nonexistent-copy-tool-12345 --flag"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "copy_command", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "executable not found: nonexistent-copy-tool-12345")
}

func TestValidateDeep_RunsValidateFirst(t *testing.T) {
	cfg := validConfig(t)
	cfg.Theme = "neon"

	err := cfg.ValidateDeep("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestValidate_ClassifierRules(t *testing.T) {
	cfg := validConfig(t)
	cfg.Classifier = &citation.Classifier{
		Rules: []citation.Rule{
			{Fragments: []string{"ok"}, Color: citation.ColorBlue},
			{Fragments: []string{""}, Color: "green"},
			{Color: citation.ColorPurple, Icons: []citation.IconRule{{Fragment: "x"}}},
		},
	}

	err := cfg.validateClassifier()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 4)
	assert.Equal(t, "rules[1].fragments[0]", fieldErrs[0].Field)
	assert.Equal(t, "rules[1].color", fieldErrs[1].Field)
	assert.Equal(t, "rules[2].fragments", fieldErrs[2].Field)
	assert.Equal(t, "rules[2].icons[0]", fieldErrs[3].Field)
}

func TestWarnings(t *testing.T) {
	cfg := validConfig(t)
	cfg.Classifier = &citation.Classifier{
		Rules: []citation.Rule{{Fragments: []string{"a"}, Category: "Only", Color: citation.ColorBlue}},
	}

	warnings := cfg.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "Copy", warnings[0].Category)
	assert.Equal(t, "Classifier", warnings[1].Category)
	assert.Equal(t, "rules[0]", warnings[1].Item)

	cfg.CopyCommand = "cat"
	cfg.Classifier = nil
	assert.Empty(t, cfg.Warnings())
}

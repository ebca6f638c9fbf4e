package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/colonyops/citeview/internal/core/citation"
	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration
// including file accessibility. The configPath argument specifies the config
// file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("copy_command", c.CopyCommand, commandExists),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.CopyCommand == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Copy",
			Message:  "copy_command is not set, copying citations is disabled",
		})
	}

	if c.Classifier != nil {
		for i, rule := range c.Classifier.Rules {
			if (rule.Category == "") != (rule.Strength == "") {
				warnings = append(warnings, ValidationWarning{
					Category: "Classifier",
					Item:     fmt.Sprintf("rules[%d]", i),
					Message:  "category and strength must both be set for the badge to show",
				})
			}
		}
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// commandExists validates that the first word of a shell command resolves
// to an executable.
func commandExists(cmd string) error {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return nil
	}
	if _, err := exec.LookPath(fields[0]); err != nil {
		return fmt.Errorf("executable not found: %s", fields[0])
	}
	return nil
}

// validateClassifier checks the classifier override tables.
func (c *Config) validateClassifier() error {
	if c.Classifier == nil {
		return nil
	}

	var errs criterio.FieldErrorsBuilder
	for i, rule := range c.Classifier.Rules {
		prefix := fmt.Sprintf("rules[%d]", i)
		if len(rule.Fragments) == 0 {
			errs = errs.Append(prefix+".fragments", errors.New("at least one fragment is required"))
		}
		for j, f := range rule.Fragments {
			if strings.TrimSpace(f) == "" {
				errs = errs.Append(fmt.Sprintf("%s.fragments[%d]", prefix, j), errors.New("cannot be empty"))
			}
		}
		switch rule.Color {
		case citation.ColorBlue, citation.ColorOrange, citation.ColorPurple:
		default:
			errs = errs.Append(prefix+".color", fmt.Errorf("unknown color %q", rule.Color))
		}
		for j, ir := range rule.Icons {
			if ir.Fragment == "" || ir.Icon == "" {
				errs = errs.Append(fmt.Sprintf("%s.icons[%d]", prefix, j), errors.New("fragment and icon are required"))
			}
		}
	}

	return errs.ToError()
}

package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog/log"

	corebrief "github.com/colonyops/citeview/internal/core/brief"
	"github.com/colonyops/citeview/internal/core/config"
	"github.com/colonyops/citeview/internal/core/logging"
	"github.com/colonyops/citeview/pkg/iojson"
)

// sampleSource names the embedded brief in logs.
const sampleSource = "sample"

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Watch      bool

	// Brief selects the brief file; "-" reads JSON from stdin and no value
	// uses the embedded sample.
	Brief iojson.FileReader[corebrief.Brief]

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// NewFlags returns flags with the brief reader configured.
func NewFlags() *Flags {
	return &Flags{
		Brief: iojson.FileReader[corebrief.Brief]{
			Name:    "brief",
			Aliases: []string{"b"},
			Usage:   `brief file (.yaml, .yml or .json; "-" reads JSON from stdin); defaults to the built-in sample`,
			EnvVars: []string{"CITEVIEW_BRIEF"},
		},
	}
}

// BriefSource returns the brief path, "-" or "sample".
func (f *Flags) BriefSource() string {
	if !f.Brief.IsSet() {
		return sampleSource
	}
	return f.Brief.Value()
}

// BriefPath returns the file the brief is read from, or "" for the sample
// and stdin.
func (f *Flags) BriefPath() string {
	if !f.Brief.IsSet() || f.Brief.IsStdin() {
		return ""
	}
	return f.Brief.Value()
}

// LoadBrief reads the selected brief and returns a context carrying its
// source for logging.
func (f *Flags) LoadBrief(ctx context.Context) (context.Context, *corebrief.Brief, error) {
	source := f.BriefSource()
	ctx = logging.WithBrief(ctx, source)

	var (
		b   *corebrief.Brief
		err error
	)
	switch {
	case !f.Brief.IsSet():
		b, err = corebrief.Sample()
	case f.Brief.IsStdin():
		b, err = f.decodeStdin()
	default:
		b, err = corebrief.Load(f.Brief.Value())
	}
	if err != nil {
		return ctx, nil, fmt.Errorf("load brief %s: %w", source, err)
	}

	log.Info().Ctx(ctx).
		Str("title", b.Title).
		Int("citations", len(b.Citations)).
		Int("results", len(b.VerificationResults)).
		Msg("brief loaded")

	return ctx, b, nil
}

func (f *Flags) decodeStdin() (*corebrief.Brief, error) {
	r, err := f.Brief.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return corebrief.Decode(r, corebrief.FormatJSON)
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "citeview", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/citeview/citeview.log
// On Linux: $XDG_STATE_HOME/citeview/citeview.log (defaults to ~/.local/state/citeview/citeview.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "citeview", "citeview.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "citeview", "citeview.log")
	}

	return filepath.Join(home, ".local", "state", "citeview", "citeview.log")
}

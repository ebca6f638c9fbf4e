package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Stdin is the flag value that selects standard input.
const Stdin = "-"

// FileReader binds a path flag whose value "-" reads standard input.
type FileReader[T any] struct {
	Name    string
	Aliases []string
	Usage   string
	EnvVars []string

	value string

	// stdin and isTerminal are swapped in tests.
	stdin      io.Reader
	isTerminal func() bool
}

// Flag returns the cli flag bound to the reader.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	name := fr.Name
	if name == "" {
		name = "file"
	}
	usage := fr.Usage
	if usage == "" {
		usage = `path to JSON file ("-" reads from stdin)`
	}
	return &cli.StringFlag{
		Name:        name,
		Aliases:     fr.Aliases,
		Usage:       usage,
		Sources:     cli.EnvVars(fr.EnvVars...),
		Destination: &fr.value,
	}
}

// Value returns the raw flag value.
func (fr *FileReader[T]) Value() string {
	return fr.value
}

// Set overrides the flag value.
func (fr *FileReader[T]) Set(v string) {
	fr.value = v
}

// IsSet reports whether a path or "-" was given.
func (fr *FileReader[T]) IsSet() bool {
	return fr.value != ""
}

// IsStdin reports whether the reader reads standard input.
func (fr *FileReader[T]) IsStdin() bool {
	return fr.value == Stdin
}

// Open opens the file or standard input. Standard input is refused when it
// is a terminal, since nothing would ever arrive.
func (fr *FileReader[T]) Open() (io.ReadCloser, error) {
	switch fr.value {
	case "":
		return nil, fmt.Errorf("no input provided")
	case Stdin:
		isTerminal := fr.isTerminal
		if isTerminal == nil {
			isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
		}
		if isTerminal() {
			return nil, fmt.Errorf("no input provided (stdin is a terminal); pipe JSON input or pass a file path")
		}
		if fr.stdin != nil {
			return io.NopCloser(fr.stdin), nil
		}
		return io.NopCloser(os.Stdin), nil
	default:
		f, err := os.Open(fr.value)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		return f, nil
	}
}

// Read opens the input and decodes it as JSON.
func (fr *FileReader[T]) Read() (T, error) {
	var input T

	r, err := fr.Open()
	if err != nil {
		return input, err
	}
	defer func() { _ = r.Close() }()

	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}

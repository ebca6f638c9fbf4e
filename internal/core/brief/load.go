package brief

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the decoder used for a brief document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the document format from a file extension. Unknown
// extensions fall back to YAML, which also accepts JSON input.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

//go:embed sample.yaml
var sampleYAML []byte

// Sample returns the brief bundled with the binary. It is used when no
// brief file is given.
func Sample() (*Brief, error) {
	b, err := Decode(bytes.NewReader(sampleYAML), FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded sample: %w", err)
	}
	return b, nil
}

// Load reads and validates a brief from path.
func Load(path string) (*Brief, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open brief: %w", err)
	}
	defer func() { _ = f.Close() }()

	b, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Decode parses a brief document and runs structural validation on it.
func Decode(r io.Reader, format Format) (*Brief, error) {
	var b Brief

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&b); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&b); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("decode yaml: empty document")
			}
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported brief format %q", format)
	}

	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid brief: %w", err)
	}
	return &b, nil
}

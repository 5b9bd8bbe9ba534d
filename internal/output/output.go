package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/rizzo/internal/document"
	"github.com/firefly-engineering/rizzo/internal/system"
)

// Format is an encoding for the merged config.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Destinations that name a stream rather than a file.
const (
	Stdout = "STDOUT"
	Stderr = "STDERR"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (must be json, yaml, or toml)", name)
	}
}

// Encode renders doc in the given format. JSON is indented by two spaces
// with sorted keys and a trailing newline.
func Encode(doc document.Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(data, '\n'), nil

	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(document.Plain(doc)); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return buf.Bytes(), nil

	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(document.Plain(doc)); err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Sink writes rendered output to STDOUT, STDERR or a file.
type Sink struct {
	Stdout io.Writer
	Stderr io.Writer
	FS     system.FileSystem
}

// Write sends data to dest: the Stdout or Stderr stream for those names,
// otherwise the file at dest, which is created or truncated.
func (s *Sink) Write(dest string, data []byte) error {
	switch dest {
	case Stdout:
		_, err := s.Stdout.Write(data)
		return err
	case Stderr:
		_, err := s.Stderr.Write(data)
		return err
	default:
		path := system.ExpandPath(dest)
		if err := s.FS.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}
}

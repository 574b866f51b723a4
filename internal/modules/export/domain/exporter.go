package domain

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrExporterDisabled  = errors.New("exporter is disabled")
	ErrChecksumMismatch  = errors.New("exporter checksum mismatch")
	ErrFormatUnsupported = errors.New("export format unsupported")
	ErrExporterTimeout   = errors.New("exporter timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one external exporter binary and the formats it serves.
type Manifest struct {
	Name    string   `yaml:"name"`
	Version string   `yaml:"version"`
	Binary  string   `yaml:"binary"`
	SHA256  string   `yaml:"sha256"`
	Enabled bool     `yaml:"enabled"`
	Formats []string `yaml:"formats"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("exporter name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("exporter version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("exporter binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("exporter sha256 must be lowercase 64-char hex")
	}
	if len(m.Formats) == 0 {
		return fmt.Errorf("exporter formats are required")
	}
	seen := map[string]struct{}{}
	for _, format := range m.Formats {
		if format == "" {
			return fmt.Errorf("exporter format must not be empty")
		}
		if _, ok := seen[format]; ok {
			return fmt.Errorf("duplicate format: %s", format)
		}
		seen[format] = struct{}{}
	}
	return nil
}

func (m Manifest) HasFormat(format string) bool {
	for _, f := range m.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Descriptor is what a running exporter reports about itself.
type Descriptor struct {
	Name    string
	Version string
	Formats []string
}

// Document is the explanation handed to an exporter.
type Document struct {
	Title    string
	Markdown string
}

func (d Document) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("document title is required")
	}
	if d.Markdown == "" {
		return fmt.Errorf("document body is required")
	}
	return nil
}

// Rendering is the exporter's output: file content plus the extension it
// should be written under.
type Rendering struct {
	Content   string
	Extension string
}

func (r Rendering) Validate() error {
	if r.Content == "" {
		return fmt.Errorf("rendering content is required")
	}
	if r.Extension == "" {
		return fmt.Errorf("rendering extension is required")
	}
	return nil
}

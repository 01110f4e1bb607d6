package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ragicss/sizebudget/internal/domain"
)

// Format selects how a RunResult is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ValidFormats enumerates all recognized output formats.
var ValidFormats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range ValidFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (valid: text, json, yaml)", s)
}

// Encode writes run as JSON or YAML. Text output is rendered by the tui
// package and is not handled here.
func Encode(w io.Writer, format Format, run *domain.RunResult) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(run); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not machine-readable", format)
	}
}

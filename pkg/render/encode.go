package render

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/voltexlighting/lumenplan/pkg/errors"
	"github.com/voltexlighting/lumenplan/pkg/pipeline"
)

// Format identifies an output encoding for calculation artifacts.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "svg":
		return FormatSVG, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output format: %s", s)
	}
}

// ParseFormats splits a comma-separated format list, dropping duplicates
// while preserving first-seen order.
func ParseFormats(s string) ([]Format, error) {
	seen := make(map[Format]bool)
	var out []Format
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string { return string(f) }

// MarshalResultJSON encodes a calculation result as indented JSON.
func MarshalResultJSON(res *pipeline.Result) ([]byte, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode result as JSON")
	}
	return append(data, '\n'), nil
}

// MarshalResultYAML encodes a calculation result as YAML. The document goes
// through a JSON round trip first so the YAML keys match the JSON field
// names rather than Go identifiers.
func MarshalResultYAML(res *pipeline.Result) ([]byte, error) {
	data, err := json.Marshal(res)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode result")
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to re-read encoded result")
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode result as YAML")
	}
	return out, nil
}

// UnmarshalResultJSON decodes a result previously written by
// MarshalResultJSON.
func UnmarshalResultJSON(data []byte) (*pipeline.Result, error) {
	var res pipeline.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to parse result JSON")
	}
	return &res, nil
}

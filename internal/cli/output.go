package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats selectable with --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// validateOutputFormat rejects anything but the supported formats.
func validateOutputFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("invalid argument %q for \"--output\": must be one of text, json, yaml", format)
	}
}

// marshalOutput renders v in the requested structured format. Text
// rendering is command-specific and handled by the callers.
func marshalOutput(format string, v interface{}) (string, error) {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		return "", fmt.Errorf("no structured encoding for format %q", format)
	}
}

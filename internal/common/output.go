package common

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats of the tags and inspect commands.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatText = "text"
)

// ParseFormat validates a --format value. Empty means YAML.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "", FormatYAML:
		return FormatYAML, nil
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want yaml, json or text)", s)
	}
}

// WriteStructured writes v as YAML or indented JSON.
func WriteStructured(w io.Writer, v interface{}, format string) error {
	var outputData []byte
	var marshalErr error
	if format == FormatJSON {
		outputData, marshalErr = json.MarshalIndent(v, "", "  ")
		outputData = append(outputData, '\n')
	} else {
		outputData, marshalErr = yaml.Marshal(v)
	}
	if marshalErr != nil {
		return fmt.Errorf("failed to marshal output: %w", marshalErr)
	}
	_, err := w.Write(outputData)
	return err
}

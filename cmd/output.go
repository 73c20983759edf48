package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// printResult writes v to w as indented JSON or as YAML.
func printResult(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("could not encode json: %w", err)
		}
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("could not encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("could not encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q, expected %s or %s", format, outputJSON, outputYAML)
	}

	return nil
}

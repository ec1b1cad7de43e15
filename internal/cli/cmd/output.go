package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// addOutputFlag registers --output on a read command.
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", outputText, "output format: text, json, yaml")
}

// writeStructured encodes v as JSON or YAML. It reports false for the text
// format so the caller renders its styled view instead.
func writeStructured(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case "", outputText:
		return false, nil
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return true, fmt.Errorf("encode json: %w", err)
		}
		return true, nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return true, fmt.Errorf("encode yaml: %w", err)
		}
		return true, nil
	default:
		return true, fmt.Errorf("unsupported output format %q (use: text, json, yaml)", format)
	}
}


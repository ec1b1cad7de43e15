package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the configuration file.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{FieldNameTag: "toml", DoNotReference: true}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/includs/config.schema.json"
	schema.Title = "includs configuration"
	schema.Description = "Configuration for includs, a reading accessibility toolkit"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json into dir and returns its path.
func WriteSchemaFile(dir string) (string, error) {
	data, err := Schema()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, schemaName)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// SchemaFileName is the file written by WriteJSONSchema.
const SchemaFileName = "chat-server.schema.json"

// JSONSchema reflects Config into a JSON Schema document.
func JSONSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		ExpandedStruct:            true,
	}

	schema := reflector.Reflect(&Config{})
	schema.Title = "Chat Server Configuration"
	schema.Description = "Configuration for the chat server. Every key can also be set through its environment variable."
	return schema
}

// WriteJSONSchema writes the schema to outputDir and returns the file path.
func WriteJSONSchema(outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	data, err := JSONSchema().MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}

	path := filepath.Join(outputDir, SchemaFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}

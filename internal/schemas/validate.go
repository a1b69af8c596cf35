// Package schemas provides JSON Schema validation for the structured material
// documents. Schemas are embedded at compile time, one per structured
// material type; Markdown materials have no schema.
package schemas

import (
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/course-builder/internal/types"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// SchemaLoadError represents errors loading or parsing a schema itself.
type SchemaLoadError struct {
	MaterialType string
	Cause        error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema for %s: %v", e.MaterialType, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// CheckDocument validates a structured material's JSON body against its
// embedded schema and returns one message per violation. Material types
// without a schema (the Markdown class) return no violations.
func CheckDocument(mt types.MaterialType, jsonBody string) ([]string, error) {
	if mt.IsMarkdown() {
		return nil, nil
	}

	schemaData, err := schemaFiles.ReadFile(string(mt) + ".schema.json")
	if err != nil {
		return nil, &SchemaLoadError{MaterialType: string(mt), Cause: err}
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaData)
	documentLoader := gojsonschema.NewStringLoader(jsonBody)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, &SchemaLoadError{MaterialType: string(mt), Cause: err}
	}

	if result.Valid() {
		return nil, nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return violations, nil
}

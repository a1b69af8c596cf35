package parsing

import (
	"encoding/json"

	"github.com/jonathan/course-builder/internal/llm"
	"github.com/jonathan/course-builder/internal/types"
)

// ParseStructuredDoc decodes the whole body of a pure-JSON material into the
// shared document envelope. Code-fence wrappers are stripped first; models
// often add them despite instructions.
func ParseStructuredDoc(content string) (*types.StructuredDoc, error) {
	cleaned := llm.CleanJSONBlock(content)

	var doc types.StructuredDoc
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &ParseError{Message: "material body is not valid JSON", Cause: err}
	}
	return &doc, nil
}

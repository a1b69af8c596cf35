// Package validation checks generated material content against the
// pedagogical coverage rules and per-material structural requirements,
// producing the verdict that gates pipeline advancement.
package validation

import (
	"fmt"

	"github.com/jonathan/course-builder/internal/llm"
	"github.com/jonathan/course-builder/internal/parsing"
	"github.com/jonathan/course-builder/internal/schemas"
	"github.com/jonathan/course-builder/internal/types"
)

// Validate produces the verdict for one generation attempt. The overall level
// is the maximum severity encountered across all checks; both WARNING and
// CRITICAL block advancement.
func Validate(content string, mt types.MaterialType, cc *types.CumulativeContext) *types.ValidationResult {
	res := &types.ValidationResult{Level: types.ValidationPass}

	if mt.IsMarkdown() {
		res.Metadata.DocClass = types.DocClassMarkdown
		meta, err := parsing.ExtractMarkdownMetadata(mt, content)
		if err != nil {
			// Without the metadata block no further checks are possible.
			res.Errors = append(res.Errors, fmt.Sprintf("No JSON metadata found in %s content", mt))
			res.Level = types.ValidationCritical
			return res
		}
		checkCoverage(res, meta, mt, cc)
		return res
	}

	res.Metadata.DocClass = types.DocClassJSON
	doc, err := parsing.ParseStructuredDoc(content)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s content is not valid JSON: %v", mt, err))
		res.Level = types.ValidationCritical
		return res
	}

	checkStructure(res, doc, mt)
	checkSchema(res, mt, content)
	checkCoverage(res, doc.Metadata, mt, cc)
	return res
}

// checkSchema runs the embedded JSON Schema for the material type. Schema
// findings are advisory notes; they never change the level on their own.
func checkSchema(res *types.ValidationResult, mt types.MaterialType, content string) {
	violations, err := schemas.CheckDocument(mt, llm.CleanJSONBlock(content))
	if err != nil {
		// A broken or unreadable schema is an implementation problem, not a
		// content problem; note it and move on.
		res.Warnings = append(res.Warnings, fmt.Sprintf("schema check unavailable for %s: %v", mt, err))
		return
	}
	for _, v := range violations {
		res.Warnings = append(res.Warnings, "schema: "+v)
	}
	res.Metadata.SchemaViolations = violations
}

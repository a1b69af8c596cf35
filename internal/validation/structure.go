package validation

import (
	"bytes"

	"github.com/jonathan/course-builder/internal/types"
)

// checkStructure applies the material-specific structural requirements to a
// decoded structured document.
func checkStructure(res *types.ValidationResult, doc *types.StructuredDoc, mt types.MaterialType) {
	switch mt {
	case types.MaterialObjectives:
		if len(doc.LearningOutcomes) == 0 {
			res.Errors = append(res.Errors, "No learning outcomes defined")
			res.Level = res.Level.Max(types.ValidationCritical)
		}
	case types.MaterialExercises:
		if len(doc.Exercises) == 0 {
			res.Warnings = append(res.Warnings, "No exercises defined")
			res.Level = res.Level.Max(types.ValidationWarning)
		}
	case types.MaterialAssessment:
		if !hasFinalAssessment(doc) {
			res.Errors = append(res.Errors, "No final assessment defined")
			res.Level = res.Level.Max(types.ValidationCritical)
		}
	}
}

// hasFinalAssessment reports whether the assessment document carries a
// non-null final assessment block.
func hasFinalAssessment(doc *types.StructuredDoc) bool {
	raw := bytes.TrimSpace(doc.FinalAssessment)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null")) && !bytes.Equal(raw, []byte("{}"))
}

package types

import "strings"

// ValidationLevel is the overall verdict severity of a validation run.
type ValidationLevel string

// Validation levels, ordered PASS < WARNING < CRITICAL.
const (
	ValidationPass     ValidationLevel = "PASS"
	ValidationWarning  ValidationLevel = "WARNING"
	ValidationCritical ValidationLevel = "CRITICAL"
)

// rank maps levels to their ordering; unknown levels rank below PASS.
func (l ValidationLevel) rank() int {
	switch l {
	case ValidationPass:
		return 1
	case ValidationWarning:
		return 2
	case ValidationCritical:
		return 3
	}
	return 0
}

// Max returns the more severe of the two levels.
func (l ValidationLevel) Max(other ValidationLevel) ValidationLevel {
	if other.rank() > l.rank() {
		return other
	}
	return l
}

// DocClass constants for ValidationMetadata.
const (
	DocClassJSON     = "json"
	DocClassMarkdown = "markdown"
)

// ValidationMetadata carries the per-attempt coverage measurements. DocClass
// tags which material class the checks ran against; pointer fields are nil
// when the generation did not declare the metric.
type ValidationMetadata struct {
	DocClass               string   `json:"doc_class"`
	BloomCoveragePercent   *float64 `json:"bloom_coverage_percent,omitempty"`
	MerrillCoveragePercent *float64 `json:"merrill_coverage_percent,omitempty"`
	TerminologyConsistency *float64 `json:"terminology_consistency,omitempty"`
	SchemaViolations       []string `json:"schema_violations,omitempty"`
}

// ValidationResult is the verdict produced for one generation attempt. It is
// ephemeral; only the error text survives into the pipeline's error_message.
type ValidationResult struct {
	Level    ValidationLevel    `json:"level"`
	Errors   []string           `json:"errors"`
	Warnings []string           `json:"warnings"`
	Metadata ValidationMetadata `json:"metadata"`
}

// Blocks reports whether the verdict blocks pipeline advancement. Both
// WARNING and CRITICAL block; only PASS lets content through. Deliberate
// policy, stricter than the severity names suggest.
func (r *ValidationResult) Blocks() bool {
	return r.Level != ValidationPass
}

// ErrorText flattens errors and warnings into a single message suitable for
// the pipeline's error_message column.
func (r *ValidationResult) ErrorText() string {
	parts := make([]string, 0, len(r.Errors)+len(r.Warnings))
	parts = append(parts, r.Errors...)
	parts = append(parts, r.Warnings...)
	return strings.Join(parts, "; ")
}

package types

import "encoding/json"

// DocMetadata is the loosely-typed pedagogical metadata a generation declares
// about its own output, either as the "metadata" object of a structured JSON
// body or as the trailing fenced JSON block of a Markdown body. All fields are
// optional; pointers distinguish "absent" from zero.
type DocMetadata struct {
	BloomCoveragePercent   *float64 `json:"bloom_coverage_percent,omitempty"`
	MerrillCoveragePercent *float64 `json:"merrill_coverage_percent,omitempty"`
	TerminologyConsistency *float64 `json:"terminology_consistency,omitempty"`
	Terminology            []string `json:"terminology,omitempty"`
	KeyConcepts            []string `json:"key_concepts,omitempty"`
	BloomLevels            []string `json:"bloom_levels,omitempty"`
	KeyPoints              []string `json:"key_points,omitempty"`
}

// LearningOutcome is one outcome statement tagged with its Bloom level.
type LearningOutcome struct {
	Statement  string `json:"statement"`
	BloomLevel string `json:"bloom_level"`
}

// AgendaSession is one timed session on the course agenda.
type AgendaSession struct {
	Topic           string `json:"topic"`
	DurationMinutes int    `json:"duration_minutes"`
	Description     string `json:"description,omitempty"`
}

// Exercise is one practice activity.
type Exercise struct {
	Title            string `json:"title"`
	Instructions     string `json:"instructions,omitempty"`
	MerrillPrinciple string `json:"merrill_principle,omitempty"`
	DurationMinutes  int    `json:"duration_minutes,omitempty"`
}

// Resource is one entry in the further-reading list.
type Resource struct {
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// StructuredDoc is the decoded envelope of a pure-JSON material body
// (objectives, agenda, exercises, assessment, resources). Each material kind
// populates only its own fields; the envelope keeps the validator and context
// builder free of per-kind decoding.
type StructuredDoc struct {
	LearningOutcomes     []LearningOutcome `json:"learning_outcomes,omitempty"`
	Sessions             []AgendaSession   `json:"sessions,omitempty"`
	TotalDurationMinutes int               `json:"total_duration_minutes,omitempty"`
	Exercises            []Exercise        `json:"exercises,omitempty"`
	FinalAssessment      json.RawMessage   `json:"final_assessment,omitempty"`
	Resources            []Resource        `json:"resources,omitempty"`
	Metadata             *DocMetadata      `json:"metadata,omitempty"`
}

// Package rendering composes the final prompt sent to the model: the
// universal system prompt followed by the material's template with all
// placeholders substituted.
package rendering

import (
	"strings"

	"github.com/jonathan/course-builder/internal/prompts"
	"github.com/jonathan/course-builder/internal/types"
)

// PriorContentLimit bounds each prior-material excerpt substituted into a
// template, keeping the overall prompt size bounded.
const PriorContentLimit = 2000

// RenderPrompt selects the material's template and substitutes course
// parameters, the cumulative context, and prior-material excerpts.
// Placeholders with no value are left verbatim; downstream validation catches
// resulting defects.
func RenderPrompt(mt types.MaterialType, course *types.Course, cc *types.CumulativeContext, prior map[types.MaterialType]string) (string, error) {
	template, err := prompts.ForMaterial(mt)
	if err != nil {
		return "", err
	}

	body := Substitute(template, course, cc, prior)
	return prompts.SystemPrompt() + "\n\n" + body, nil
}

// Substitute performs placeholder replacement on a template without
// prepending the system prompt. Exposed separately for the translation
// prompt and for tests.
func Substitute(template string, course *types.Course, cc *types.CumulativeContext, prior map[types.MaterialType]string) string {
	replacements := map[string]string{
		"{title}":        course.Title,
		"{subject}":      course.Subject,
		"{duration}":     course.Duration,
		"{level}":        course.Level,
		"{environment}":  course.Environment,
		"{participants}": course.Participants,
		"{tone}":         course.Tone,
		"{language}":     course.Language,
	}
	if cc != nil {
		replacements["{cumulative_context}"] = cc.PromptText()
		replacements["{materials_summary}"] = cc.SummaryText()
	}
	for mt, content := range prior {
		replacements["{"+string(mt)+"_content}"] = Truncate(content, PriorContentLimit)
	}

	out := template
	for placeholder, value := range replacements {
		out = strings.ReplaceAll(out, placeholder, value)
	}
	return out
}

// Truncate bounds a string to limit runes.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

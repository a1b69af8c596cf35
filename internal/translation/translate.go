// Package translation rewrites approved content into the course's target
// language. Translation is best-effort: any failure falls back to the
// original content and never fails the pipeline.
package translation

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/course-builder/internal/llm"
	"github.com/jonathan/course-builder/internal/prompts"
)

// TranslationError represents a failed translation attempt. It is always
// swallowed by Translate; it exists so the fallback path can be logged with a
// consistent shape.
type TranslationError struct {
	Language string
	Cause    error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation to %s failed: %v", e.Language, e.Cause)
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// IsEnglish reports whether the target language needs no translation.
func IsEnglish(language string) bool {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "en", "english":
		return true
	}
	return false
}

// Translate returns the content rewritten in the target language, instructing
// the model to translate prose only and preserve JSON keys, JSON structure,
// and Markdown syntax. English targets and any failure return the input
// unchanged.
func Translate(ctx context.Context, client llm.Client, content, language string) string {
	if IsEnglish(language) {
		return content
	}

	template, err := prompts.Get(prompts.SystemFile, prompts.KeyTranslation)
	if err != nil {
		log.Printf("translation: %v", &TranslationError{Language: language, Cause: err})
		return content
	}

	prompt := strings.ReplaceAll(template, "{language}", language)
	prompt = strings.ReplaceAll(prompt, "{content}", content)

	translated, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		log.Printf("translation: %v", &TranslationError{Language: language, Cause: err})
		return content
	}
	if strings.TrimSpace(translated) == "" {
		log.Printf("translation: %v", &TranslationError{Language: language, Cause: fmt.Errorf("empty response")})
		return content
	}

	return translated
}

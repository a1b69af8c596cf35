// Package grounding builds the cumulative context that grounds each prompt in
// everything generated so far. The context is derived fresh on every pipeline
// invocation from the stored materials and is never persisted.
package grounding

import (
	"log"

	"github.com/jonathan/course-builder/internal/parsing"
	"github.com/jonathan/course-builder/internal/types"
)

// previewLen bounds the per-material content preview carried in the summary.
const previewLen = 300

// BuildContext derives a CumulativeContext from the mapping of material type
// to already-generated content. A material whose content fails to parse is
// logged and skipped; context construction never aborts.
func BuildContext(contents map[types.MaterialType]string) *types.CumulativeContext {
	cc := types.NewCumulativeContext()

	for _, mt := range types.MaterialOrder {
		content, ok := contents[mt]
		if !ok || content == "" {
			continue
		}

		if mt.IsMarkdown() {
			meta, err := parsing.ExtractMarkdownMetadata(mt, content)
			if err != nil {
				log.Printf("grounding: skipping %s contribution: %v", mt, err)
				continue
			}
			mergeMetadata(cc, meta)
			addSummary(cc, mt, content, meta)
			continue
		}

		doc, err := parsing.ParseStructuredDoc(content)
		if err != nil {
			log.Printf("grounding: skipping %s contribution: %v", mt, err)
			continue
		}

		switch mt {
		case types.MaterialObjectives:
			for _, o := range doc.LearningOutcomes {
				cc.LearningOutcomes = append(cc.LearningOutcomes, o.Statement)
				if o.BloomLevel != "" {
					cc.BloomLevelsUsed = appendUnique(cc.BloomLevelsUsed, o.BloomLevel)
				}
			}
		case types.MaterialAgenda:
			applyAgenda(cc, doc)
		}

		mergeMetadata(cc, doc.Metadata)
		addSummary(cc, mt, content, doc.Metadata)
	}

	return cc
}

// applyAgenda folds agenda sessions into the topic and duration constraints.
// Once at least one session exists the topic scope is frozen for all
// downstream materials.
func applyAgenda(cc *types.CumulativeContext, doc *types.StructuredDoc) {
	if len(doc.Sessions) == 0 {
		return
	}

	allocated := 0
	for _, s := range doc.Sessions {
		cc.KeyConcepts = appendUnique(cc.KeyConcepts, s.Topic)
		allocated += s.DurationMinutes
	}

	total := doc.TotalDurationMinutes
	if total < allocated {
		total = allocated
	}
	cc.Duration = types.DurationConstraints{
		TotalMinutes:     total,
		AllocatedMinutes: allocated,
		RemainingMinutes: total - allocated,
	}
	cc.ForbiddenNewTopics = true
}

// mergeMetadata folds declared metadata collections into the context sets.
func mergeMetadata(cc *types.CumulativeContext, meta *types.DocMetadata) {
	if meta == nil {
		return
	}
	for _, t := range meta.Terminology {
		cc.Terminology = appendUnique(cc.Terminology, t)
	}
	for _, k := range meta.KeyConcepts {
		cc.KeyConcepts = appendUnique(cc.KeyConcepts, k)
	}
	for _, b := range meta.BloomLevels {
		cc.BloomLevelsUsed = appendUnique(cc.BloomLevelsUsed, b)
	}
}

// addSummary records the compact per-material view used by later prompts.
func addSummary(cc *types.CumulativeContext, mt types.MaterialType, content string, meta *types.DocMetadata) {
	summary := types.MaterialSummary{ContentPreview: preview(content)}
	if meta != nil {
		summary.KeyPoints = meta.KeyPoints
	}
	cc.MaterialsSummary[mt] = summary
}

// preview truncates content to the bounded preview length on a rune boundary.
func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLen {
		return content
	}
	return string(runes[:previewLen])
}

// appendUnique appends value if not already present, preserving insertion
// order (set semantics without map iteration nondeterminism).
func appendUnique(set []string, value string) []string {
	for _, v := range set {
		if v == value {
			return set
		}
	}
	return append(set, value)
}

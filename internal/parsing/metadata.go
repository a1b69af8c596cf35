// Package parsing decodes raw generated material content into typed
// documents: pure-JSON bodies for structured materials, and Markdown bodies
// with a trailing fenced JSON metadata block for narrative materials.
package parsing

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/jonathan/course-builder/internal/types"
)

// fencedJSONPattern matches a fenced code block tagged as JSON. The (?s) flag
// lets the body span lines; the match is non-greedy so multiple blocks are
// found individually.
var fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*(.*?)```")

// ExtractMetadataBlock locates the LAST fenced JSON code block in a Markdown
// body and decodes it as DocMetadata. This is the single extraction point for
// embedded metadata; a real Markdown parser could be substituted here without
// touching callers.
func ExtractMetadataBlock(markdown string) (*types.DocMetadata, error) {
	matches := fencedJSONPattern.FindAllStringSubmatch(markdown, -1)
	if len(matches) == 0 {
		return nil, &MissingMetadataError{MaterialType: "markdown"}
	}

	raw := strings.TrimSpace(matches[len(matches)-1][1])
	var meta types.DocMetadata
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, &ParseError{Message: "metadata block is not valid JSON", Cause: err}
	}
	return &meta, nil
}

// ExtractMarkdownMetadata extracts the metadata block from a Markdown
// material, reporting the material type in the not-found error.
func ExtractMarkdownMetadata(materialType types.MaterialType, markdown string) (*types.DocMetadata, error) {
	meta, err := ExtractMetadataBlock(markdown)
	if err != nil {
		if _, ok := err.(*MissingMetadataError); ok {
			return nil, &MissingMetadataError{MaterialType: string(materialType)}
		}
		return nil, err
	}
	return meta, nil
}

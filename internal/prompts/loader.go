// Package prompts is the prompt template store: one parametrized template per
// material type plus the universal system prompt, stored as JSON files and
// embedded at compile time. The table is immutable after process start.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jonathan/course-builder/internal/types"
)

//go:embed *.json
var promptFiles embed.FS

// Well-known files and keys.
const (
	MaterialsFile = "materials.json"
	SystemFile    = "system.json"

	KeySystemPrompt = "system_prompt"
	KeyTranslation  = "translation"
)

var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a prompt by filename and key. The filename should not include
// a path (e.g. "materials.json").
func Get(filename, key string) (string, error) {
	table, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	prompt, exists := table[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet retrieves a prompt, panicking if not found. Use for prompts that
// are required at initialization time.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// ForMaterial returns the generation template for a material type.
func ForMaterial(mt types.MaterialType) (string, error) {
	return Get(MaterialsFile, string(mt))
}

// SystemPrompt returns the universal pedagogical system prompt.
func SystemPrompt() string {
	return MustGet(SystemFile, KeySystemPrompt)
}

// loadFile loads and caches one embedded prompt file.
func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	if table, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return table, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = table
	cacheMu.Unlock()

	return table, nil
}

// ClearCache clears the prompt cache. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string]map[string]string)
	cacheMu.Unlock()
}

// List returns all prompt keys in a file.
func List(filename string) ([]string, error) {
	table, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	return keys, nil
}

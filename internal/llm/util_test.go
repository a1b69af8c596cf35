package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"Plain JSON untouched", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"Bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"Fence with language tag", "```javascript\n{\"a\": 1}\n```", `{"a": 1}`},
		{"Brace on fence line kept", "```{\"a\": 1}\n```", `{"a": 1}`},
		{"Surrounding whitespace", "  \n```json\n{}\n```  ", "{}"},
		{"Empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.in))
		})
	}
}

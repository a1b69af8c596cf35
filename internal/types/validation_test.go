package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationLevelMax(t *testing.T) {
	assert.Equal(t, ValidationWarning, ValidationPass.Max(ValidationWarning))
	assert.Equal(t, ValidationWarning, ValidationWarning.Max(ValidationPass))
	assert.Equal(t, ValidationCritical, ValidationWarning.Max(ValidationCritical))
	assert.Equal(t, ValidationCritical, ValidationCritical.Max(ValidationWarning))
	assert.Equal(t, ValidationPass, ValidationPass.Max(ValidationPass))
}

func TestBlocks(t *testing.T) {
	tests := []struct {
		name     string
		level    ValidationLevel
		expected bool
	}{
		{"Pass does not block", ValidationPass, false},
		{"Warning blocks", ValidationWarning, true},
		{"Critical blocks", ValidationCritical, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &ValidationResult{Level: tt.level}
			assert.Equal(t, tt.expected, res.Blocks())
		})
	}
}

func TestErrorText(t *testing.T) {
	res := &ValidationResult{
		Errors:   []string{"No learning outcomes defined"},
		Warnings: []string{"Bloom coverage 50% is below the 60% minimum"},
	}
	assert.Equal(t, "No learning outcomes defined; Bloom coverage 50% is below the 60% minimum", res.ErrorText())

	empty := &ValidationResult{}
	assert.Equal(t, "", empty.ErrorText())
}

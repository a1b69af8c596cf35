package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/course-builder/internal/types"
)

func TestForMaterialCoversAllTypes(t *testing.T) {
	for _, mt := range types.MaterialOrder {
		template, err := ForMaterial(mt)
		require.NoError(t, err, "material %s", mt)
		assert.NotEmpty(t, template, "material %s", mt)
	}
}

func TestSystemPromptNonEmpty(t *testing.T) {
	assert.NotEmpty(t, SystemPrompt())
}

func TestTranslationTemplateHasPlaceholders(t *testing.T) {
	template, err := Get(SystemFile, KeyTranslation)
	require.NoError(t, err)
	assert.True(t, strings.Contains(template, "{language}"))
	assert.True(t, strings.Contains(template, "{content}"))
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Get(MaterialsFile, "no_such_material")
	assert.Error(t, err)
}

func TestGetUnknownFile(t *testing.T) {
	_, err := Get("missing.json", "anything")
	assert.Error(t, err)
}

func TestListMaterials(t *testing.T) {
	keys, err := List(MaterialsFile)
	require.NoError(t, err)
	assert.Len(t, keys, types.TotalSteps)
}

func TestCacheSurvivesClear(t *testing.T) {
	first, err := Get(MaterialsFile, string(types.MaterialObjectives))
	require.NoError(t, err)

	ClearCache()

	second, err := Get(MaterialsFile, string(types.MaterialObjectives))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

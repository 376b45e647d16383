package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schema))

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", schema["$schema"])
	assert.Equal(t, true, schema["additionalProperties"], "extension sections are allowed at the top level")

	props, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, props, "version")
	assert.Contains(t, props, "picker")
	assert.Contains(t, props, "source")
	assert.NotContains(t, props, "Extensions")
	assert.Contains(t, string(data), "category_order")
	assert.Contains(t, string(data), "alphabetical")
}

func TestSchemaValidator(t *testing.T) {
	v, err := NewSchemaValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(map[string]interface{}{
		"version": "1.0",
		"picker":  map[string]interface{}{"category_order": "priority", "category_priority": []interface{}{"Section"}},
		"logging": map[string]interface{}{"level": "debug"},
	}))

	assert.Error(t, v.Validate(map[string]interface{}{
		"picker": map[string]interface{}{"category_order": "shuffled"},
	}))
}

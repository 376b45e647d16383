package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "count": {"type": "integer", "minimum": 1}
  },
  "required": ["name"],
  "additionalProperties": false
}`

func TestValidator(t *testing.T) {
	v, err := NewValidator("test.json", []byte(testSchema))
	require.NoError(t, err)

	assert.NoError(t, v.Validate(map[string]interface{}{"name": "a", "count": int64(2)}))

	err = v.Validate(map[string]interface{}{"count": 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")

	err = v.Validate(map[string]interface{}{"name": "a", "extra": true})
	assert.Error(t, err)
}

func TestValidatorRejectsBadSchema(t *testing.T) {
	_, err := NewValidator("bad.json", []byte(`{"type": `))
	assert.Error(t, err)
}

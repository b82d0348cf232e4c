package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

func TestTranslateSchema_Kinds(t *testing.T) {
	testCases := []struct {
		name     string
		def      map[string]interface{}
		expected FieldKind
	}{
		{"string", map[string]interface{}{"type": "string"}, KindString},
		{"number", map[string]interface{}{"type": "number"}, KindNumber},
		{"integer maps to number", map[string]interface{}{"type": "integer"}, KindNumber},
		{"boolean", map[string]interface{}{"type": "boolean"}, KindBoolean},
		{"array", map[string]interface{}{"type": "array"}, KindArray},
		{"object", map[string]interface{}{"type": "object"}, KindObject},
		{"unknown degrades to any", map[string]interface{}{"type": "uuid"}, KindAny},
		{"missing type degrades to any", map[string]interface{}{"description": "free-form"}, KindAny},
		{"nil definition degrades to any", nil, KindAny},
		{"type union uses first entry", map[string]interface{}{"type": []interface{}{"string", "null"}}, KindString},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fields := TranslateSchema(mcpschema.ToolInputSchema{
				Type:       "object",
				Properties: map[string]map[string]interface{}{"value": tc.def},
			})
			assert.EqualValues(t, tc.expected, fields["value"].Kind)
		})
	}
}

func TestTranslateSchema_EmptyProperties(t *testing.T) {
	assert.Empty(t, TranslateSchema(mcpschema.ToolInputSchema{}))
	assert.Empty(t, TranslateSchema(mcpschema.ToolInputSchema{Type: "object"}))
}

func TestTranslateSchema_RequiredAndDescription(t *testing.T) {
	fields := TranslateSchema(mcpschema.ToolInputSchema{
		Type: "object",
		Properties: map[string]map[string]interface{}{
			"query": {"type": "string", "description": "search phrase"},
			"limit": {"type": "integer"},
		},
		Required: []string{"query"},
	})

	assert.True(t, fields["query"].Required)
	assert.EqualValues(t, "search phrase", fields["query"].Description)
	assert.False(t, fields["limit"].Required)
}

func TestValidateArguments(t *testing.T) {
	fields := map[string]Field{
		"query": {Kind: KindString, Required: true},
		"limit": {Kind: KindNumber},
		"exact": {Kind: KindBoolean},
		"tags":  {Kind: KindArray},
		"extra": {Kind: KindAny},
	}

	testCases := []struct {
		name  string
		args  map[string]interface{}
		valid bool
	}{
		{"required present", map[string]interface{}{"query": "swap"}, true},
		{"required missing", map[string]interface{}{"limit": float64(5)}, false},
		{"optional absent", map[string]interface{}{"query": "swap"}, true},
		{"wrong string kind", map[string]interface{}{"query": 1}, false},
		{"number accepts float", map[string]interface{}{"query": "q", "limit": 2.5}, true},
		{"number accepts int", map[string]interface{}{"query": "q", "limit": 3}, true},
		{"wrong boolean kind", map[string]interface{}{"query": "q", "exact": "yes"}, false},
		{"array ok", map[string]interface{}{"query": "q", "tags": []interface{}{"a"}}, true},
		{"any accepts everything", map[string]interface{}{"query": "q", "extra": map[string]interface{}{"k": 1}}, true},
		{"undeclared passes through", map[string]interface{}{"query": "q", "unknown": 42}, true},
		{"nil value accepted", map[string]interface{}{"query": "q", "limit": nil}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateArguments(fields, tc.args)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateArguments_NoFields(t *testing.T) {
	// A schema without properties accepts an empty argument object and
	// rejects nothing.
	assert.NoError(t, ValidateArguments(nil, map[string]interface{}{}))
	assert.NoError(t, ValidateArguments(map[string]Field{}, map[string]interface{}{"anything": true}))
}

func TestBuildInputSchema_MirrorsTranslation(t *testing.T) {
	fields := map[string]Field{
		"query": {Kind: KindString, Description: "search phrase", Required: true},
		"limit": {Kind: KindNumber},
		"blob":  {Kind: KindAny},
	}

	schema := BuildInputSchema(fields)

	assert.EqualValues(t, "object", schema.Type)
	assert.EqualValues(t, []string{"query"}, schema.Required)
	assert.EqualValues(t, "string", schema.Properties["query"]["type"])
	assert.EqualValues(t, "search phrase", schema.Properties["query"]["description"])
	assert.EqualValues(t, "number", schema.Properties["limit"]["type"])
	// Any carries no type constraint.
	_, hasType := schema.Properties["blob"]["type"]
	assert.False(t, hasType)
}

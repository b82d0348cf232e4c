package docs

import (
	"fmt"
	"sort"
	"strings"

	mcpschema "github.com/viant/mcp-protocol/schema"
)

// FieldKind enumerates the argument kinds a proxied tool can declare.  Remote
// schemas are third-party input and may drift between GitBook versions, so
// anything unrecognised degrades to KindAny rather than failing.
type FieldKind string

const (
	KindString  FieldKind = "string"
	KindNumber  FieldKind = "number"
	KindBoolean FieldKind = "boolean"
	KindArray   FieldKind = "array"
	KindObject  FieldKind = "object"
	KindAny     FieldKind = "any"
)

// Field is the locally enforceable shape of one declared tool argument.
type Field struct {
	Kind        FieldKind
	Description string
	Required    bool
}

// TranslateSchema converts a remote tool input schema into a field-by-field
// validator map.  The translation is pure and total: it never fails, an empty
// or absent properties map yields an empty result and unknown declarations
// map to the most permissive kind.
func TranslateSchema(input mcpschema.ToolInputSchema) map[string]Field {
	fields := make(map[string]Field, len(input.Properties))
	required := make(map[string]struct{}, len(input.Required))
	for _, name := range input.Required {
		required[name] = struct{}{}
	}
	for name, def := range input.Properties {
		_, req := required[name]
		fields[name] = Field{
			Kind:        kindFromDef(def),
			Description: descriptionFromDef(def),
			Required:    req,
		}
	}
	return fields
}

func kindFromDef(def map[string]interface{}) FieldKind {
	if def == nil {
		return KindAny
	}
	var typeStr string
	switch v := def["type"].(type) {
	case string:
		typeStr = v
	case []interface{}:
		if len(v) > 0 {
			typeStr, _ = v[0].(string)
		}
	}
	switch typeStr {
	case "string":
		return KindString
	case "number", "integer":
		return KindNumber
	case "boolean":
		return KindBoolean
	case "array":
		return KindArray
	case "object":
		return KindObject
	default:
		return KindAny
	}
}

func descriptionFromDef(def map[string]interface{}) string {
	if def == nil {
		return ""
	}
	desc, _ := def["description"].(string)
	return desc
}

// BuildInputSchema re-emits a tool input schema for local registration from
// translated fields so that the advertised parameters mirror the remote
// declaration.
func BuildInputSchema(fields map[string]Field) mcpschema.ToolInputSchema {
	out := mcpschema.ToolInputSchema{
		Type:       "object",
		Properties: map[string]map[string]interface{}{},
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		field := fields[name]
		def := map[string]interface{}{}
		if field.Kind != KindAny {
			def["type"] = string(field.Kind)
		}
		if field.Description != "" {
			def["description"] = field.Description
		}
		out.Properties[name] = def
		if field.Required {
			out.Required = append(out.Required, name)
		}
	}
	return out
}

// ValidateArguments checks the supplied argument map against translated
// fields: required names must be present and present values must conform to
// their declared kind. Undeclared arguments pass through untouched - the
// remote server owns their semantics.
func ValidateArguments(fields map[string]Field, args map[string]interface{}) error {
	var missing []string
	for name, field := range fields {
		value, ok := args[name]
		if !ok {
			if field.Required {
				missing = append(missing, name)
			}
			continue
		}
		if err := checkKind(field.Kind, value); err != nil {
			return fmt.Errorf("argument %q: %w", name, err)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required argument(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

func checkKind(kind FieldKind, value interface{}) error {
	if value == nil {
		return nil
	}
	switch kind {
	case KindString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
	case KindNumber:
		switch value.(type) {
		case float64, float32, int, int32, int64, uint, uint32, uint64:
		default:
			return fmt.Errorf("expected number, got %T", value)
		}
	case KindBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected boolean, got %T", value)
		}
	case KindArray:
		if _, ok := value.([]interface{}); !ok {
			return fmt.Errorf("expected array, got %T", value)
		}
	case KindObject:
		if _, ok := value.(map[string]interface{}); !ok {
			return fmt.Errorf("expected object, got %T", value)
		}
	}
	return nil
}

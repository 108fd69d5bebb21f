package generator

import (
	"encoding/json"
	"fmt"
)

const (
	// SchemaName identifies the structured output contract to the model
	SchemaName = "username_list"
	// UsernamesField is the single required field of the response object
	UsernamesField = "usernames"
)

// ResponseSchema returns the JSON schema the response must satisfy:
// an object with one required field holding an array of strings.
func ResponseSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			UsernamesField: map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":        "string",
					"description": "A creative username.",
				},
			},
		},
		"required":             []string{UsernamesField},
		"additionalProperties": false,
	}
}

// ParseUsernames decodes a structured response. The names are returned in
// order and verbatim; any shape violation is an error.
func ParseUsernames(raw string) ([]string, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}

	field, ok := obj[UsernamesField]
	if !ok {
		return nil, fmt.Errorf("response is missing %q", UsernamesField)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(field, &items); err != nil || items == nil {
		return nil, fmt.Errorf("%q is not an array", UsernamesField)
	}

	names := make([]string, 0, len(items))
	for i, item := range items {
		var name string
		if err := json.Unmarshal(item, &name); err != nil {
			return nil, fmt.Errorf("%s[%d] is not a string", UsernamesField, i)
		}
		if name == "" {
			return nil, fmt.Errorf("%s[%d] is empty", UsernamesField, i)
		}
		names = append(names, name)
	}
	return names, nil
}

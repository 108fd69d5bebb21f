package generator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseSchema(t *testing.T) {
	schema := ResponseSchema()

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"usernames": {
				"type": "array",
				"items": {"type": "string", "description": "A creative username."}
			}
		},
		"required": ["usernames"],
		"additionalProperties": false
	}`, string(data))
}

func TestParseUsernames(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{
			name: "valid keeps order and spelling",
			raw:  `{"usernames": ["NovaKnight", " nova_99 ", "NovaKnight"]}`,
			want: []string{"NovaKnight", " nova_99 ", "NovaKnight"},
		},
		{
			name: "empty list",
			raw:  `{"usernames": []}`,
			want: []string{},
		},
		{name: "not json", raw: `usernames: a, b`, wantErr: true},
		{name: "array at top level", raw: `["a", "b"]`, wantErr: true},
		{name: "missing field", raw: `{"names": ["a"]}`, wantErr: true},
		{name: "field is string", raw: `{"usernames": "a"}`, wantErr: true},
		{name: "field is null", raw: `{"usernames": null}`, wantErr: true},
		{name: "non-string element", raw: `{"usernames": ["a", 7]}`, wantErr: true},
		{name: "null element", raw: `{"usernames": ["a", null]}`, wantErr: true},
		{name: "empty element", raw: `{"usernames": ["a", ""]}`, wantErr: true},
		{name: "empty body", raw: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUsernames(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

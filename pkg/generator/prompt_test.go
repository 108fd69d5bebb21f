package generator

import (
	"strings"
	"testing"

	"github.com/pluqqy/usernamer/pkg/models"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		contains []string
	}{
		{
			name: "before",
			req:  Request{SeedWord: "Nova", Category: models.CategoryGaming, WordPosition: models.PositionBefore},
			contains: []string{
				"Generate 15 unique",
				"seed word 'Nova'",
				"category 'Gaming'",
				"must appear before a word related to the category",
				"underscores",
			},
		},
		{
			name: "after",
			req:  Request{SeedWord: "Shadow", Category: models.CategoryMystical, WordPosition: models.PositionAfter},
			contains: []string{
				"seed word 'Shadow'",
				"category 'Mystical'",
				"must appear after a word related to the category",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt(tt.req)
			for _, want := range tt.contains {
				if !strings.Contains(prompt, want) {
					t.Errorf("prompt missing %q:\n%s", want, prompt)
				}
			}
		})
	}
}

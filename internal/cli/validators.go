package cli

import (
	"fmt"
	"strings"

	"github.com/pluqqy/usernamer/pkg/models"
)

// ValidateCategory parses the category flag
func ValidateCategory(category string) (models.Category, error) {
	c, err := models.ParseCategory(category)
	if err != nil {
		names := make([]string, 0, len(models.Categories()))
		for _, candidate := range models.Categories() {
			names = append(names, strings.ToLower(string(candidate)))
		}
		return "", fmt.Errorf("invalid category: %s (must be one of: %s)", category, strings.Join(names, ", "))
	}
	return c, nil
}

// ValidateWordPosition parses the position flag
func ValidateWordPosition(position string) (models.WordPosition, error) {
	return models.ParseWordPosition(position)
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateSeedWord rejects a seed that is blank after trimming
func ValidateSeedWord(seed string) (string, error) {
	trimmed := strings.TrimSpace(seed)
	if trimmed == "" {
		return "", fmt.Errorf("seed word cannot be empty")
	}
	return trimmed, nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

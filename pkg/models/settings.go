package models

import (
	"fmt"
	"time"
)

// Settings represents the application configuration
type Settings struct {
	APIKey            string        `mapstructure:"api_key" yaml:"api_key"`
	Model             string        `mapstructure:"model" yaml:"model"`
	BaseURL           string        `mapstructure:"base_url" yaml:"base_url"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
	AvailabilityDelay time.Duration `mapstructure:"availability_delay" yaml:"availability_delay"`
	CopyReset         time.Duration `mapstructure:"copy_reset" yaml:"copy_reset"`
	Log               LogSettings   `mapstructure:"log" yaml:"log"`
}

// LogSettings controls where diagnostic logs go
type LogSettings struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

const (
	// DefaultModel matches the model the hosted endpoint serves
	DefaultModel = "gemini-2.5-flash"
	// DefaultBaseURL is Gemini's OpenAI-compatible endpoint
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
)

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Model:             DefaultModel,
		BaseURL:           DefaultBaseURL,
		RequestTimeout:    60 * time.Second,
		AvailabilityDelay: 1500 * time.Millisecond,
		CopyReset:         2 * time.Second,
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Validate checks the settings for values that cannot work.
// A missing API key is allowed; requests fail when they are made.
func (s *Settings) Validate() error {
	if s.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", s.RequestTimeout)
	}
	if s.AvailabilityDelay < 0 {
		return fmt.Errorf("availability_delay must not be negative, got %s", s.AvailabilityDelay)
	}
	if s.CopyReset <= 0 {
		return fmt.Errorf("copy_reset must be positive, got %s", s.CopyReset)
	}
	return nil
}

package cli

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/pluqqy/usernamer/pkg/availability"
	"github.com/pluqqy/usernamer/pkg/config"
	"github.com/pluqqy/usernamer/pkg/generator"
	"github.com/pluqqy/usernamer/pkg/logging"
	"github.com/pluqqy/usernamer/pkg/models"
)

// CommandContext holds the settings and logger shared by every command
type CommandContext struct {
	ConfigPath string
	Settings   *models.Settings
	Logger     hclog.Logger

	closeLog func() error
}

// NewCommandContext loads settings from configPath (or the default search
// paths when empty) and opens the log file.
func NewCommandContext(configPath string) (*CommandContext, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(logging.Options{
		File:  settings.Log.File,
		Level: settings.Log.Level,
	})
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		ConfigPath: configPath,
		Settings:   settings,
		Logger:     logger,
		closeLog:   closeLog,
	}, nil
}

// Close releases the log file
func (c *CommandContext) Close() error {
	if c.closeLog == nil {
		return nil
	}
	return c.closeLog()
}

// BuildGenerator creates the generation client from the loaded settings
func (c *CommandContext) BuildGenerator() (generator.Generator, error) {
	gen, err := generator.NewOpenAIGenerator(generator.OpenAIOptions{
		APIKey:  c.Settings.APIKey,
		Model:   c.Settings.Model,
		BaseURL: c.Settings.BaseURL,
		Logger:  c.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}
	return gen, nil
}

// BuildChecker creates the simulated availability checker
func (c *CommandContext) BuildChecker() availability.Checker {
	return availability.NewSimulator(c.Settings.AvailabilityDelay, nil)
}

// RequestTimeout bounds one generation request
func (c *CommandContext) RequestTimeout() time.Duration {
	return c.Settings.RequestTimeout
}

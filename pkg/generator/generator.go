// Package generator turns a seed word, category and word position into a
// list of candidate usernames from a generative text model.
package generator

import (
	"context"
	"errors"

	"github.com/pluqqy/usernamer/pkg/models"
)

// ErrGenerationFailed is the only error callers of a Generator see.
// The underlying cause is logged, never returned.
var ErrGenerationFailed = errors.New("Failed to generate usernames. Please try again.")

// ErrMissingAPIKey is logged when a request is attempted without a credential
var ErrMissingAPIKey = errors.New("api key not configured")

// Request carries the user inputs for one generation.
// SeedWord is expected to be trimmed and non-empty.
type Request struct {
	SeedWord     string
	Category     models.Category
	WordPosition models.WordPosition
}

// Generator produces candidate usernames. Implementations make exactly one
// attempt per call and return either every name or ErrGenerationFailed.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]string, error)
}

// Func adapts a function to the Generator interface
type Func func(ctx context.Context, req Request) ([]string, error)

// Generate calls f
func (f Func) Generate(ctx context.Context, req Request) ([]string, error) {
	return f(ctx, req)
}

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/usernamer/pkg/availability"
	"github.com/pluqqy/usernamer/pkg/generator"
	"github.com/pluqqy/usernamer/pkg/models"
)

type fakeCollaborators struct {
	mu       sync.Mutex
	requests []generator.Request
	names    []string
	genErr   error
	checker  availability.Checker
	closed   bool
}

func (f *fakeCollaborators) BuildGenerator() (generator.Generator, error) {
	return generator.Func(func(ctx context.Context, req generator.Request) ([]string, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests = append(f.requests, req)
		return f.names, f.genErr
	}), nil
}

func (f *fakeCollaborators) BuildChecker() availability.Checker { return f.checker }

func (f *fakeCollaborators) RequestTimeout() time.Duration { return time.Second }

func (f *fakeCollaborators) Close() error {
	f.closed = true
	return nil
}

type checkerFunc func(ctx context.Context, name string) (models.AvailabilityStatus, error)

func (c checkerFunc) Check(ctx context.Context, name string) (models.AvailabilityStatus, error) {
	return c(ctx, name)
}

func runGenerateCommand(t *testing.T, fake *fakeCollaborators, args ...string) (string, error) {
	t.Helper()
	cmd := NewGenerateCommand(func(string) (Collaborators, error) { return fake, nil })
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestGenerateCommand_Text(t *testing.T) {
	fake := &fakeCollaborators{names: []string{"WolfByte", "Lone_Wolf7"}}

	out, err := runGenerateCommand(t, fake, "  wolf  ", "--category", "space", "--position", "after")
	require.NoError(t, err)

	require.Len(t, fake.requests, 1)
	assert.Equal(t, generator.Request{
		SeedWord:     "wolf",
		Category:     models.CategorySpace,
		WordPosition: models.PositionAfter,
	}, fake.requests[0])
	assert.True(t, fake.closed)

	assert.Contains(t, out, `2 usernames for "wolf" (Space, seed word after)`)
	assert.Contains(t, out, "WolfByte")
	assert.Contains(t, out, "Lone_Wolf7")
	assert.NotContains(t, out, "AVAILABILITY")
}

func TestGenerateCommand_JSON(t *testing.T) {
	fake := &fakeCollaborators{names: []string{"WolfByte", "WolfByte"}}

	out, err := runGenerateCommand(t, fake, "wolf", "--format", "json")
	require.NoError(t, err)

	var result GenerateResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "wolf", result.SeedWord)
	assert.Equal(t, models.DefaultCategory, result.Category)
	assert.Equal(t, models.DefaultWordPosition, result.WordPosition)
	require.Equal(t, 2, result.Count)

	// duplicates are kept verbatim but get distinct ids
	assert.Equal(t, "WolfByte", result.Names[0].Name)
	assert.Equal(t, "WolfByte", result.Names[1].Name)
	assert.NotEqual(t, result.Names[0].ID, result.Names[1].ID)
	assert.Equal(t, models.StatusUnchecked, result.Names[0].Availability)
}

func TestGenerateCommand_Check(t *testing.T) {
	fake := &fakeCollaborators{
		names: []string{"WolfByte", "Lone_Wolf7", "Wolfie"},
		checker: checkerFunc(func(ctx context.Context, name string) (models.AvailabilityStatus, error) {
			switch name {
			case "WolfByte":
				return models.StatusAvailable, nil
			case "Lone_Wolf7":
				return models.StatusTaken, nil
			default:
				return "", errors.New("lookup failed")
			}
		}),
	}

	out, err := runGenerateCommand(t, fake, "wolf", "--check", "--format", "json")
	require.NoError(t, err)

	var result GenerateResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Names, 3)
	assert.Equal(t, models.StatusAvailable, result.Names[0].Availability)
	assert.Equal(t, models.StatusTaken, result.Names[1].Availability)
	assert.Equal(t, models.StatusTaken, result.Names[2].Availability, "a failed check counts as taken")
}

func TestGenerateCommand_CheckText(t *testing.T) {
	fake := &fakeCollaborators{
		names:   []string{"WolfByte"},
		checker: availability.NewSimulator(0, nil),
	}

	out, err := runGenerateCommand(t, fake, "wolf", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "AVAILABILITY")
	assert.Contains(t, out, "WolfByte")
}

func TestGenerateCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		genErr  error
		wantErr string
		calls   int
	}{
		{
			name:    "blank seed word",
			args:    []string{"   "},
			wantErr: "seed word cannot be empty",
		},
		{
			name:    "unknown category",
			args:    []string{"wolf", "--category", "sports"},
			wantErr: "invalid category",
		},
		{
			name:    "unknown position",
			args:    []string{"wolf", "--position", "middle"},
			wantErr: "invalid word position",
		},
		{
			name:    "unknown format",
			args:    []string{"wolf", "--format", "xml"},
			wantErr: "invalid output format",
		},
		{
			name:    "generation failure hides the cause",
			args:    []string{"wolf"},
			genErr:  errors.New("upstream exploded"),
			wantErr: "Failed to generate usernames. Please try again.",
			calls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCollaborators{genErr: tt.genErr}

			_, err := runGenerateCommand(t, fake, tt.args...)
			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), tt.wantErr), err.Error())
			assert.NotContains(t, err.Error(), "upstream exploded")
			assert.Len(t, fake.requests, tt.calls)
		})
	}
}

func TestGenerateCommand_LoaderError(t *testing.T) {
	cmd := NewGenerateCommand(func(string) (Collaborators, error) {
		return nil, errors.New("bad config")
	})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"wolf"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestGenerateCommand_EmptyResult(t *testing.T) {
	fake := &fakeCollaborators{names: []string{}}

	out, err := runGenerateCommand(t, fake, "wolf")
	require.NoError(t, err)
	assert.Equal(t, "No usernames were generated.\n", out)
}

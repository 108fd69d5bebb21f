// Package session holds the observable state of one username-generation
// session and every legal transition on it.
//
// A Session is not safe for concurrent use. Its driver (the TUI event loop)
// applies one event at a time: user actions, timer expiries and network
// completions are all fed back in as method calls. Deferred results carry
// the id or token they were started with, and are dropped if the state has
// moved on.
package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/pluqqy/usernamer/pkg/models"
)

// ValidationMessage is shown when generation is requested without a seed word
const ValidationMessage = "Please enter a word to start."

var (
	// ErrEmptySeedWord rejects a generate action with a blank seed word
	ErrEmptySeedWord = errors.New(ValidationMessage)
	// ErrGenerationInProgress rejects a generate action while one is outstanding
	ErrGenerationInProgress = errors.New("generation already in progress")
)

// IDSource returns identifiers that are unique within a session
type IDSource func() string

// Options configures New
type Options struct {
	IDs          IDSource
	Category     models.Category
	WordPosition models.WordPosition
}

// Session is the state machine behind the generator screen
type Session struct {
	ids IDSource

	seedWord     string
	category     models.Category
	wordPosition models.WordPosition

	names     []models.GeneratedName
	favorites []string

	loading bool
	err     string

	copiedName  string
	copiedToken uint64
}

// New creates a session in the idle state
func New(opts Options) *Session {
	s := &Session{
		ids:          opts.IDs,
		category:     opts.Category,
		wordPosition: opts.WordPosition,
	}
	if s.ids == nil {
		s.ids = uuid.NewString
	}
	if !s.category.Valid() {
		s.category = models.DefaultCategory
	}
	if s.wordPosition != models.PositionBefore && s.wordPosition != models.PositionAfter {
		s.wordPosition = models.DefaultWordPosition
	}
	return s
}

// SeedWord returns the seed word as typed
func (s *Session) SeedWord() string { return s.seedWord }

// Category returns the selected category
func (s *Session) Category() models.Category { return s.category }

// WordPosition returns the selected word position
func (s *Session) WordPosition() models.WordPosition { return s.wordPosition }

// Loading reports whether a generation request is outstanding
func (s *Session) Loading() bool { return s.loading }

// Err returns the current error message, or "" if there is none
func (s *Session) Err() string { return s.err }

// CopiedName returns the name showing a copy confirmation, or ""
func (s *Session) CopiedName() string { return s.copiedName }

// SetSeedWord replaces the seed word. It is stored untrimmed.
func (s *Session) SetSeedWord(word string) { s.seedWord = word }

// SetCategory selects a category; values outside the set are ignored
func (s *Session) SetCategory(c models.Category) bool {
	if !c.Valid() {
		return false
	}
	s.category = c
	return true
}

// CycleCategory moves the selection delta steps through the category set
func (s *Session) CycleCategory(delta int) models.Category {
	s.category = s.category.Next(delta)
	return s.category
}

// SetWordPosition selects before or after; other values are ignored
func (s *Session) SetWordPosition(p models.WordPosition) bool {
	if p != models.PositionBefore && p != models.PositionAfter {
		return false
	}
	s.wordPosition = p
	return true
}

// ToggleWordPosition flips between before and after
func (s *Session) ToggleWordPosition() models.WordPosition {
	s.wordPosition = s.wordPosition.Toggle()
	return s.wordPosition
}

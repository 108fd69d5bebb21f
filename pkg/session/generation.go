package session

import (
	"strings"

	"github.com/pluqqy/usernamer/pkg/generator"
	"github.com/pluqqy/usernamer/pkg/models"
)

// BeginGenerate enters the generating state and returns the request to send.
//
// While a request is outstanding it returns ErrGenerationInProgress and
// changes nothing. A blank seed word sets the validation message and
// returns ErrEmptySeedWord without touching loading or results. Otherwise
// the previous results and error are cleared before the request resolves.
func (s *Session) BeginGenerate() (generator.Request, error) {
	if s.loading {
		return generator.Request{}, ErrGenerationInProgress
	}

	seed := strings.TrimSpace(s.seedWord)
	if seed == "" {
		s.err = ValidationMessage
		return generator.Request{}, ErrEmptySeedWord
	}

	s.err = ""
	s.names = nil
	s.loading = true

	return generator.Request{
		SeedWord:     seed,
		Category:     s.category,
		WordPosition: s.wordPosition,
	}, nil
}

// CompleteGenerate applies the outcome of the outstanding request. On
// success every name becomes a fresh unchecked item with a new id. On
// failure the generic message is shown and the list stays empty. It
// returns false if no request was outstanding.
func (s *Session) CompleteGenerate(names []string, err error) bool {
	if !s.loading {
		return false
	}
	s.loading = false

	if err != nil {
		s.err = generator.ErrGenerationFailed.Error()
		s.names = nil
		return true
	}

	items := make([]models.GeneratedName, 0, len(names))
	used := make(map[string]struct{}, len(names))
	for _, name := range names {
		id := s.newID(used)
		used[id] = struct{}{}
		items = append(items, models.GeneratedName{
			ID:           id,
			Name:         name,
			Availability: models.StatusUnchecked,
		})
	}
	s.names = items
	s.err = ""
	return true
}

// newID draws ids until one is unused in the list being built
func (s *Session) newID(used map[string]struct{}) string {
	for {
		id := s.ids()
		if _, dup := used[id]; !dup && id != "" {
			return id
		}
	}
}

// Names returns a copy of the current result list in API order
func (s *Session) Names() []models.GeneratedName {
	out := make([]models.GeneratedName, len(s.names))
	copy(out, s.names)
	return out
}

// Name looks up a current result by id
func (s *Session) Name(id string) (models.GeneratedName, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.names[i], true
	}
	return models.GeneratedName{}, false
}

func (s *Session) indexOf(id string) int {
	for i := range s.names {
		if s.names[i].ID == id {
			return i
		}
	}
	return -1
}

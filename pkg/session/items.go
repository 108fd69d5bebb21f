package session

import (
	"slices"

	"github.com/pluqqy/usernamer/pkg/models"
)

// ToggleFavorite adds name if absent and removes it if present. It returns
// whether name is a favorite afterwards. Favorites survive regeneration.
func (s *Session) ToggleFavorite(name string) bool {
	if i := slices.Index(s.favorites, name); i >= 0 {
		s.favorites = slices.Delete(s.favorites, i, i+1)
		return false
	}
	s.favorites = append(s.favorites, name)
	return true
}

// IsFavorite reports whether name is in favorites
func (s *Session) IsFavorite(name string) bool {
	return slices.Contains(s.favorites, name)
}

// Favorites returns favorites in the order they were added
func (s *Session) Favorites() []string {
	return slices.Clone(s.favorites)
}

// BeginCheck moves an unchecked item to checking and returns its name.
// Items already checking or resolved, and unknown ids, are absorbed:
// ok is false and the caller must not start another check.
func (s *Session) BeginCheck(id string) (name string, ok bool) {
	i := s.indexOf(id)
	if i < 0 || s.names[i].Availability != models.StatusUnchecked {
		return "", false
	}
	s.names[i].Availability = models.StatusChecking
	return s.names[i].Name, true
}

// ResolveCheck records the result of a check. It applies only while the
// item is still in the current list and checking; results for items
// discarded by a regeneration are dropped.
func (s *Session) ResolveCheck(id string, status models.AvailabilityStatus) bool {
	if !status.IsResolved() {
		return false
	}
	i := s.indexOf(id)
	if i < 0 || s.names[i].Availability != models.StatusChecking {
		return false
	}
	s.names[i].Availability = status
	return true
}

// MarkCopied shows the copy confirmation for name and returns a token for
// the pending reset. Each call supersedes the previous token.
func (s *Session) MarkCopied(name string) uint64 {
	s.copiedToken++
	s.copiedName = name
	return s.copiedToken
}

// ClearCopied ends the copy confirmation if token is still the latest
func (s *Session) ClearCopied(token uint64) bool {
	if token != s.copiedToken || s.copiedName == "" {
		return false
	}
	s.copiedName = ""
	return true
}

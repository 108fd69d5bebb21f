package models

import (
	"fmt"
	"strings"
)

// Category steers the vocabulary the generator combines with the seed word
type Category string

const (
	CategoryRandom   Category = "Random"
	CategoryGaming   Category = "Gaming"
	CategoryTech     Category = "Tech"
	CategoryFantasy  Category = "Fantasy"
	CategorySpace    Category = "Space"
	CategoryNature   Category = "Nature"
	CategoryMystical Category = "Mystical"
)

// DefaultCategory is selected when a session starts
const DefaultCategory = CategoryGaming

// Categories returns the closed category set in display order
func Categories() []Category {
	return []Category{
		CategoryRandom,
		CategoryGaming,
		CategoryTech,
		CategoryFantasy,
		CategorySpace,
		CategoryNature,
		CategoryMystical,
	}
}

// ParseCategory matches s against the category set, ignoring case
func ParseCategory(s string) (Category, error) {
	trimmed := strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(string(c), trimmed) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %q", s)
}

// Valid reports whether c is a member of the category set
func (c Category) Valid() bool {
	for _, candidate := range Categories() {
		if candidate == c {
			return true
		}
	}
	return false
}

// Next returns the category delta steps away, wrapping around the set
func (c Category) Next(delta int) Category {
	all := Categories()
	idx := 0
	for i, candidate := range all {
		if candidate == c {
			idx = i
			break
		}
	}
	n := len(all)
	return all[((idx+delta)%n+n)%n]
}

// WordPosition places the seed word relative to the category word
type WordPosition string

const (
	PositionBefore WordPosition = "before"
	PositionAfter  WordPosition = "after"
)

// DefaultWordPosition is selected when a session starts
const DefaultWordPosition = PositionBefore

// ParseWordPosition accepts "before" or "after", ignoring case
func ParseWordPosition(s string) (WordPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(PositionBefore):
		return PositionBefore, nil
	case string(PositionAfter):
		return PositionAfter, nil
	default:
		return "", fmt.Errorf("invalid word position: %q (must be: before or after)", s)
	}
}

// Toggle flips between before and after
func (p WordPosition) Toggle() WordPosition {
	if p == PositionAfter {
		return PositionBefore
	}
	return PositionAfter
}

// AvailabilityStatus is the simulated registration state of a generated name
type AvailabilityStatus string

const (
	StatusUnchecked AvailabilityStatus = "unchecked"
	StatusChecking  AvailabilityStatus = "checking"
	StatusAvailable AvailabilityStatus = "available"
	StatusTaken     AvailabilityStatus = "taken"
)

// IsResolved reports whether a check has finished
func (s AvailabilityStatus) IsResolved() bool {
	return s == StatusAvailable || s == StatusTaken
}

// GeneratedName is one candidate username in the current result set.
// Name is kept exactly as the model returned it.
type GeneratedName struct {
	ID           string             `json:"id" yaml:"id"`
	Name         string             `json:"name" yaml:"name"`
	Availability AvailabilityStatus `json:"availability" yaml:"availability"`
}

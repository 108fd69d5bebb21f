package tui

import (
	"github.com/pluqqy/usernamer/pkg/models"
)

// pane represents the focusable sections of the generator view
type pane int

const (
	seedPane pane = iota
	resultsPane
	favoritesPane
)

// generateResultMsg carries the outcome of one generation request
type generateResultMsg struct {
	names []string
	err   error
}

// availabilityResultMsg carries the outcome of one availability check
type availabilityResultMsg struct {
	id     string
	status models.AvailabilityStatus
}

// clearCopiedMsg fires when a copy confirmation expires
type clearCopiedMsg struct {
	token uint64
}

// StatusMsg sets the app status bar text
type StatusMsg string

package tui

// StateManager handles cursor positions and pane navigation for the
// generator view
type StateManager struct {
	// Cursor positions
	ResultCursor   int
	FavoriteCursor int

	// Active pane tracking
	ActivePane pane

	// Item counts (for bounds checking)
	resultCount   int
	favoriteCount int
}

// NewStateManager creates a new state manager focused on the seed input
func NewStateManager() *StateManager {
	return &StateManager{
		ActivePane: seedPane,
	}
}

// UpdateCounts updates the item counts for bounds checking
func (sm *StateManager) UpdateCounts(resultCount, favoriteCount int) {
	sm.resultCount = resultCount
	sm.favoriteCount = favoriteCount

	sm.ResultCursor = clampCursor(sm.ResultCursor, resultCount)
	sm.FavoriteCursor = clampCursor(sm.FavoriteCursor, favoriteCount)
}

func clampCursor(cursor, count int) int {
	if count == 0 || cursor < 0 {
		return 0
	}
	if cursor >= count {
		return count - 1
	}
	return cursor
}

// MoveCursorUp moves the cursor up in the active pane
func (sm *StateManager) MoveCursorUp() bool {
	switch sm.ActivePane {
	case resultsPane:
		if sm.ResultCursor > 0 {
			sm.ResultCursor--
			return true
		}
	case favoritesPane:
		if sm.FavoriteCursor > 0 {
			sm.FavoriteCursor--
			return true
		}
	}
	return false
}

// MoveCursorDown moves the cursor down in the active pane
func (sm *StateManager) MoveCursorDown() bool {
	switch sm.ActivePane {
	case resultsPane:
		if sm.ResultCursor < sm.resultCount-1 {
			sm.ResultCursor++
			return true
		}
	case favoritesPane:
		if sm.FavoriteCursor < sm.favoriteCount-1 {
			sm.FavoriteCursor++
			return true
		}
	}
	return false
}

// HandleTabNavigation cycles seed -> results -> favorites, or backwards
func (sm *StateManager) HandleTabNavigation(reverse bool) {
	if reverse {
		switch sm.ActivePane {
		case seedPane:
			sm.ActivePane = favoritesPane
		case resultsPane:
			sm.ActivePane = seedPane
		case favoritesPane:
			sm.ActivePane = resultsPane
		}
		return
	}

	switch sm.ActivePane {
	case seedPane:
		sm.ActivePane = resultsPane
	case resultsPane:
		sm.ActivePane = favoritesPane
	case favoritesPane:
		sm.ActivePane = seedPane
	}
}

// IsInSeedPane reports whether keystrokes go to the seed input
func (sm *StateManager) IsInSeedPane() bool {
	return sm.ActivePane == seedPane
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/usernamer/pkg/models"
)

const (
	tagline          = "Instantly create unique names with a touch of AI magic."
	emptyResultsText = "Your generated usernames will appear here."
	emptyFavsText    = "Press f on a suggestion to save it here."
	statusCellWidth  = 12
)

func (m *GeneratorModel) leftWidth() int {
	if m.width <= 0 {
		return 60
	}
	return max(m.width*2/3, 30)
}

func (m *GeneratorModel) rightWidth() int {
	return max(m.width-m.leftWidth(), 20)
}

// listRows is how many list lines fit below the header and controls
func (m *GeneratorModel) listRows() int {
	return max(m.height-20, 3)
}

func (m *GeneratorModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderControls(),
		m.renderResults(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderFavorites())

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.width, tagline),
		body,
		m.renderHelp(),
	)
}

func (m *GeneratorModel) renderControls() string {
	width := m.leftWidth()
	active := m.stateManager.IsInSeedPane()

	category := fmt.Sprintf("%s ‹ %s ›",
		GetActiveHeaderStyle(active).Render("Category:"),
		NormalStyle.Render(string(m.session.Category())))

	position := m.session.WordPosition()
	positionLine := lipgloss.JoinHorizontal(lipgloss.Center,
		GetActiveHeaderStyle(active).Render("Position: "),
		GetOptionStyle(position == models.PositionBefore).Render("Before"),
		GetOptionStyle(position == models.PositionAfter).Render("After"),
	)

	var action string
	if m.session.Loading() {
		action = fmt.Sprintf("%s Generating...", m.spinner.View())
	} else {
		action = CursorStyle.Render("⏎ Generate Usernames")
	}

	lines := []string{
		m.seedInput.View(),
		ContentPaddingStyle.Render(category),
		ContentPaddingStyle.Render(positionLine),
		ContentPaddingStyle.Render(action),
	}
	if msg := m.session.Err(); msg != "" {
		lines = append(lines, ContentPaddingStyle.Render(ErrorStyle.Render(wordwrap.String(msg, max(width-4, 10)))))
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m *GeneratorModel) renderResults() string {
	width := m.leftWidth()
	active := m.stateManager.ActivePane == resultsPane
	heading := GetActiveHeaderStyle(active).Render("Suggestions")

	var body string
	names := m.session.Names()
	switch {
	case m.session.Loading():
		body = fmt.Sprintf("%s %s", m.spinner.View(), DescriptionStyle.Render("Asking the model..."))
	case len(names) == 0:
		body = EmptyStyle.Render(emptyResultsText)
	default:
		start, end := visibleRange(m.stateManager.ResultCursor, len(names), m.listRows())
		rows := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			rows = append(rows, m.renderResultRow(names[i], active && i == m.stateManager.ResultCursor, width-4))
		}
		body = strings.Join(rows, "\n")
	}

	return GetBorderStyle(active).
		Width(width - 2).
		Padding(0, 1).
		Render(heading + "\n" + body)
}

func (m *GeneratorModel) renderResultRow(item models.GeneratedName, selected bool, width int) string {
	heart := "♡"
	if m.session.IsFavorite(item.Name) {
		heart = FavoriteStyle.Render("♥")
	}
	copied := " "
	if m.session.CopiedName() == item.Name {
		copied = CopiedStyle.Render("✓ copied")
	}

	nameWidth := max(width-statusCellWidth-14, 6)
	name := truncate.StringWithTail(item.Name, uint(nameWidth), "…")

	prefix := "  "
	nameStyle := NormalStyle
	if selected {
		prefix = CursorStyle.Render("▸ ")
		nameStyle = SelectedStyle
	}

	status := lipgloss.NewStyle().Width(statusCellWidth).Render(m.renderAvailability(item.Availability))
	return prefix +
		lipgloss.NewStyle().Width(nameWidth).Render(nameStyle.Render(name)) + " " +
		status + " " + heart + " " + copied
}

func (m *GeneratorModel) renderAvailability(status models.AvailabilityStatus) string {
	switch status {
	case models.StatusChecking:
		return DescriptionStyle.Render("checking…")
	case models.StatusAvailable:
		return AvailableStyle.Render("✓ Available")
	case models.StatusTaken:
		return TakenStyle.Render("✗ Taken")
	default:
		return CheckHintStyle.Render("[a] Check")
	}
}

func (m *GeneratorModel) renderFavorites() string {
	width := m.rightWidth()
	active := m.stateManager.ActivePane == favoritesPane
	heading := GetActiveHeaderStyle(active).Render(FavoriteStyle.Render("♥") + " Favorites")

	favorites := m.session.Favorites()
	var body string
	if len(favorites) == 0 {
		body = EmptyStyle.Render(wordwrap.String(emptyFavsText, max(width-4, 10)))
	} else {
		start, end := visibleRange(m.stateManager.FavoriteCursor, len(favorites), m.listRows()+6)
		rows := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			name := truncate.StringWithTail(favorites[i], uint(max(width-16, 6)), "…")
			row := "  " + NormalStyle.Render(name)
			if active && i == m.stateManager.FavoriteCursor {
				row = CursorStyle.Render("▸ ") + SelectedStyle.Render(name)
			}
			if m.session.CopiedName() == favorites[i] {
				row += " " + CopiedStyle.Render("✓ copied")
			}
			rows = append(rows, row)
		}
		body = strings.Join(rows, "\n")
	}

	return GetBorderStyle(active).
		Width(width - 2).
		Padding(0, 1).
		Render(heading + "\n" + body)
}

func (m *GeneratorModel) renderHelp() string {
	var keys []string
	switch m.stateManager.ActivePane {
	case seedPane:
		keys = []string{
			helpEntry(Shortcuts.Generate, "generate"),
			helpEntry(Shortcuts.Category, "category"),
			helpEntry(Shortcuts.Position, "position"),
			helpEntry(Shortcuts.SwitchPane, "pane"),
			helpEntry(Shortcuts.ForceQuit, "quit"),
		}
	case resultsPane:
		keys = []string{
			helpEntry(Shortcuts.Check, "check"),
			helpEntry(Shortcuts.Favorite, "favorite"),
			helpEntry(Shortcuts.Copy, "copy"),
			helpEntry(Shortcuts.Regenerate, "regenerate"),
			helpEntry(Shortcuts.ListCategory, "category"),
			helpEntry(Shortcuts.ListPosition, "position"),
			helpEntry(Shortcuts.EditSeed, "edit word"),
			helpEntry(Shortcuts.Quit, "quit"),
		}
	case favoritesPane:
		keys = []string{
			helpEntry(Shortcuts.Copy, "copy"),
			helpEntry(Shortcuts.Remove, "remove"),
			helpEntry(Shortcuts.Regenerate, "regenerate"),
			helpEntry(Shortcuts.EditSeed, "edit word"),
			helpEntry(Shortcuts.Quit, "quit"),
		}
	}
	return ContentPaddingStyle.Render(HelpStyle.Render(strings.Join(keys, " • ")))
}

// visibleRange returns the [start, end) window of rows that keeps the
// cursor on screen
func visibleRange(cursor, count, rows int) (int, int) {
	if count <= rows {
		return 0, count
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > count {
		start = count - rows
	}
	return start, start + rows
}

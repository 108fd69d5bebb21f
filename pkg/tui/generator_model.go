package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	"github.com/pluqqy/usernamer/pkg/availability"
	"github.com/pluqqy/usernamer/pkg/clipboard"
	"github.com/pluqqy/usernamer/pkg/generator"
	"github.com/pluqqy/usernamer/pkg/models"
	"github.com/pluqqy/usernamer/pkg/session"
)

// Dependencies are the collaborators the generator view drives
type Dependencies struct {
	Generator generator.Generator
	Checker   availability.Checker
	Clipboard clipboard.Writer
	Logger    hclog.Logger
	IDs       session.IDSource

	Category     models.Category
	WordPosition models.WordPosition

	RequestTimeout time.Duration
	CopyReset      time.Duration

	// Status is shown in the status bar until replaced
	Status string
}

// GeneratorModel is the single screen of the app: seed input, results and
// favorites. All session mutations happen in Update.
type GeneratorModel struct {
	session      *session.Session
	stateManager *StateManager

	generator generator.Generator
	checker   availability.Checker
	clipboard clipboard.Writer
	logger    hclog.Logger

	requestTimeout time.Duration
	copyReset      time.Duration

	seedInput *SeedInput
	spinner   spinner.Model

	width  int
	height int
}

// NewGeneratorModel creates the generator view
func NewGeneratorModel(deps Dependencies) *GeneratorModel {
	logger := deps.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	checker := deps.Checker
	if checker == nil {
		checker = availability.NewSimulator(availability.DefaultDelay, nil)
	}
	clip := deps.Clipboard
	if clip == nil {
		clip = clipboard.System{}
	}
	defaults := models.DefaultSettings()
	requestTimeout := deps.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaults.RequestTimeout
	}
	copyReset := deps.CopyReset
	if copyReset <= 0 {
		copyReset = defaults.CopyReset
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	m := &GeneratorModel{
		session: session.New(session.Options{
			IDs:          deps.IDs,
			Category:     deps.Category,
			WordPosition: deps.WordPosition,
		}),
		stateManager:   NewStateManager(),
		generator:      deps.Generator,
		checker:        checker,
		clipboard:      clip,
		logger:         logger.Named("tui"),
		requestTimeout: requestTimeout,
		copyReset:      copyReset,
		seedInput:      NewSeedInput(),
		spinner:        s,
	}
	m.seedInput.SetActive(true)
	return m
}

// Session exposes the underlying state, read-only by convention
func (m *GeneratorModel) Session() *session.Session {
	return m.session
}

// SetSize sets the view dimensions
func (m *GeneratorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.seedInput.SetWidth(m.leftWidth())
}

func (m *GeneratorModel) Init() tea.Cmd {
	return m.seedInput.SetActive(true)
}

func (m *GeneratorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case generateResultMsg:
		m.handleGenerateResult(msg)
		return m, nil

	case availabilityResultMsg:
		if !m.session.ResolveCheck(msg.id, msg.status) {
			m.logger.Debug("dropped stale availability result", "id", msg.id)
		}
		return m, nil

	case clearCopiedMsg:
		m.session.ClearCopied(msg.token)
		return m, nil

	case spinner.TickMsg:
		if !m.session.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			return m, m.switchPane(false)
		case "shift+tab":
			return m, m.switchPane(true)
		}

		switch m.stateManager.ActivePane {
		case seedPane:
			return m, m.handleSeedKeys(msg)
		case resultsPane:
			return m, m.handleResultsKeys(msg)
		case favoritesPane:
			return m, m.handleFavoritesKeys(msg)
		}
	}

	return m, nil
}

func (m *GeneratorModel) switchPane(reverse bool) tea.Cmd {
	m.stateManager.HandleTabNavigation(reverse)
	return m.seedInput.SetActive(m.stateManager.IsInSeedPane())
}

func (m *GeneratorModel) focusSeed() tea.Cmd {
	m.stateManager.ActivePane = seedPane
	return m.seedInput.SetActive(true)
}

func (m *GeneratorModel) handleSeedKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return m.generate()
	case "up":
		m.session.CycleCategory(-1)
		return nil
	case "down":
		m.session.CycleCategory(1)
		return nil
	case "ctrl+t":
		m.session.ToggleWordPosition()
		return nil
	case "esc":
		return m.switchPane(false)
	}

	var cmd tea.Cmd
	m.seedInput, cmd = m.seedInput.Update(msg)
	m.session.SetSeedWord(m.seedInput.Value())
	return cmd
}

// handleSharedKeys covers keys that behave the same in the list panes
func (m *GeneratorModel) handleSharedKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "q":
		return true, tea.Quit
	case "up", "k":
		m.stateManager.MoveCursorUp()
		return true, nil
	case "down", "j":
		m.stateManager.MoveCursorDown()
		return true, nil
	case "left", "h":
		m.session.CycleCategory(-1)
		return true, nil
	case "right", "l":
		m.session.CycleCategory(1)
		return true, nil
	case "p":
		m.session.ToggleWordPosition()
		return true, nil
	case "/", "i", "esc":
		return true, m.focusSeed()
	case "g":
		return true, m.generate()
	}
	return false, nil
}

func (m *GeneratorModel) handleResultsKeys(msg tea.KeyMsg) tea.Cmd {
	if handled, cmd := m.handleSharedKeys(msg); handled {
		return cmd
	}

	item, ok := m.selectedResult()
	switch msg.String() {
	case "enter":
		return m.generate()
	case "a":
		if ok {
			return m.checkAvailability(item.ID)
		}
	case "f", " ":
		if ok {
			m.toggleFavorite(item.Name)
		}
	case "y", "c":
		if ok {
			return m.copyName(item.Name)
		}
	}
	return nil
}

func (m *GeneratorModel) handleFavoritesKeys(msg tea.KeyMsg) tea.Cmd {
	if handled, cmd := m.handleSharedKeys(msg); handled {
		return cmd
	}

	name, ok := m.selectedFavorite()
	if !ok {
		return nil
	}
	switch msg.String() {
	case "y", "c", "enter":
		return m.copyName(name)
	case "d", "x", "f", "delete", "backspace":
		m.toggleFavorite(name)
	}
	return nil
}

func (m *GeneratorModel) selectedResult() (models.GeneratedName, bool) {
	names := m.session.Names()
	cursor := m.stateManager.ResultCursor
	if cursor < 0 || cursor >= len(names) {
		return models.GeneratedName{}, false
	}
	return names[cursor], true
}

func (m *GeneratorModel) selectedFavorite() (string, bool) {
	favorites := m.session.Favorites()
	cursor := m.stateManager.FavoriteCursor
	if cursor < 0 || cursor >= len(favorites) {
		return "", false
	}
	return favorites[cursor], true
}

func (m *GeneratorModel) syncCounts() {
	m.stateManager.UpdateCounts(len(m.session.Names()), len(m.session.Favorites()))
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// App is the root bubbletea model. It owns global keys and the status bar
// and routes everything else to the generator view.
type App struct {
	generator *GeneratorModel
	width     int
	height    int
	statusMsg string
}

func NewApp(deps Dependencies) *App {
	return &App{
		generator: NewGeneratorModel(deps),
		statusMsg: deps.Status,
	}
}

func (a *App) Init() tea.Cmd {
	return a.generator.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Leave a row for the status bar
		a.generator.SetSize(msg.Width, msg.Height-1)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil
	}

	m, cmd := a.generator.Update(msg)
	if gm, ok := m.(*GeneratorModel); ok {
		a.generator = gm
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.generator.View()

	// Add status bar if there's a message
	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		content = lipgloss.JoinVertical(lipgloss.Top, content, statusStyle.Render(a.statusMsg))
	}

	return content
}

// Generator returns the generator view
func (a *App) Generator() *GeneratorModel {
	return a.generator
}

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SeedInput is the text field for the seed word
type SeedInput struct {
	input    textinput.Model
	isActive bool
	width    int
}

// NewSeedInput creates a new seed input
func NewSeedInput() *SeedInput {
	ti := textinput.New()
	ti.Placeholder = "e.g., Nova, Shadow, Cyber"
	ti.CharLimit = 64
	ti.Width = 40 // Default width, will be adjusted
	ti.Prompt = ""

	return &SeedInput{
		input: ti,
	}
}

// SetActive sets whether the input receives keystrokes
func (s *SeedInput) SetActive(active bool) tea.Cmd {
	s.isActive = active
	if active {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

// SetWidth sets the width for the input
func (s *SeedInput) SetWidth(width int) {
	s.width = width
	// Width - 4 (borders and padding) - 7 (label)
	s.input.Width = max(width-11, 4)
}

// Value returns the current seed text
func (s *SeedInput) Value() string {
	return s.input.Value()
}

// SetValue sets the seed text
func (s *SeedInput) SetValue(value string) {
	s.input.SetValue(value)
}

// Update handles tea messages for the input
func (s *SeedInput) Update(msg tea.Msg) (*SeedInput, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the input with a focus-dependent border
func (s *SeedInput) View() string {
	borderColor := ColorInactive
	if s.isActive {
		borderColor = ColorActive
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(max(s.width-2, 10)).
		Padding(0, 1)

	label := GetActiveHeaderStyle(s.isActive).Render("Word:")
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Center, label, " ", s.input.View()))
}

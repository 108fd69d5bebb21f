package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	"github.com/pluqqy/usernamer/pkg/availability"
	"github.com/pluqqy/usernamer/pkg/generator"
	"github.com/pluqqy/usernamer/pkg/models"
	"github.com/pluqqy/usernamer/pkg/session"
)

// generate starts a generation if the session allows it. Presses while a
// request is outstanding are ignored.
func (m *GeneratorModel) generate() tea.Cmd {
	req, err := m.session.BeginGenerate()
	if err != nil {
		if !errors.Is(err, session.ErrGenerationInProgress) {
			m.logger.Debug("generate rejected", "reason", err)
		}
		return nil
	}
	m.syncCounts()
	m.stateManager.ResultCursor = 0

	return tea.Batch(m.spinner.Tick, generateCmd(m.generator, req, m.requestTimeout))
}

// generateCmd issues exactly one request. A nil generator or a panic in
// the generator resolves to a failure rather than escaping the event loop.
func generateCmd(gen generator.Generator, req generator.Request, timeout time.Duration) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = generateResultMsg{err: fmt.Errorf("generator panic: %v", r)}
			}
		}()
		if gen == nil {
			return generateResultMsg{err: errors.New("no generator configured")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		names, err := gen.Generate(ctx, req)
		return generateResultMsg{names: names, err: err}
	}
}

func (m *GeneratorModel) handleGenerateResult(msg generateResultMsg) {
	if msg.err != nil && !errors.Is(msg.err, generator.ErrGenerationFailed) {
		m.logger.Error("generation failed", "error", msg.err)
	}
	if !m.session.CompleteGenerate(msg.names, msg.err) {
		m.logger.Warn("generation result arrived with no request outstanding")
		return
	}
	m.syncCounts()
}

// checkAvailability starts a check for id unless one is already running or
// the item is resolved
func (m *GeneratorModel) checkAvailability(id string) tea.Cmd {
	name, ok := m.session.BeginCheck(id)
	if !ok {
		return nil
	}
	return checkCmd(m.checker, id, name, m.logger)
}

// checkCmd runs the checker off the event loop. A failed check resolves to
// taken since the name cannot be shown as free.
func checkCmd(checker availability.Checker, id, name string, logger hclog.Logger) tea.Cmd {
	return func() tea.Msg {
		status, err := checker.Check(context.Background(), name)
		if err != nil || !status.IsResolved() {
			logger.Warn("availability check failed", "name", name, "status", status, "error", err)
			status = models.StatusTaken
		}
		return availabilityResultMsg{id: id, status: status}
	}
}

func (m *GeneratorModel) toggleFavorite(name string) {
	m.session.ToggleFavorite(name)
	m.syncCounts()
}

// copyName writes name to the clipboard and shows the confirmation until
// the reset tick for this copy fires. Clipboard failures are only logged.
func (m *GeneratorModel) copyName(name string) tea.Cmd {
	if err := m.clipboard.WriteAll(name); err != nil {
		m.logger.Warn("failed to copy to clipboard", "name", name, "error", err)
	}
	token := m.session.MarkCopied(name)
	return tea.Tick(m.copyReset, func(time.Time) tea.Msg {
		return clearCopiedMsg{token: token}
	})
}

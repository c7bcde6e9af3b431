// Package tui is the terminal presentation layer for the estimation engine.
// It issues commands, reads derived views, and drives the round timer by
// scheduling one tick per second; the engine itself never schedules.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/louisbranch/storypoints/internal/estimation/service"
)

// RunSession starts the interactive session console.
func RunSession(engine *service.Engine, timerSeconds int) error {
	model := NewSessionModel(engine, timerSeconds)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(SessionModel); ok {
		history := m.engine.VotingHistory()
		if len(history) > 0 {
			fmt.Printf("session ended with %d archived round(s)\n", len(history))
		}
	}

	return nil
}

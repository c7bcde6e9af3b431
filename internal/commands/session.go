package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/louisbranch/storypoints/internal/estimation/domain"
	"github.com/louisbranch/storypoints/internal/estimation/event"
	"github.com/louisbranch/storypoints/internal/estimation/service"
	"github.com/louisbranch/storypoints/internal/platform/config"
	"github.com/louisbranch/storypoints/internal/platform/id"
	"github.com/louisbranch/storypoints/internal/tui"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an estimation session",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}

		engine := service.New(
			service.WithJournal(&event.MemoryJournal{}),
			service.WithConfig(domain.Config{
				TimerSeconds:  settings.TimerSeconds,
				Deck:          domain.DeckFromValues(settings.DeckValues()),
				AllowRevoting: settings.AllowRevoting,
			}),
		)

		leaderID, err := id.NewID()
		if err != nil {
			return fmt.Errorf("generate leader id: %w", err)
		}
		if _, err := engine.CreateSession(leaderID); err != nil {
			return err
		}
		engine.SetCurrentUser(leaderID, settings.UserName, domain.RoleLeader)

		return tui.RunSession(engine, settings.TimerSeconds)
	},
}

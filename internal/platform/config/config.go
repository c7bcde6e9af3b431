// Package config loads engine settings from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Settings carries the externally configurable defaults for a session.
type Settings struct {
	// UserName is the display name of the local acting identity.
	UserName string `env:"STORYPOINTS_USER_NAME" envDefault:"Facilitator"`
	// TimerSeconds bounds each voting round.
	TimerSeconds int `env:"STORYPOINTS_TIMER_SECONDS" envDefault:"120"`
	// Deck is the comma-separated list of vote card values.
	Deck string `env:"STORYPOINTS_DECK" envDefault:"1,2,3,5,8,13,21,?"`
	// AllowRevoting advises the presentation layer whether participants may
	// change a submitted vote.
	AllowRevoting bool `env:"STORYPOINTS_ALLOW_REVOTING" envDefault:"false"`
}

// Load parses Settings from the environment.
func Load() (Settings, error) {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return settings, nil
}

// DeckValues splits the configured deck string into individual card values.
func (s Settings) DeckValues() []string {
	return strings.Split(s.Deck, ",")
}

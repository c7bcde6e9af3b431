package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/storypoints/internal/platform/id"
)

// DefaultTimerSeconds is the round countdown used when no configuration is
// supplied.
const DefaultTimerSeconds = 120

// VoteCard is one card in the session deck. Value is the raw string compared
// during tallying; special cards such as "?" are valid values.
type VoteCard struct {
	ID    string
	Value string
	Label string
}

// Config holds the per-session round configuration.
type Config struct {
	TimerSeconds  int
	Deck          []VoteCard
	AllowRevoting bool
}

// ConfigPatch describes a partial configuration update. Nil fields leave the
// existing value unchanged; a nil Deck keeps the current deck.
type ConfigPatch struct {
	TimerSeconds  *int
	Deck          []VoteCard
	AllowRevoting *bool
}

// DefaultDeck returns the standard Fibonacci-style deck plus the unsure card.
func DefaultDeck() []VoteCard {
	values := []string{"1", "2", "3", "5", "8", "13", "21", "?"}
	deck := make([]VoteCard, 0, len(values))
	for _, v := range values {
		deck = append(deck, VoteCard{ID: v, Value: v, Label: v})
	}
	return deck
}

// DeckFromValues builds a deck from raw card values, trimming blanks and
// dropping duplicates so card values stay unique.
func DeckFromValues(values []string) []VoteCard {
	seen := make(map[string]struct{}, len(values))
	deck := make([]VoteCard, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		deck = append(deck, VoteCard{ID: v, Value: v, Label: v})
	}
	return deck
}

// DefaultConfig returns the configuration a new session starts with.
func DefaultConfig() Config {
	return Config{
		TimerSeconds:  DefaultTimerSeconds,
		Deck:          DefaultDeck(),
		AllowRevoting: false,
	}
}

// Session coordinates one estimation meeting. It owns the review item queue;
// the roster and voting state are sibling aggregates coordinated by the
// service layer.
type Session struct {
	ID        string
	LeaderID  string
	IsActive  bool
	CreatedAt time.Time
	Config    Config
	Queue     Queue
}

// NewSession returns an inactive session with the default configuration and
// an empty queue.
func NewSession() Session {
	return Session{Config: DefaultConfig()}
}

// Create starts a fresh session: a new generated id, active state, and an
// empty queue. Any prior queue state is discarded. The leader id is stored
// as an opaque identifier; validation is the identity collaborator's job.
func (s *Session) Create(leaderID string, now func() time.Time, idGenerator func() (string, error)) error {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	sessionID, err := idGenerator()
	if err != nil {
		return fmt.Errorf("generate session id: %w", err)
	}

	s.ID = sessionID
	s.LeaderID = leaderID
	s.IsActive = true
	s.CreatedAt = now().UTC()
	s.Queue = Queue{}
	return nil
}

// End deactivates the session. The queue, roster, and voting history are
// left intact for display; round starts are refused at the service layer.
func (s *Session) End() {
	s.IsActive = false
}

// UpdateConfig shallow-merges the patch into the current configuration.
func (s *Session) UpdateConfig(patch ConfigPatch) {
	if patch.TimerSeconds != nil {
		s.Config.TimerSeconds = *patch.TimerSeconds
	}
	if patch.Deck != nil {
		s.Config.Deck = patch.Deck
	}
	if patch.AllowRevoting != nil {
		s.Config.AllowRevoting = *patch.AllowRevoting
	}
}

package domain

import (
	"errors"
	"testing"
	"time"
)

func TestSessionCreateResetsQueue(t *testing.T) {
	fixed := time.Date(2026, 8, 12, 9, 30, 0, 0, time.UTC)

	session := NewSession()
	if _, err := session.Queue.Add("stale item", fixedClock(fixed), sequentialIDs("item")); err != nil {
		t.Fatalf("add item: %v", err)
	}

	if err := session.Create("leader-1", fixedClock(fixed), sequentialIDs("sess")); err != nil {
		t.Fatalf("create session: %v", err)
	}

	if session.ID != "sess1" {
		t.Fatalf("expected id sess1, got %q", session.ID)
	}
	if session.LeaderID != "leader-1" {
		t.Fatalf("expected leader-1, got %q", session.LeaderID)
	}
	if !session.IsActive {
		t.Fatal("expected session active")
	}
	if !session.CreatedAt.Equal(fixed) {
		t.Fatalf("expected created at %v, got %v", fixed, session.CreatedAt)
	}
	if len(session.Queue.Items) != 0 {
		t.Fatalf("expected empty queue after create, got %d items", len(session.Queue.Items))
	}
	if session.Queue.CurrentID() != "" {
		t.Fatalf("expected no current item, got %q", session.Queue.CurrentID())
	}
}

func TestSessionCreateIDGeneratorError(t *testing.T) {
	genErr := errors.New("entropy exhausted")
	session := NewSession()

	err := session.Create("leader-1", nil, func() (string, error) { return "", genErr })
	if !errors.Is(err, genErr) {
		t.Fatalf("expected wrapped generator error, got %v", err)
	}
	if session.IsActive {
		t.Fatal("expected session to stay inactive on id failure")
	}
}

func TestSessionEndKeepsQueue(t *testing.T) {
	session := NewSession()
	if err := session.Create("leader-1", nil, sequentialIDs("sess")); err != nil {
		t.Fatalf("create session: %v", err)
	}
	if _, err := session.Queue.Add("item a", nil, sequentialIDs("item")); err != nil {
		t.Fatalf("add item: %v", err)
	}

	session.End()

	if session.IsActive {
		t.Fatal("expected session inactive")
	}
	if len(session.Queue.Items) != 1 {
		t.Fatalf("expected queue preserved, got %d items", len(session.Queue.Items))
	}
}

func TestSessionUpdateConfigShallowMerge(t *testing.T) {
	seconds := 60
	revote := true
	deck := DeckFromValues([]string{"XS", "S", "M", "L"})

	tests := []struct {
		name  string
		patch ConfigPatch
		check func(t *testing.T, cfg Config)
	}{
		{
			name:  "timer only",
			patch: ConfigPatch{TimerSeconds: &seconds},
			check: func(t *testing.T, cfg Config) {
				if cfg.TimerSeconds != 60 {
					t.Fatalf("expected 60 seconds, got %d", cfg.TimerSeconds)
				}
				if len(cfg.Deck) != len(DefaultDeck()) {
					t.Fatal("expected deck unchanged")
				}
				if cfg.AllowRevoting {
					t.Fatal("expected revoting unchanged")
				}
			},
		},
		{
			name:  "deck only",
			patch: ConfigPatch{Deck: deck},
			check: func(t *testing.T, cfg Config) {
				if len(cfg.Deck) != 4 || cfg.Deck[0].Value != "XS" {
					t.Fatalf("expected replaced deck, got %v", cfg.Deck)
				}
				if cfg.TimerSeconds != DefaultTimerSeconds {
					t.Fatal("expected timer unchanged")
				}
			},
		},
		{
			name:  "revoting only",
			patch: ConfigPatch{AllowRevoting: &revote},
			check: func(t *testing.T, cfg Config) {
				if !cfg.AllowRevoting {
					t.Fatal("expected revoting enabled")
				}
				if cfg.TimerSeconds != DefaultTimerSeconds {
					t.Fatal("expected timer unchanged")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewSession()
			session.UpdateConfig(tt.patch)
			tt.check(t, session.Config)
		})
	}
}

func TestDeckFromValuesDropsBlanksAndDuplicates(t *testing.T) {
	deck := DeckFromValues([]string{" 1 ", "2", "", "2", "?"})
	if len(deck) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(deck))
	}
	if deck[0].Value != "1" || deck[1].Value != "2" || deck[2].Value != "?" {
		t.Fatalf("unexpected deck order: %v", deck)
	}
}

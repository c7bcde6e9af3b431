package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.TimerSeconds != 120 {
		t.Fatalf("expected default 120 seconds, got %d", settings.TimerSeconds)
	}
	if settings.AllowRevoting {
		t.Fatal("expected revoting disabled by default")
	}
	values := settings.DeckValues()
	if len(values) != 8 || values[0] != "1" || values[7] != "?" {
		t.Fatalf("unexpected default deck: %v", values)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORYPOINTS_TIMER_SECONDS", "45")
	t.Setenv("STORYPOINTS_DECK", "XS,S,M,L,XL")
	t.Setenv("STORYPOINTS_ALLOW_REVOTING", "true")
	t.Setenv("STORYPOINTS_USER_NAME", "Dana")

	settings, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.TimerSeconds != 45 {
		t.Fatalf("expected 45 seconds, got %d", settings.TimerSeconds)
	}
	if !settings.AllowRevoting {
		t.Fatal("expected revoting enabled")
	}
	if settings.UserName != "Dana" {
		t.Fatalf("expected user Dana, got %q", settings.UserName)
	}
	if values := settings.DeckValues(); len(values) != 5 || values[0] != "XS" {
		t.Fatalf("unexpected deck: %v", values)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("STORYPOINTS_TIMER_SECONDS", "not-a-number")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

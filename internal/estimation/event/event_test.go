package event

import (
	"testing"
	"time"
)

func TestMemoryJournalAppendOrder(t *testing.T) {
	var journal MemoryJournal
	types := []Type{TypeSessionCreated, TypeItemAdded, TypeRoundStarted}
	for _, typ := range types {
		if err := journal.Append(Event{Type: typ}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events := journal.Events()
	if len(events) != len(types) {
		t.Fatalf("expected %d events, got %d", len(types), len(events))
	}
	for i, typ := range types {
		if events[i].Type != typ {
			t.Fatalf("expected %q at %d, got %q", typ, i, events[i].Type)
		}
	}
}

func TestEmitterFillsZeroTimestamp(t *testing.T) {
	fixed := time.Date(2026, 8, 12, 9, 0, 0, 0, time.UTC)
	var journal MemoryJournal
	emitter := NewEmitter(&journal)
	emitter.clock = func() time.Time { return fixed }

	if err := emitter.Emit(Event{Type: TypeSessionCreated}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	stamped := fixed.Add(time.Minute)
	if err := emitter.Emit(Event{Type: TypeSessionEnded, Timestamp: stamped}); err != nil {
		t.Fatalf("emit: %v", err)
	}

	events := journal.Events()
	if !events[0].Timestamp.Equal(fixed) {
		t.Fatalf("expected clock fill %v, got %v", fixed, events[0].Timestamp)
	}
	if !events[1].Timestamp.Equal(stamped) {
		t.Fatalf("expected supplied timestamp kept, got %v", events[1].Timestamp)
	}
}

func TestEmitterNilSafe(t *testing.T) {
	var emitter *Emitter
	if err := emitter.Emit(Event{Type: TypeSessionCreated}); err != nil {
		t.Fatalf("expected nil emitter to be a no-op, got %v", err)
	}
	if err := NewEmitter(nil).Emit(Event{Type: TypeSessionCreated}); err != nil {
		t.Fatalf("expected nil journal to be a no-op, got %v", err)
	}
}

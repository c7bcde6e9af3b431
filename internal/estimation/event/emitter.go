package event

import "time"

// Emitter records estimation events into a journal.
type Emitter struct {
	journal Journal
	clock   func() time.Time
}

// NewEmitter creates an emitter writing to the journal.
func NewEmitter(journal Journal) *Emitter {
	return &Emitter{journal: journal, clock: time.Now}
}

// Emit appends the event, filling a zero timestamp from the clock. It is a
// no-op when the emitter or journal is nil.
func (e *Emitter) Emit(evt Event) error {
	if e == nil || e.journal == nil {
		return nil
	}
	if evt.Timestamp.IsZero() {
		if e.clock == nil {
			evt.Timestamp = time.Now().UTC()
		} else {
			evt.Timestamp = e.clock().UTC()
		}
	}
	return e.journal.Append(evt)
}

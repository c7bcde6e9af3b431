// Package event defines the estimation event journal.
//
// Events are facts that have occurred, not commands: the engine appends one
// entry per applied command so collaborators can observe or replay what
// happened. Ignored commands produce no event.
package event

import "time"

// Type identifies the type of an estimation event.
type Type string

// Session lifecycle events.
const (
	// TypeSessionCreated records the creation of a session.
	TypeSessionCreated Type = "session.created"
	// TypeSessionEnded records the end of a session.
	TypeSessionEnded Type = "session.ended"
	// TypeConfigUpdated records a session configuration change.
	TypeConfigUpdated Type = "session.config_updated"
)

// Review item events.
const (
	// TypeItemAdded records a review item joining the queue.
	TypeItemAdded Type = "item.added"
	// TypeItemRemoved records a review item leaving the queue unestimated.
	TypeItemRemoved Type = "item.removed"
	// TypeItemSelected records a change of the current item.
	TypeItemSelected Type = "item.selected"
	// TypeItemCompleted records final points landing on the current item.
	TypeItemCompleted Type = "item.completed"
)

// Roster events.
const (
	// TypeParticipantJoined records a participant joining the roster.
	TypeParticipantJoined Type = "participant.joined"
	// TypeParticipantLeft records a participant leaving the roster.
	TypeParticipantLeft Type = "participant.left"
	// TypeParticipantUpdated records a presence or vote-status change.
	TypeParticipantUpdated Type = "participant.updated"
	// TypeRosterCleared records the roster being emptied.
	TypeRosterCleared Type = "participant.roster_cleared"
)

// Voting round events.
const (
	// TypeRoundStarted records the start of a voting round.
	TypeRoundStarted Type = "round.started"
	// TypeRoundEnded records a round being archived into history.
	TypeRoundEnded Type = "round.ended"
	// TypeVoteSubmitted records a vote landing on the current round.
	TypeVoteSubmitted Type = "round.vote_submitted"
	// TypeVoteCleared records a vote being withdrawn.
	TypeVoteCleared Type = "round.vote_cleared"
	// TypeVotesRevealed records the reveal signal. It carries no state.
	TypeVotesRevealed Type = "round.votes_revealed"
	// TypeHistoryCleared records the archived rounds being discarded.
	TypeHistoryCleared Type = "round.history_cleared"
)

// Event is one immutable entry in the estimation journal.
type Event struct {
	// SessionID is the session the event belongs to.
	SessionID string
	// Type identifies what happened.
	Type Type
	// SubjectID names the entity the event is about: a participant, review
	// item, or round id depending on the type. May be empty.
	SubjectID string
	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Journal is an append-only sink for estimation events.
type Journal interface {
	Append(Event) error
}

// MemoryJournal is an in-memory append-only Journal.
type MemoryJournal struct {
	events []Event
}

// Append records the event.
func (j *MemoryJournal) Append(evt Event) error {
	j.events = append(j.events, evt)
	return nil
}

// Events returns the recorded events in append order.
func (j *MemoryJournal) Events() []Event {
	return j.events
}

// Package service coordinates the estimation aggregates behind a single
// command and query surface.
//
// The Engine validates cross-aggregate preconditions before delegating to
// the domain: starting a round checks the session is active, a review item
// is current, and no round is already running. Commands are atomic,
// synchronous state transitions; the caller is responsible for serializing
// them into a single stream.
package service

import (
	"time"

	"github.com/louisbranch/storypoints/internal/estimation/domain"
	"github.com/louisbranch/storypoints/internal/estimation/event"
	"github.com/louisbranch/storypoints/internal/platform/id"
)

// Engine owns one logical session and its sibling aggregates.
type Engine struct {
	session domain.Session
	roster  domain.Roster
	voting  domain.VotingState

	clock       func() time.Time
	idGenerator func() (string, error)
	emitter     *event.Emitter
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source consulted at each mutation.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithIDGenerator sets the unique-id generator.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(e *Engine) { e.idGenerator = gen }
}

// WithJournal wires an event journal; every applied command appends one
// event to it.
func WithJournal(journal event.Journal) Option {
	return func(e *Engine) { e.emitter = event.NewEmitter(journal) }
}

// WithConfig replaces the default session configuration.
func WithConfig(cfg domain.Config) Option {
	return func(e *Engine) { e.session.Config = cfg }
}

// New creates an engine with an inactive session, an empty roster, and no
// voting state.
func New(opts ...Option) *Engine {
	e := &Engine{
		session:     domain.NewSession(),
		clock:       time.Now,
		idGenerator: id.NewID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CreateSession starts a fresh session led by the given participant id,
// discarding any prior queue state. The roster and voting history are left
// alone.
func (e *Engine) CreateSession(leaderID string) (Outcome, error) {
	if err := e.session.Create(leaderID, e.clock, e.idGenerator); err != nil {
		return ignored(""), err
	}
	e.emit(event.TypeSessionCreated, leaderID)
	return applied(), nil
}

// EndSession deactivates the session. Queue, roster, and history persist
// for display; round starts are refused from here on.
func (e *Engine) EndSession() Outcome {
	e.session.End()
	e.emit(event.TypeSessionEnded, "")
	return applied()
}

// UpdateSessionConfig shallow-merges the patch into the session config.
func (e *Engine) UpdateSessionConfig(patch domain.ConfigPatch) Outcome {
	e.session.UpdateConfig(patch)
	e.emit(event.TypeConfigUpdated, "")
	return applied()
}

// AddReviewItem appends an item to the queue; the first item added becomes
// current.
func (e *Engine) AddReviewItem(name string) (Outcome, error) {
	item, err := e.session.Queue.Add(name, e.clock, e.idGenerator)
	if err != nil {
		return ignored(""), err
	}
	e.emit(event.TypeItemAdded, item.ID)
	return applied(), nil
}

// RemoveReviewItem deletes an item from the queue, promoting the next item
// when the current one was removed.
func (e *Engine) RemoveReviewItem(itemID string) Outcome {
	if !e.session.Queue.Remove(itemID) {
		return ignored(IgnoreUnknownItem)
	}
	e.emit(event.TypeItemRemoved, itemID)
	return applied()
}

// SetCurrentReviewItem makes the given item current. An unknown id leaves
// no item current.
func (e *Engine) SetCurrentReviewItem(itemID string) Outcome {
	if !e.session.Queue.SetCurrent(itemID) {
		return ignored(IgnoreUnknownItem)
	}
	e.emit(event.TypeItemSelected, itemID)
	return applied()
}

// CompleteCurrentItem stamps final points on the current item, removes it
// from the queue, and promotes the next one.
func (e *Engine) CompleteCurrentItem(finalPoints float64) Outcome {
	completed, ok := e.session.Queue.CompleteCurrent(finalPoints)
	if !ok {
		return ignored(IgnoreNoCurrentItem)
	}
	e.emit(event.TypeItemCompleted, completed.ID)
	return applied()
}

// SetCurrentUser designates the acting identity, adding it to the roster
// when absent.
func (e *Engine) SetCurrentUser(userID, name string, role domain.Role) Outcome {
	e.roster.SetCurrentUser(userID, name, role, e.clock)
	e.emit(event.TypeParticipantJoined, userID)
	return applied()
}

// AddParticipant appends a participant with a generated id. An empty role
// defaults to participant.
func (e *Engine) AddParticipant(name string, role domain.Role) (Outcome, error) {
	participant, err := e.roster.Add(name, role, e.clock, e.idGenerator)
	if err != nil {
		return ignored(""), err
	}
	e.emit(event.TypeParticipantJoined, participant.ID)
	return applied(), nil
}

// RemoveParticipant deletes a participant. Votes already cast by the id are
// kept; dangling references are tolerated.
func (e *Engine) RemoveParticipant(participantID string) Outcome {
	if !e.roster.Remove(participantID) {
		return ignored(IgnoreUnknownParticipant)
	}
	e.emit(event.TypeParticipantLeft, participantID)
	return applied()
}

// SetParticipantOnlineStatus updates a participant's presence.
func (e *Engine) SetParticipantOnlineStatus(participantID string, online bool) Outcome {
	if !e.roster.SetOnline(participantID, online) {
		return ignored(IgnoreUnknownParticipant)
	}
	e.emit(event.TypeParticipantUpdated, participantID)
	return applied()
}

// SetParticipantVoteStatus updates a participant's voted flag.
func (e *Engine) SetParticipantVoteStatus(participantID string, voted bool) Outcome {
	if !e.roster.SetVoted(participantID, voted) {
		return ignored(IgnoreUnknownParticipant)
	}
	e.emit(event.TypeParticipantUpdated, participantID)
	return applied()
}

// ResetAllVoteStatus clears every participant's voted flag.
func (e *Engine) ResetAllVoteStatus() Outcome {
	e.roster.ResetAllVoted()
	e.emit(event.TypeParticipantUpdated, "")
	return applied()
}

// ClearParticipants empties the roster and forgets the acting identity.
func (e *Engine) ClearParticipants() Outcome {
	e.roster.Clear()
	e.emit(event.TypeRosterCleared, "")
	return applied()
}

// StartVotingRound begins a round for the given review item: participant
// vote flags are reset, a fresh round is created, and the countdown starts.
// The session must be active, a review item must be current, and no round
// may already be running; an active round is reported rather than silently
// overwritten.
func (e *Engine) StartVotingRound(reviewItemID string, timerSeconds int) (Outcome, error) {
	if !e.session.IsActive {
		return ignored(IgnoreSessionInactive), nil
	}
	if e.session.Queue.CurrentID() == "" {
		return ignored(IgnoreNoCurrentItem), nil
	}
	if e.voting.CurrentRound != nil {
		return ignored(IgnoreRoundActive), nil
	}

	e.roster.ResetAllVoted()
	if err := e.voting.StartRound(reviewItemID, timerSeconds, e.clock, e.idGenerator); err != nil {
		return ignored(""), err
	}
	e.voting.StartTimer(timerSeconds, e.clock)
	e.emit(event.TypeRoundStarted, e.voting.CurrentRound.ID)
	return applied(), nil
}

// EndVotingRound archives the current round into history and clears the
// current slot. The voting and timer flags are reset to inactive and zero
// whether or not a round existed.
func (e *Engine) EndVotingRound() Outcome {
	archived, ended := e.voting.EndRound(e.clock)
	if !ended {
		return ignored(IgnoreNoActiveRound)
	}
	e.emit(event.TypeRoundEnded, archived.ID)
	return applied()
}

// SubmitVote records a vote for the active round, replacing any prior vote
// from the same participant, and flags the voter on the roster.
func (e *Engine) SubmitVote(participantID, value string) Outcome {
	if !e.voting.Submit(participantID, value, e.clock) {
		return ignored(IgnoreNoActiveRound)
	}
	e.roster.SetVoted(participantID, true)
	e.emit(event.TypeVoteSubmitted, participantID)
	return applied()
}

// ClearVote withdraws the participant's vote from the current round and
// clears the roster flag.
func (e *Engine) ClearVote(participantID string) Outcome {
	if !e.voting.ClearVote(participantID) {
		return ignored(IgnoreNoActiveRound)
	}
	e.roster.SetVoted(participantID, false)
	e.emit(event.TypeVoteCleared, participantID)
	return applied()
}

// StartTimer activates the countdown with the given seconds.
func (e *Engine) StartTimer(seconds int) Outcome {
	e.voting.StartTimer(seconds, e.clock)
	return applied()
}

// StopTimer deactivates the countdown; the first stop stamps the round's
// timer end.
func (e *Engine) StopTimer() Outcome {
	e.voting.StopTimer(e.clock)
	return applied()
}

// ResetTimer sets the remaining seconds and forces the timer inactive.
func (e *Engine) ResetTimer(seconds int) Outcome {
	e.voting.ResetTimer(seconds)
	return applied()
}

// TickTimer decrements the countdown by one second. The scheduler driving
// the ticks, and stopping that scheduler, belong to the caller.
func (e *Engine) TickTimer() Outcome {
	if !e.voting.Tick(e.clock) {
		return ignored(IgnoreTimerInactive)
	}
	return applied()
}

// RevealVotes signals collaborators that votes are now visible. No state
// changes; the engine stores no revealed flag.
func (e *Engine) RevealVotes() Outcome {
	if e.voting.CurrentRound != nil {
		e.emit(event.TypeVotesRevealed, e.voting.CurrentRound.ID)
	} else {
		e.emit(event.TypeVotesRevealed, "")
	}
	return applied()
}

// ClearVotingHistory empties the archived rounds, leaving the current round
// alone.
func (e *Engine) ClearVotingHistory() Outcome {
	e.voting.ClearHistory()
	e.emit(event.TypeHistoryCleared, "")
	return applied()
}

// emit appends a journal event stamped with the engine clock. The journal
// is best-effort observability; append failures do not fail commands.
func (e *Engine) emit(t event.Type, subjectID string) {
	_ = e.emitter.Emit(event.Event{
		SessionID: e.session.ID,
		Type:      t,
		SubjectID: subjectID,
		Timestamp: e.clock().UTC(),
	})
}

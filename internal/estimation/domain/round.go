package domain

import (
	"fmt"
	"time"

	"github.com/louisbranch/storypoints/internal/platform/id"
)

// Vote is one participant's submitted estimate for the active round. At
// most one vote per participant is kept; the latest submission wins.
type Vote struct {
	ParticipantID string
	Value         string
	Timestamp     time.Time
}

// Round is one voting round for a review item. The review item is
// referenced by id only; the item may already have advanced by the time the
// round is inspected from history. Once ended, a round is immutable.
type Round struct {
	ID             string
	ReviewItemID   string
	Votes          []Vote
	IsActive       bool
	StartedAt      time.Time
	EndedAt        *time.Time
	TimerStartedAt *time.Time
	TimerEndedAt   *time.Time
}

// VoteBy returns the vote cast by the given participant, if any.
func (r *Round) VoteBy(participantID string) (Vote, bool) {
	for _, vote := range r.Votes {
		if vote.ParticipantID == participantID {
			return vote, true
		}
	}
	return Vote{}, false
}

// Summary returns a value-to-count histogram over the round's votes, keyed
// by the raw vote value string. "?" and "13" are equally valid keys.
func (r *Round) Summary() map[string]int {
	summary := make(map[string]int, len(r.Votes))
	for _, vote := range r.Votes {
		summary[vote.Value]++
	}
	return summary
}

// VotingState holds the current round, the append-only history of ended
// rounds, and the countdown timer. The timer is decoupled from round
// activity: ticking is driven by an external scheduler, and timer expiry
// does not itself end the round.
type VotingState struct {
	CurrentRound     *Round
	History          []Round
	IsVotingActive   bool
	IsTimerActive    bool
	TimerSecondsLeft int
}

// StartRound creates a fresh active round for the review item and seeds the
// countdown. A round that is still current is overwritten without being
// archived; guarding against that is the coordinating caller's job.
func (v *VotingState) StartRound(reviewItemID string, timerSeconds int, now func() time.Time, idGenerator func() (string, error)) error {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	roundID, err := idGenerator()
	if err != nil {
		return fmt.Errorf("generate round id: %w", err)
	}

	v.CurrentRound = &Round{
		ID:           roundID,
		ReviewItemID: reviewItemID,
		IsActive:     true,
		StartedAt:    now().UTC(),
	}
	v.IsVotingActive = true
	v.TimerSecondsLeft = timerSeconds
	return nil
}

// EndRound marks the current round inactive, stamps its end time, and moves
// it by value into history, clearing the current slot. The voting and timer
// flags are reset to inactive and zero whether or not a round existed. The
// archived round is returned for collaborators that want it.
func (v *VotingState) EndRound(now func() time.Time) (Round, bool) {
	if now == nil {
		now = time.Now
	}

	var archived Round
	ended := false
	if v.CurrentRound != nil {
		endedAt := now().UTC()
		v.CurrentRound.IsActive = false
		v.CurrentRound.EndedAt = &endedAt
		archived = *v.CurrentRound
		v.History = append(v.History, archived)
		v.CurrentRound = nil
		ended = true
	}
	v.IsVotingActive = false
	v.IsTimerActive = false
	v.TimerSecondsLeft = 0
	return archived, ended
}

// Submit records a vote for the current round. Any prior vote from the same
// participant is removed first, so the latest submission replaces it; votes
// are kept in submission order. Without an active round the call is a
// no-op.
func (v *VotingState) Submit(participantID, value string, now func() time.Time) bool {
	if v.CurrentRound == nil || !v.IsVotingActive {
		return false
	}
	if now == nil {
		now = time.Now
	}

	v.removeVote(participantID)
	v.CurrentRound.Votes = append(v.CurrentRound.Votes, Vote{
		ParticipantID: participantID,
		Value:         value,
		Timestamp:     now().UTC(),
	})
	return true
}

// ClearVote removes the participant's vote from the current round. With no
// current round the call is silently ignored.
func (v *VotingState) ClearVote(participantID string) bool {
	if v.CurrentRound == nil {
		return false
	}
	return v.removeVote(participantID)
}

// StartTimer activates the countdown and, when a round is current, stamps
// its timer start. Repeated starts overwrite the stamp.
func (v *VotingState) StartTimer(seconds int, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	v.IsTimerActive = true
	v.TimerSecondsLeft = seconds
	if v.CurrentRound != nil {
		startedAt := now().UTC()
		v.CurrentRound.TimerStartedAt = &startedAt
	}
}

// StopTimer deactivates the countdown. The round's timer end is stamped
// only on the first stop; the inactive flag is set unconditionally.
func (v *VotingState) StopTimer(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	v.IsTimerActive = false
	v.stampTimerEnded(now)
}

// ResetTimer sets the remaining seconds and forces the timer inactive. Used
// between rounds.
func (v *VotingState) ResetTimer(seconds int) {
	v.TimerSecondsLeft = seconds
	v.IsTimerActive = false
}

// Tick decrements the countdown by one second. It only applies while the
// timer is active with seconds remaining; when the decrement reaches zero
// the timer deactivates and the round's timer end is stamped once. Ticking
// cadence and cancellation belong to the calling scheduler.
func (v *VotingState) Tick(now func() time.Time) bool {
	if !v.IsTimerActive || v.TimerSecondsLeft <= 0 {
		return false
	}
	if now == nil {
		now = time.Now
	}

	v.TimerSecondsLeft--
	if v.TimerSecondsLeft == 0 {
		v.IsTimerActive = false
		v.stampTimerEnded(now)
	}
	return true
}

// ClearHistory empties the archived rounds. The current round is untouched.
func (v *VotingState) ClearHistory() {
	v.History = nil
}

func (v *VotingState) removeVote(participantID string) bool {
	votes := v.CurrentRound.Votes
	for i, vote := range votes {
		if vote.ParticipantID == participantID {
			v.CurrentRound.Votes = append(votes[:i], votes[i+1:]...)
			return true
		}
	}
	return false
}

func (v *VotingState) stampTimerEnded(now func() time.Time) {
	if v.CurrentRound == nil || v.CurrentRound.TimerEndedAt != nil {
		return
	}
	endedAt := now().UTC()
	v.CurrentRound.TimerEndedAt = &endedAt
}

package service

import (
	"math"

	"github.com/louisbranch/storypoints/internal/estimation/domain"
)

// Status is the combined session status view.
type Status struct {
	IsActive       bool
	HasCurrentItem bool
	IsVoting       bool
	CanStartVoting bool
}

// Progress reports voting progress among online voters. The leader role is
// excluded from the denominator.
type Progress struct {
	TotalParticipants int
	VotedCount        int
	AllVoted          bool
	Percentage        int
}

// Session returns a copy of the session aggregate.
func (e *Engine) Session() domain.Session {
	return e.session
}

// Config returns the current session configuration.
func (e *Engine) Config() domain.Config {
	return e.session.Config
}

// CurrentReviewItem returns the item the queue points at.
func (e *Engine) CurrentReviewItem() (domain.ReviewItem, bool) {
	return e.session.Queue.Current()
}

// RemainingReviewItems returns the incomplete items in queue order.
func (e *Engine) RemainingReviewItems() []domain.ReviewItem {
	return e.session.Queue.Remaining()
}

// Participants returns the full roster in join order.
func (e *Engine) Participants() []domain.Participant {
	return e.roster.Participants
}

// OnlineParticipants returns the participants currently online.
func (e *Engine) OnlineParticipants() []domain.Participant {
	return e.roster.Online()
}

// ParticipantsWhoVoted returns the participants flagged as having voted.
func (e *Engine) ParticipantsWhoVoted() []domain.Participant {
	return e.roster.Voted()
}

// Leader returns the first roster entry holding the leader role.
func (e *Engine) Leader() (domain.Participant, bool) {
	return e.roster.Leader()
}

// CurrentUser returns the acting identity's roster entry.
func (e *Engine) CurrentUser() (domain.Participant, bool) {
	return e.roster.CurrentUser()
}

// IsCurrentUserLeader reports whether the acting identity holds the leader
// role.
func (e *Engine) IsCurrentUserLeader() bool {
	return e.roster.IsCurrentUserLeader()
}

// CurrentRound returns a copy of the active round.
func (e *Engine) CurrentRound() (domain.Round, bool) {
	if e.voting.CurrentRound == nil {
		return domain.Round{}, false
	}
	return *e.voting.CurrentRound, true
}

// CurrentRoundVotes returns the active round's votes in submission order.
func (e *Engine) CurrentRoundVotes() []domain.Vote {
	if e.voting.CurrentRound == nil {
		return nil
	}
	return e.voting.CurrentRound.Votes
}

// CurrentUserVote returns the acting identity's vote in the active round.
func (e *Engine) CurrentUserVote() (domain.Vote, bool) {
	if e.voting.CurrentRound == nil {
		return domain.Vote{}, false
	}
	return e.voting.CurrentRound.VoteBy(e.roster.CurrentUserID)
}

// VoteCount returns the number of votes in the active round.
func (e *Engine) VoteCount() int {
	return len(e.CurrentRoundVotes())
}

// VoteSummary returns a value-to-count histogram over the active round's
// votes, keyed by raw vote value.
func (e *Engine) VoteSummary() map[string]int {
	if e.voting.CurrentRound == nil {
		return map[string]int{}
	}
	return e.voting.CurrentRound.Summary()
}

// VotingHistory returns the archived rounds in the order they ended.
func (e *Engine) VotingHistory() []domain.Round {
	return e.voting.History
}

// IsVotingActive reports whether a round is accepting votes.
func (e *Engine) IsVotingActive() bool {
	return e.voting.IsVotingActive
}

// IsTimerActive reports whether the countdown is running.
func (e *Engine) IsTimerActive() bool {
	return e.voting.IsTimerActive
}

// TimerSecondsLeft returns the remaining countdown seconds.
func (e *Engine) TimerSecondsLeft() int {
	return e.voting.TimerSecondsLeft
}

// SessionStatus returns the combined lifecycle view.
func (e *Engine) SessionStatus() Status {
	_, hasCurrent := e.session.Queue.Current()
	isVoting := e.voting.IsVotingActive
	return Status{
		IsActive:       e.session.IsActive,
		HasCurrentItem: hasCurrent,
		IsVoting:       isVoting,
		CanStartVoting: e.session.IsActive && hasCurrent && !isVoting,
	}
}

// VotingProgress reports how many online voters have voted. The voted count
// follows roster flags for the participant role regardless of presence; the
// denominator counts online voters only.
func (e *Engine) VotingProgress() Progress {
	total := 0
	for _, p := range e.roster.Online() {
		if p.Role == domain.RoleParticipant {
			total++
		}
	}
	voted := 0
	for _, p := range e.roster.Voted() {
		if p.Role == domain.RoleParticipant {
			voted++
		}
	}

	progress := Progress{
		TotalParticipants: total,
		VotedCount:        voted,
		AllVoted:          total > 0 && voted == total,
	}
	if total > 0 {
		progress.Percentage = int(math.Round(float64(voted) / float64(total) * 100))
	}
	return progress
}

package service

import (
	"testing"

	"github.com/louisbranch/storypoints/internal/estimation/domain"
)

// seedRoster creates a session with a leader acting identity and three
// online voters id2, id3, id4.
func seedRoster(t *testing.T) *Engine {
	t.Helper()
	e := newTestEngine(t, nil)
	if _, err := e.CreateSession("leader-1"); err != nil {
		t.Fatalf("create session: %v", err)
	}
	mustApply(t, e.SetCurrentUser("leader-1", "Dana", domain.RoleLeader))
	for _, name := range []string{"Sam", "Alex", "Kim"} {
		if _, err := e.AddParticipant(name, domain.RoleParticipant); err != nil {
			t.Fatalf("add participant: %v", err)
		}
	}
	return e
}

func TestVotingProgress(t *testing.T) {
	e := seedRoster(t)
	mustApply(t, e.SetParticipantVoteStatus("id2", true))
	mustApply(t, e.SetParticipantVoteStatus("id3", true))

	progress := e.VotingProgress()

	if progress.TotalParticipants != 3 {
		t.Fatalf("expected 3 voters, got %d", progress.TotalParticipants)
	}
	if progress.VotedCount != 2 {
		t.Fatalf("expected 2 voted, got %d", progress.VotedCount)
	}
	if progress.AllVoted {
		t.Fatal("expected allVoted false")
	}
	if progress.Percentage != 67 {
		t.Fatalf("expected 67%%, got %d%%", progress.Percentage)
	}
}

func TestVotingProgressAllVoted(t *testing.T) {
	e := seedRoster(t)
	for _, id := range []string{"id2", "id3", "id4"} {
		mustApply(t, e.SetParticipantVoteStatus(id, true))
	}

	progress := e.VotingProgress()
	if !progress.AllVoted || progress.Percentage != 100 {
		t.Fatalf("expected all voted at 100%%, got %+v", progress)
	}
}

func TestVotingProgressExcludesLeaderAndOffline(t *testing.T) {
	e := seedRoster(t)
	// The leader never counts toward the denominator; an offline voter drops
	// out of it.
	mustApply(t, e.SetParticipantOnlineStatus("id4", false))
	mustApply(t, e.SetParticipantVoteStatus("id2", true))

	progress := e.VotingProgress()
	if progress.TotalParticipants != 2 {
		t.Fatalf("expected 2 online voters, got %d", progress.TotalParticipants)
	}
	if progress.VotedCount != 1 {
		t.Fatalf("expected 1 voted, got %d", progress.VotedCount)
	}
	if progress.Percentage != 50 {
		t.Fatalf("expected 50%%, got %d%%", progress.Percentage)
	}
}

func TestVotingProgressEmptyRoster(t *testing.T) {
	e := newTestEngine(t, nil)
	progress := e.VotingProgress()
	if progress.TotalParticipants != 0 || progress.VotedCount != 0 {
		t.Fatalf("expected zero counts, got %+v", progress)
	}
	if progress.AllVoted {
		t.Fatal("expected allVoted false with empty roster")
	}
	if progress.Percentage != 0 {
		t.Fatalf("expected 0%%, got %d%%", progress.Percentage)
	}
}

func TestSessionStatus(t *testing.T) {
	e := newTestEngine(t, nil)

	status := e.SessionStatus()
	if status.IsActive || status.HasCurrentItem || status.IsVoting || status.CanStartVoting {
		t.Fatalf("expected all false before create, got %+v", status)
	}

	if _, err := e.CreateSession("leader-1"); err != nil {
		t.Fatalf("create session: %v", err)
	}
	status = e.SessionStatus()
	if !status.IsActive || status.HasCurrentItem || status.CanStartVoting {
		t.Fatalf("expected active without item, got %+v", status)
	}

	if _, err := e.AddReviewItem("item a"); err != nil {
		t.Fatalf("add item: %v", err)
	}
	status = e.SessionStatus()
	if !status.CanStartVoting {
		t.Fatalf("expected canStartVoting, got %+v", status)
	}

	if _, err := e.StartVotingRound(currentItemID(t, e), 60); err != nil {
		t.Fatalf("start round: %v", err)
	}
	status = e.SessionStatus()
	if !status.IsVoting || status.CanStartVoting {
		t.Fatalf("expected voting in flight, got %+v", status)
	}

	mustApply(t, e.EndSession())
	status = e.SessionStatus()
	if status.IsActive || status.CanStartVoting {
		t.Fatalf("expected inactive session, got %+v", status)
	}
}

func TestCurrentUserVote(t *testing.T) {
	e := seedRoster(t)
	if _, err := e.AddReviewItem("item a"); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := e.StartVotingRound(currentItemID(t, e), 60); err != nil {
		t.Fatalf("start round: %v", err)
	}

	if _, ok := e.CurrentUserVote(); ok {
		t.Fatal("expected no vote yet")
	}

	mustApply(t, e.SubmitVote("leader-1", "8"))

	vote, ok := e.CurrentUserVote()
	if !ok || vote.Value != "8" {
		t.Fatalf("expected acting identity vote 8, got %+v", vote)
	}
}

func TestVoteSummaryWithoutRound(t *testing.T) {
	e := newTestEngine(t, nil)
	if summary := e.VoteSummary(); len(summary) != 0 {
		t.Fatalf("expected empty summary, got %v", summary)
	}
	if e.VoteCount() != 0 {
		t.Fatalf("expected zero votes, got %d", e.VoteCount())
	}
}

func TestLeaderView(t *testing.T) {
	e := seedRoster(t)

	leader, ok := e.Leader()
	if !ok || leader.ID != "leader-1" {
		t.Fatalf("expected leader-1, got %+v", leader)
	}
	if !e.IsCurrentUserLeader() {
		t.Fatal("expected acting identity to be leader")
	}

	mustApply(t, e.ClearParticipants())
	if _, ok := e.Leader(); ok {
		t.Fatal("expected no leader after clear")
	}
	if e.IsCurrentUserLeader() {
		t.Fatal("expected no acting identity after clear")
	}
}

package service

// IgnoreReason explains why a command left state untouched.
type IgnoreReason string

const (
	// IgnoreSessionInactive reports a round-start against an ended session.
	IgnoreSessionInactive IgnoreReason = "session_inactive"
	// IgnoreNoCurrentItem reports a command that needs a current review item.
	IgnoreNoCurrentItem IgnoreReason = "no_current_item"
	// IgnoreUnknownItem reports a review item id not present in the queue.
	IgnoreUnknownItem IgnoreReason = "unknown_item"
	// IgnoreUnknownParticipant reports a participant id not on the roster.
	IgnoreUnknownParticipant IgnoreReason = "unknown_participant"
	// IgnoreRoundActive reports a round-start while a round is already
	// active. The previous round is left in place rather than silently
	// discarded.
	IgnoreRoundActive IgnoreReason = "round_active"
	// IgnoreNoActiveRound reports a vote command with no active round.
	IgnoreNoActiveRound IgnoreReason = "no_active_round"
	// IgnoreTimerInactive reports a tick while the timer is not running.
	IgnoreTimerInactive IgnoreReason = "timer_inactive"
)

// Outcome is the structured result of a command. Commands never fail hard:
// an invalid command is a no-op whose reason is reported here, so callers
// that want silence can discard the outcome.
type Outcome struct {
	Applied bool
	Reason  IgnoreReason
}

func applied() Outcome {
	return Outcome{Applied: true}
}

func ignored(reason IgnoreReason) Outcome {
	return Outcome{Reason: reason}
}

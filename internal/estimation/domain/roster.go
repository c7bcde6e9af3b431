package domain

import (
	"fmt"
	"time"

	"github.com/louisbranch/storypoints/internal/platform/id"
)

// Role describes a participant's role in the session.
type Role string

const (
	// RoleLeader drives the session and round lifecycle. The distinction is
	// advisory in this core; Session.LeaderID is the authoritative field.
	RoleLeader Role = "leader"
	// RoleParticipant casts votes during rounds.
	RoleParticipant Role = "participant"
)

// Participant is one member of the session roster.
type Participant struct {
	ID       string
	Name     string
	Role     Role
	IsOnline bool
	HasVoted bool
	JoinedAt time.Time
}

// Roster tracks the known participants and the acting local identity.
// Participant ids are unique within the roster.
type Roster struct {
	CurrentUserID string
	Participants  []Participant
}

// SetCurrentUser designates the acting identity. When the id is not already
// on the roster the participant is added as online and not voted.
func (r *Roster) SetCurrentUser(userID, name string, role Role, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	r.CurrentUserID = userID
	if r.indexOf(userID) >= 0 {
		return
	}
	r.Participants = append(r.Participants, Participant{
		ID:       userID,
		Name:     name,
		Role:     role,
		IsOnline: true,
		JoinedAt: now().UTC(),
	})
}

// Add appends a new participant with a generated id. An empty role defaults
// to RoleParticipant. A copy of the new participant is returned.
func (r *Roster) Add(name string, role Role, now func() time.Time, idGenerator func() (string, error)) (Participant, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	if role == "" {
		role = RoleParticipant
	}

	participantID, err := idGenerator()
	if err != nil {
		return Participant{}, fmt.Errorf("generate participant id: %w", err)
	}

	participant := Participant{
		ID:       participantID,
		Name:     name,
		Role:     role,
		IsOnline: true,
		JoinedAt: now().UTC(),
	}
	r.Participants = append(r.Participants, participant)
	return participant, nil
}

// Remove deletes the participant by id. Historical votes referencing the id
// are left alone.
func (r *Roster) Remove(participantID string) bool {
	index := r.indexOf(participantID)
	if index < 0 {
		return false
	}
	r.Participants = append(r.Participants[:index], r.Participants[index+1:]...)
	return true
}

// SetOnline updates a participant's presence. Unknown ids are a no-op.
func (r *Roster) SetOnline(participantID string, online bool) bool {
	index := r.indexOf(participantID)
	if index < 0 {
		return false
	}
	r.Participants[index].IsOnline = online
	return true
}

// SetVoted updates a participant's voted flag. Unknown ids are a no-op.
func (r *Roster) SetVoted(participantID string, voted bool) bool {
	index := r.indexOf(participantID)
	if index < 0 {
		return false
	}
	r.Participants[index].HasVoted = voted
	return true
}

// ResetAllVoted clears the voted flag for every participant. Invoked when a
// new round starts.
func (r *Roster) ResetAllVoted() {
	for i := range r.Participants {
		r.Participants[i].HasVoted = false
	}
}

// Clear empties the roster and forgets the acting identity.
func (r *Roster) Clear() {
	r.Participants = nil
	r.CurrentUserID = ""
}

// Get returns a copy of the participant with the given id.
func (r *Roster) Get(participantID string) (Participant, bool) {
	index := r.indexOf(participantID)
	if index < 0 {
		return Participant{}, false
	}
	return r.Participants[index], true
}

// CurrentUser returns a copy of the acting identity's roster entry.
func (r *Roster) CurrentUser() (Participant, bool) {
	return r.Get(r.CurrentUserID)
}

// Online returns the participants currently marked online, in roster order.
func (r *Roster) Online() []Participant {
	online := make([]Participant, 0, len(r.Participants))
	for _, p := range r.Participants {
		if p.IsOnline {
			online = append(online, p)
		}
	}
	return online
}

// Voted returns the participants who have voted in the active round, in
// roster order.
func (r *Roster) Voted() []Participant {
	voted := make([]Participant, 0, len(r.Participants))
	for _, p := range r.Participants {
		if p.HasVoted {
			voted = append(voted, p)
		}
	}
	return voted
}

// Leader returns the first participant holding the leader role. Role
// uniqueness is not enforced here; this view is informational.
func (r *Roster) Leader() (Participant, bool) {
	for _, p := range r.Participants {
		if p.Role == RoleLeader {
			return p, true
		}
	}
	return Participant{}, false
}

// IsCurrentUserLeader reports whether the acting identity holds the leader
// role.
func (r *Roster) IsCurrentUserLeader() bool {
	current, ok := r.CurrentUser()
	return ok && current.Role == RoleLeader
}

func (r *Roster) indexOf(participantID string) int {
	if participantID == "" {
		return -1
	}
	for i, p := range r.Participants {
		if p.ID == participantID {
			return i
		}
	}
	return -1
}

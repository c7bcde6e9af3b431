// Package domain defines the core entities and state transitions for the
// estimation engine.
//
// The model is centered around four aggregates:
//
// # Session
//
// A Session is the top-level entity for one estimation meeting. It owns the
// lifecycle (active or ended), the leader identity, the round configuration
// (timer duration, vote card deck, revoting policy), and the review item
// queue.
//
// # Queue
//
// The Queue is the ordered backlog of review items awaiting a point
// estimate. Exactly one item is current at a time, tracked by an explicit
// pointer; completing an item records its final points and removes it,
// promoting the next item in order.
//
// # Roster
//
// The Roster tracks the participants of a session: their role (leader or
// participant), presence, and whether they have voted in the active round.
//
// # VotingState
//
// VotingState holds the current voting round, the append-only history of
// ended rounds, and the countdown timer. The timer is a pure state
// transition driven by an external scheduler; no operation in this package
// blocks, sleeps, or performs I/O.
//
// Every mutation takes the current time and, where an identifier is
// generated, an id generator as explicit collaborators. Commands issued in a
// state that disallows them are silent no-ops reported through boolean
// returns.
package domain

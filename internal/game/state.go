// Package game provides the game state, the session state machine and the
// loop that drives them.
package game

import "errors"

// ErrInvalidTransition is returned when a run cannot move to the requested state.
var ErrInvalidTransition = errors.New("invalid state transition")

// State represents the state of a run.
type State int

const (
	// StateRunning is the normal turn-by-turn state.
	StateRunning State = iota
	// StatePaused suspends turns until the run resumes.
	StatePaused
	// StateGameOver is final.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

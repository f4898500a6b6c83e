package game

import "github.com/samdwyer/crawler/internal/entity"

// OutcomeKind describes what handling a token did.
type OutcomeKind int

const (
	// OutcomeNone is the outcome before any token has been handled.
	OutcomeNone OutcomeKind = iota
	OutcomeStarted
	OutcomeNotImplemented
	OutcomeQuit
	OutcomeInvalid
	OutcomeLeftGame
	OutcomeAdvanced
	OutcomeEquipped
	OutcomeUsed
	OutcomePaused
	OutcomeResumed
	// OutcomeActionFailed carries the player error in Outcome.Err.
	OutcomeActionFailed
)

// String returns a human-readable outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeStarted:
		return "started"
	case OutcomeNotImplemented:
		return "not_implemented"
	case OutcomeQuit:
		return "quit"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeLeftGame:
		return "left_game"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeEquipped:
		return "equipped"
	case OutcomeUsed:
		return "used"
	case OutcomePaused:
		return "paused"
	case OutcomeResumed:
		return "resumed"
	case OutcomeActionFailed:
		return "action_failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one handled token, passed to the next render.
type Outcome struct {
	Kind  OutcomeKind
	Token string      // The trimmed token that produced this outcome
	Item  entity.Item // The item equipped or used, if any
	Err   error       // Set for OutcomeActionFailed and failed pause toggles
}

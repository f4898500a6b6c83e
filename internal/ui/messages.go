package ui

import (
	"errors"
	"fmt"

	"github.com/samdwyer/crawler/internal/entity"
	"github.com/samdwyer/crawler/internal/game"
)

// Message returns the status line text for the outcome of the last token.
func Message(last game.Outcome) string {
	switch last.Kind {
	case game.OutcomeNone:
		return ""
	case game.OutcomeStarted:
		return "A new adventure begins."
	case game.OutcomeNotImplemented:
		return "Loading is not implemented yet."
	case game.OutcomeQuit:
		return "Goodbye!"
	case game.OutcomeInvalid:
		return "Invalid input! Please select a number between 1 and 3."
	case game.OutcomeLeftGame:
		return "You return to the menu. Nothing was saved."
	case game.OutcomeAdvanced:
		return "Time passes."
	case game.OutcomeEquipped:
		return fmt.Sprintf("You equip the %s.", last.Item.Name)
	case game.OutcomeUsed:
		return fmt.Sprintf("You use the %s.", last.Item.Name)
	case game.OutcomePaused:
		return "Paused. Press p to resume."
	case game.OutcomeResumed:
		return "Resumed."
	case game.OutcomeActionFailed:
		return failureMessage(last.Err)
	default:
		return ""
	}
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, entity.ErrInvalidIndex), errors.Is(err, entity.ErrUnknownItem):
		return "There is no item in that slot."
	case errors.Is(err, entity.ErrNotEquippable):
		return "That item cannot be equipped."
	case errors.Is(err, entity.ErrNotUsable):
		return "That item cannot be used."
	case errors.Is(err, game.ErrNotRunning):
		return "You cannot do that while the game is paused or over."
	case errors.Is(err, game.ErrInvalidTransition):
		return "The game is over."
	case err != nil:
		return err.Error()
	default:
		return "Nothing happens."
	}
}

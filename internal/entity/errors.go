package entity

import "errors"

var (
	// ErrInvalidIndex is returned when an inventory position is out of bounds.
	ErrInvalidIndex = errors.New("invalid inventory index")
	// ErrUnknownItem is returned when no inventory entry has the given handle.
	ErrUnknownItem = errors.New("item not in inventory")
	// ErrNotEquippable is returned when equipping something that is not a weapon or armor.
	ErrNotEquippable = errors.New("item cannot be equipped")
	// ErrNotUsable is returned when using something that is not a potion.
	ErrNotUsable = errors.New("item cannot be used")
)

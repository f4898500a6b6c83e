// Package entity provides game entities like the player and the items they carry.
package entity

import (
	"fmt"
	"strings"

	"github.com/samdwyer/crawler/internal/gamedata"
)

// Kind represents what an item is and which action applies to it.
type Kind int

const (
	KindWeapon Kind = iota
	KindArmor
	KindPotion
	KindKey
)

// String returns the kind name as used in item data.
func (k Kind) String() string {
	switch k {
	case KindWeapon:
		return "weapon"
	case KindArmor:
		return "armor"
	case KindPotion:
		return "potion"
	case KindKey:
		return "key"
	default:
		return "unknown"
	}
}

// Equippable returns true if the kind fits an equipment slot.
func (k Kind) Equippable() bool {
	return k == KindWeapon || k == KindArmor
}

// ParseKind converts a kind name from item data into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weapon":
		return KindWeapon, nil
	case "armor":
		return KindArmor, nil
	case "potion":
		return KindPotion, nil
	case "key":
		return KindKey, nil
	default:
		return 0, fmt.Errorf("unknown item kind %q", s)
	}
}

// Item is a piece of equipment or a consumable. It is a plain value and
// is copied whenever it moves between the inventory and a slot.
type Item struct {
	Name        string
	Kind        Kind
	Value       int // Attack bonus, defense bonus or heal amount; unused for keys
	Description string
}

// NewItem creates an item.
func NewItem(name string, kind Kind, value int, description string) Item {
	return Item{
		Name:        name,
		Kind:        kind,
		Value:       value,
		Description: description,
	}
}

// NewSword creates the basic starting weapon.
func NewSword() Item {
	return NewItem("Sword", KindWeapon, 10, "A simple sword.")
}

// NewHealthPotion creates the basic healing potion.
func NewHealthPotion() Item {
	return NewItem("Health Potion", KindPotion, 20, "Restores 20 health.")
}

// NewItemFromDef creates an item from a data-driven definition.
func NewItemFromDef(def *gamedata.ItemDef) (Item, error) {
	if def == nil {
		return Item{}, fmt.Errorf("nil item definition")
	}
	kind, err := ParseKind(def.Kind)
	if err != nil {
		return Item{}, fmt.Errorf("item %s: %w", def.ID, err)
	}
	return NewItem(def.Name, kind, def.Value, def.Description), nil
}

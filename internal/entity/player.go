package entity

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	startingHealth    = 100
	baseAttack        = 10
	baseDefense       = 10
	startingSpeed     = 10
	startingThreshold = 100

	// Per-level gains.
	healthPerLevel = 10
	statPerLevel   = 2
)

// ItemID is a stable handle for an inventory entry. It stays valid while
// other entries are added or removed.
type ItemID = uuid.UUID

// InventoryEntry pairs a carried item with its handle.
type InventoryEntry struct {
	ID   ItemID
	Item Item
}

// Stats is a read-only snapshot of the player for rendering.
type Stats struct {
	Name                  string
	Health                int
	Attack                int
	Defense               int
	Speed                 int
	Level                 int
	Experience            int
	ExperienceToNextLevel int
	Weapon                *Item
	Armor                 *Item
	Inventory             []InventoryEntry
}

// Player is the character sheet of the adventurer.
type Player struct {
	Name                  string
	Health                int // No upper bound; potions and level ups stack
	Speed                 int
	Level                 int
	Experience            int
	ExperienceToNextLevel int

	inventory []InventoryEntry
	weapon    *Item
	armor     *Item
}

// NewPlayer creates a level 1 player with the default starting stats.
func NewPlayer(name string) *Player {
	return &Player{
		Name:                  name,
		Health:                startingHealth,
		Speed:                 startingSpeed,
		Level:                 1,
		Experience:            0,
		ExperienceToNextLevel: startingThreshold,
		inventory:             []InventoryEntry{},
	}
}

// Attack returns the level-based attack plus the equipped weapon bonus.
func (p *Player) Attack() int {
	attack := baseAttack + (p.Level-1)*statPerLevel
	if p.weapon != nil {
		attack += p.weapon.Value
	}
	return attack
}

// Defense returns the level-based defense plus the equipped armor bonus.
func (p *Player) Defense() int {
	defense := baseDefense + (p.Level-1)*statPerLevel
	if p.armor != nil {
		defense += p.armor.Value
	}
	return defense
}

// GainExperience adds experience and applies every level up it pays for.
// Negative amounts are ignored.
func (p *Player) GainExperience(amount int) {
	if amount <= 0 {
		return
	}
	p.Experience += amount
	for p.Experience >= p.ExperienceToNextLevel {
		p.levelUp()
	}
}

// levelUp spends one threshold worth of experience. The next threshold
// grows by 10%, truncated.
func (p *Player) levelUp() {
	p.Level++
	p.Experience -= p.ExperienceToNextLevel
	p.ExperienceToNextLevel = p.ExperienceToNextLevel * 11 / 10
	p.Health += healthPerLevel
	p.Speed += statPerLevel
}

// TakeDamage applies a hit reduced by defense. A hit always deals at least
// 1 damage. Returns true if the player is dead afterwards.
func (p *Player) TakeDamage(amount int) bool {
	damage := max(amount-p.Defense(), 1)
	p.Health -= damage
	return p.Health <= 0
}

// Heal restores health without any cap.
func (p *Player) Heal(amount int) {
	p.Health += amount
}

// IsAlive returns true if the player has health remaining.
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// AddItem puts an item at the end of the inventory and returns its handle.
func (p *Player) AddItem(item Item) ItemID {
	id := uuid.New()
	p.inventory = append(p.inventory, InventoryEntry{ID: id, Item: item})
	return id
}

// Inventory returns a copy of the inventory in display order.
func (p *Player) Inventory() []InventoryEntry {
	entries := make([]InventoryEntry, len(p.inventory))
	copy(entries, p.inventory)
	return entries
}

// InventoryLen returns the number of carried items.
func (p *Player) InventoryLen() int {
	return len(p.inventory)
}

// Weapon returns the equipped weapon, if any.
func (p *Player) Weapon() (Item, bool) {
	if p.weapon == nil {
		return Item{}, false
	}
	return *p.weapon, true
}

// Armor returns the equipped armor, if any.
func (p *Player) Armor() (Item, bool) {
	if p.armor == nil {
		return Item{}, false
	}
	return *p.armor, true
}

// Equip moves a weapon or armor from the inventory into its slot. Whatever
// occupied the slot goes back to the end of the inventory.
func (p *Player) Equip(id ItemID) error {
	pos := p.indexOf(id)
	if pos < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	item := p.inventory[pos].Item
	if !item.Kind.Equippable() {
		return fmt.Errorf("%w: %s is a %s", ErrNotEquippable, item.Name, item.Kind)
	}

	slot := &p.armor
	if item.Kind == KindWeapon {
		slot = &p.weapon
	}

	p.removeAt(pos)
	if previous := *slot; previous != nil {
		p.AddItem(*previous)
	}
	*slot = &item
	return nil
}

// EquipAt equips the item at the given inventory position.
// Positions shift after every removal, so never reuse one across calls.
func (p *Player) EquipAt(index int) error {
	id, err := p.idAt(index)
	if err != nil {
		return err
	}
	return p.Equip(id)
}

// Use consumes a potion from the inventory and heals by its value.
func (p *Player) Use(id ItemID) error {
	pos := p.indexOf(id)
	if pos < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	item := p.inventory[pos].Item
	if item.Kind != KindPotion {
		return fmt.Errorf("%w: %s is a %s", ErrNotUsable, item.Name, item.Kind)
	}

	p.Heal(item.Value)
	p.removeAt(pos)
	return nil
}

// UseAt consumes the item at the given inventory position.
func (p *Player) UseAt(index int) error {
	id, err := p.idAt(index)
	if err != nil {
		return err
	}
	return p.Use(id)
}

// Stats returns a snapshot of the player. Mutating it does not affect
// the player.
func (p *Player) Stats() Stats {
	s := Stats{
		Name:                  p.Name,
		Health:                p.Health,
		Attack:                p.Attack(),
		Defense:               p.Defense(),
		Speed:                 p.Speed,
		Level:                 p.Level,
		Experience:            p.Experience,
		ExperienceToNextLevel: p.ExperienceToNextLevel,
		Inventory:             p.Inventory(),
	}
	if weapon, ok := p.Weapon(); ok {
		s.Weapon = &weapon
	}
	if armor, ok := p.Armor(); ok {
		s.Armor = &armor
	}
	return s
}

func (p *Player) idAt(index int) (ItemID, error) {
	if index < 0 || index >= len(p.inventory) {
		return ItemID{}, fmt.Errorf("%w: %d (have %d items)", ErrInvalidIndex, index, len(p.inventory))
	}
	return p.inventory[index].ID, nil
}

func (p *Player) indexOf(id ItemID) int {
	for i, entry := range p.inventory {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

// removeAt deletes an entry, keeping the order of the rest.
func (p *Player) removeAt(pos int) {
	p.inventory = append(p.inventory[:pos], p.inventory[pos+1:]...)
}

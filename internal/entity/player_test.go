package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Hero")

	assert.Equal(t, "Hero", p.Name)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 10, p.Attack())
	assert.Equal(t, 10, p.Defense())
	assert.Equal(t, 10, p.Speed)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.Experience)
	assert.Equal(t, 100, p.ExperienceToNextLevel)
	assert.Equal(t, 0, p.InventoryLen())

	_, hasWeapon := p.Weapon()
	_, hasArmor := p.Armor()
	assert.False(t, hasWeapon)
	assert.False(t, hasArmor)
}

func TestGainExperienceMultiLevel(t *testing.T) {
	p := NewPlayer("Hero")
	p.GainExperience(250)

	// 250 - 100 = 150 (level 2, next 110); 150 - 110 = 40 (level 3, next 121).
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 40, p.Experience)
	assert.Equal(t, 121, p.ExperienceToNextLevel)
	assert.Equal(t, 120, p.Health)
	assert.Equal(t, 14, p.Attack())
	assert.Equal(t, 14, p.Defense())
	assert.Equal(t, 14, p.Speed)
}

func TestGainExperienceExactThreshold(t *testing.T) {
	p := NewPlayer("Hero")
	p.GainExperience(p.ExperienceToNextLevel)

	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 0, p.Experience)
	assert.Equal(t, 110, p.ExperienceToNextLevel)
}

func TestGainExperienceBelowThreshold(t *testing.T) {
	p := NewPlayer("Hero")
	p.GainExperience(99)

	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 99, p.Experience)
}

func TestGainExperienceIgnoresNegative(t *testing.T) {
	p := NewPlayer("Hero")
	p.GainExperience(50)
	p.GainExperience(-20)

	assert.Equal(t, 50, p.Experience)
}

func TestGainExperienceIsCumulative(t *testing.T) {
	totals := []int{0, 1, 99, 100, 250, 1000, 5000}

	for _, total := range totals {
		once := NewPlayer("Once")
		once.GainExperience(total)

		steps := NewPlayer("Steps")
		for remaining := total; remaining > 0; remaining -= 7 {
			steps.GainExperience(min(7, remaining))
		}

		assert.Equalf(t, once.Stats().Level, steps.Stats().Level, "level after %d xp", total)
		assert.Equalf(t, once.Experience, steps.Experience, "experience after %d xp", total)
		assert.Equalf(t, once.ExperienceToNextLevel, steps.ExperienceToNextLevel, "threshold after %d xp", total)
		assert.Equalf(t, once.Health, steps.Health, "health after %d xp", total)
		assert.Equalf(t, once.Attack(), steps.Attack(), "attack after %d xp", total)
	}
}

func TestThresholdTruncates(t *testing.T) {
	p := NewPlayer("Hero")
	// 100 -> 110 -> 121 -> 133 (133.1 truncated) -> 146 (146.3 truncated)
	p.GainExperience(100 + 110 + 121 + 133)

	assert.Equal(t, 5, p.Level)
	assert.Equal(t, 0, p.Experience)
	assert.Equal(t, 146, p.ExperienceToNextLevel)
}

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		name       string
		amount     int
		wantHealth int
	}{
		{"reduced by defense", 25, 85},
		{"equal to defense deals 1", 10, 99},
		{"below defense deals 1", 3, 99},
		{"zero deals 1", 0, 99},
		{"negative deals 1", -50, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer("Hero")
			dead := p.TakeDamage(tt.amount)

			assert.Equal(t, tt.wantHealth, p.Health)
			assert.False(t, dead)
			assert.True(t, p.IsAlive())
		})
	}
}

func TestTakeDamageProperty(t *testing.T) {
	for defenseBonus := 0; defenseBonus <= 20; defenseBonus += 5 {
		for damage := 0; damage <= 150; damage += 3 {
			p := NewPlayer("Hero")
			if defenseBonus > 0 {
				p.AddItem(NewItem("Plate", KindArmor, defenseBonus, ""))
				require.NoError(t, p.EquipAt(0))
			}
			before := p.Health
			defense := p.Defense()

			dead := p.TakeDamage(damage)

			assert.Equal(t, max(damage-defense, 1), before-p.Health)
			assert.Equal(t, p.Health <= 0, dead)
		}
	}
}

func TestTakeDamageLethal(t *testing.T) {
	p := NewPlayer("Hero")
	dead := p.TakeDamage(110)

	assert.True(t, dead)
	assert.Equal(t, 0, p.Health)
	assert.False(t, p.IsAlive())
}

func TestHealHasNoCap(t *testing.T) {
	p := NewPlayer("Hero")
	p.Heal(500)

	assert.Equal(t, 600, p.Health)
}

func TestEquipWeapon(t *testing.T) {
	p := NewPlayer("Hero")
	p.AddItem(NewSword())

	require.NoError(t, p.EquipAt(0))

	weapon, ok := p.Weapon()
	require.True(t, ok)
	assert.Equal(t, "Sword", weapon.Name)
	assert.Equal(t, 20, p.Attack())
	assert.Equal(t, 10, p.Defense())
	assert.Equal(t, 0, p.InventoryLen())
}

func TestEquipArmor(t *testing.T) {
	p := NewPlayer("Hero")
	p.AddItem(NewItem("Leather Armor", KindArmor, 5, ""))

	require.NoError(t, p.EquipAt(0))

	armor, ok := p.Armor()
	require.True(t, ok)
	assert.Equal(t, "Leather Armor", armor.Name)
	assert.Equal(t, 15, p.Defense())
	assert.Equal(t, 10, p.Attack())
}

func TestEquipSwapReturnsPreviousItem(t *testing.T) {
	p := NewPlayer("Hero")
	p.AddItem(NewSword())
	p.AddItem(NewHealthPotion())
	p.AddItem(NewItem("Axe", KindWeapon, 15, ""))

	require.NoError(t, p.EquipAt(0))
	// Inventory is now [Health Potion, Axe].
	require.NoError(t, p.EquipAt(1))

	weapon, ok := p.Weapon()
	require.True(t, ok)
	assert.Equal(t, "Axe", weapon.Name)
	assert.Equal(t, 25, p.Attack())

	inv := p.Inventory()
	require.Len(t, inv, 2)
	assert.Equal(t, "Health Potion", inv[0].Item.Name)
	assert.Equal(t, "Sword", inv[1].Item.Name)
}

func TestEquipDoesNotDoubleApplyBonus(t *testing.T) {
	p := NewPlayer("Hero")
	p.AddItem(NewSword())
	p.AddItem(NewSword())

	require.NoError(t, p.EquipAt(0))
	require.NoError(t, p.EquipAt(0))
	require.NoError(t, p.EquipAt(0))

	assert.Equal(t, 20, p.Attack())
	assert.Equal(t, 1, p.InventoryLen())
}

func TestEquipKeepsBonusAcrossLevelUp(t *testing.T) {
	p := NewPlayer("Hero")
	p.AddItem(NewSword())
	require.NoError(t, p.EquipAt(0))

	p.GainExperience(100)

	assert.Equal(t, 22, p.Attack())
	assert.Equal(t, 12, p.Defense())
}

func TestEquipErrors(t *testing.T) {
	p := NewPlayer("Hero")
	p.AddItem(NewHealthPotion())
	p.AddItem(NewItem("Rusty Key", KindKey, 0, ""))

	tests := []struct {
		name  string
		index int
		want  error
	}{
		{"negative index", -1, ErrInvalidIndex},
		{"past the end", 2, ErrInvalidIndex},
		{"potion", 0, ErrNotEquippable},
		{"key", 1, ErrNotEquippable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := p.Inventory()
			err := p.EquipAt(tt.index)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, p.Inventory())
			assert.Equal(t, 10, p.Attack())
			assert.Equal(t, 10, p.Defense())
		})
	}
}

func TestUsePotion(t *testing.T) {
	p := NewPlayer("Hero")
	p.AddItem(NewSword())
	p.AddItem(NewHealthPotion())

	require.NoError(t, p.UseAt(1))

	assert.Equal(t, 120, p.Health)
	inv := p.Inventory()
	require.Len(t, inv, 1)
	assert.Equal(t, "Sword", inv[0].Item.Name)
}

func TestUseErrorsLeaveInventoryUnchanged(t *testing.T) {
	p := NewPlayer("Hero")
	p.AddItem(NewSword())
	p.AddItem(NewItem("Leather Armor", KindArmor, 5, ""))
	p.AddItem(NewItem("Rusty Key", KindKey, 0, ""))
	p.AddItem(NewHealthPotion())

	for index := 0; index < 3; index++ {
		before := p.Inventory()
		err := p.UseAt(index)

		assert.ErrorIs(t, err, ErrNotUsable)
		assert.Equal(t, before, p.Inventory())
		assert.Equal(t, 100, p.Health)
	}

	err := p.UseAt(4)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	assert.Equal(t, 4, p.InventoryLen())
}

func TestHandlesSurviveRemovals(t *testing.T) {
	p := NewPlayer("Hero")
	first := p.AddItem(NewHealthPotion())
	sword := p.AddItem(NewSword())
	last := p.AddItem(NewHealthPotion())

	require.NoError(t, p.Use(first))
	// The sword moved from position 1 to 0 but its handle still works.
	require.NoError(t, p.Equip(sword))
	require.NoError(t, p.Use(last))

	assert.Equal(t, 140, p.Health)
	assert.Equal(t, 20, p.Attack())
	assert.Equal(t, 0, p.InventoryLen())
}

func TestStaleHandleFails(t *testing.T) {
	p := NewPlayer("Hero")
	potion := p.AddItem(NewHealthPotion())
	require.NoError(t, p.Use(potion))

	err := p.Use(potion)
	assert.True(t, errors.Is(err, ErrUnknownItem))
	err = p.Equip(potion)
	assert.True(t, errors.Is(err, ErrUnknownItem))
	assert.Equal(t, 120, p.Health)
}

func TestStatsSnapshotIsDetached(t *testing.T) {
	p := NewPlayer("Hero")
	p.AddItem(NewSword())
	p.AddItem(NewHealthPotion())
	require.NoError(t, p.EquipAt(0))

	stats := p.Stats()
	require.NotNil(t, stats.Weapon)
	assert.Nil(t, stats.Armor)
	assert.Equal(t, 20, stats.Attack)

	stats.Inventory[0].Item.Name = "Tampered"
	stats.Weapon.Value = 999

	assert.Equal(t, "Health Potion", p.Inventory()[0].Item.Name)
	assert.Equal(t, 20, p.Attack())
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/crawler/internal/gamedata"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindWeapon, "weapon"},
		{KindArmor, "armor"},
		{KindPotion, "potion"},
		{KindKey, "key"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.kind.String()
		if got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, kind := range []Kind{KindWeapon, KindArmor, KindPotion, KindKey} {
		got, err := ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	got, err := ParseKind(" Weapon ")
	require.NoError(t, err)
	assert.Equal(t, KindWeapon, got)

	_, err = ParseKind("scroll")
	assert.Error(t, err)
}

func TestFactories(t *testing.T) {
	sword := NewSword()
	assert.Equal(t, "Sword", sword.Name)
	assert.Equal(t, KindWeapon, sword.Kind)
	assert.Equal(t, 10, sword.Value)

	potion := NewHealthPotion()
	assert.Equal(t, "Health Potion", potion.Name)
	assert.Equal(t, KindPotion, potion.Kind)
	assert.Equal(t, 20, potion.Value)
}

func TestNewItemFromDef(t *testing.T) {
	item, err := NewItemFromDef(&gamedata.ItemDef{
		ID:          "chain_mail",
		Name:        "Chain Mail",
		Kind:        "armor",
		Value:       12,
		Description: "Heavy.",
	})
	require.NoError(t, err)
	assert.Equal(t, NewItem("Chain Mail", KindArmor, 12, "Heavy."), item)

	_, err = NewItemFromDef(&gamedata.ItemDef{ID: "scroll", Kind: "scroll"})
	assert.Error(t, err)

	_, err = NewItemFromDef(nil)
	assert.Error(t, err)
}

func TestCatalogItemsConvert(t *testing.T) {
	registry := gamedata.MustLoadItemRegistry()
	for _, def := range registry.All() {
		_, err := NewItemFromDef(&def)
		assert.NoErrorf(t, err, "catalog item %q", def.ID)
	}
}

func TestKindEquippable(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindWeapon, true},
		{KindArmor, true},
		{KindPotion, false},
		{KindKey, false},
	}

	for _, tt := range tests {
		if got := tt.kind.Equippable(); got != tt.want {
			t.Errorf("%s.Equippable() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

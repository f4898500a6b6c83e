package game

import (
	"errors"

	"github.com/samdwyer/crawler/internal/world"
)

// Config holds the parameters of a new run.
type Config struct {
	// PlayerName is given to every new player.
	PlayerName string
	// MapWidth and MapHeight size the tile grid.
	MapWidth, MapHeight int
	// RoomWidth and RoomHeight size the room stamped in the middle of the map.
	RoomWidth, RoomHeight int
	// StartingKit lists catalog item IDs added to every new player's inventory.
	StartingKit []string
}

// DefaultConfig returns the configuration of a standard run.
func DefaultConfig() Config {
	return Config{
		PlayerName: "Hero",
		MapWidth:   world.DefaultWidth,
		MapHeight:  world.DefaultHeight,
		RoomWidth:  world.DefaultRoomWidth,
		RoomHeight: world.DefaultRoomHeight,
	}
}

// Validate rejects configurations that cannot produce a map.
func (c Config) Validate() error {
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		return errors.New("map dimensions must be positive")
	}
	if c.RoomWidth <= 0 || c.RoomHeight <= 0 {
		return errors.New("room dimensions must be positive")
	}
	return nil
}

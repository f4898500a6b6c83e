// Package world provides the tile map and room placement.
package world

// Tile represents a single map tile. Its value is the display character.
type Tile rune

const (
	// TileEmpty is unused space outside any room.
	TileEmpty Tile = ' '
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileDoor connects rooms. Nothing generates doors yet.
	TileDoor Tile = '+'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor || t == TileDoor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileDoor:
		return "door"
	default:
		return "unknown"
	}
}

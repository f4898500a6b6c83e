package world

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/crawler/internal/telemetry"
)

const (
	// Default map dimensions. They leave room for the side panel on an 80x24 terminal.
	DefaultWidth  = 50
	DefaultHeight = 20

	// Default dimensions of the starting room.
	DefaultRoomWidth  = 20
	DefaultRoomHeight = 10
)

// RoomID indexes a room in the map's room registry.
type RoomID int

// Map is a grid of tiles plus the rooms stamped into it.
type Map struct {
	Width  int
	Height int
	tiles  [][]Tile
	rooms  []Placement
}

// NewMap creates a map filled with empty tiles. Negative dimensions are
// treated as zero.
func NewMap(width, height int) *Map {
	width = max(width, 0)
	height = max(height, 0)

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileEmpty
		}
	}

	return &Map{
		Width:  width,
		Height: height,
		tiles:  tiles,
		rooms:  make([]Placement, 0),
	}
}

// InBounds returns true if the position lies on the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Tile returns the tile at the given position. ok is false outside the map.
func (m *Map) Tile(x, y int) (tile Tile, ok bool) {
	if !m.InBounds(x, y) {
		return TileEmpty, false
	}
	return m.tiles[y][x], true
}

// SetTile replaces the tile at the given position. Writes outside the map
// are dropped.
func (m *Map) SetTile(x, y int, tile Tile) {
	if !m.InBounds(x, y) {
		return
	}
	m.tiles[y][x] = tile
}

// IsPassable returns true if the given position can be walked on.
func (m *Map) IsPassable(x, y int) bool {
	tile, ok := m.Tile(x, y)
	return ok && tile.IsPassable()
}

// CreateRoom stamps the room into the center of the map: walls on the
// border, floor inside. Whatever was there before is overwritten, and
// parts that fall outside the map are clipped.
func (m *Map) CreateRoom(room Room) RoomID {
	x := floorDiv(m.Width-room.Width, 2)
	y := floorDiv(m.Height-room.Height, 2)

	for ty := y; ty < y+room.Height; ty++ {
		for tx := x; tx < x+room.Width; tx++ {
			if ty == y || ty == y+room.Height-1 || tx == x || tx == x+room.Width-1 {
				m.SetTile(tx, ty, TileWall)
			} else {
				m.SetTile(tx, ty, TileFloor)
			}
		}
	}

	m.rooms = append(m.rooms, Placement{Room: room, X: x, Y: y})
	return RoomID(len(m.rooms) - 1)
}

// Generate stamps the starting room and records the layout on a span.
func (m *Map) Generate(ctx context.Context, room Room) RoomID {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	startTime := time.Now()
	id := m.CreateRoom(room)
	placed := m.rooms[id]

	span.SetAttributes(
		attribute.Int("map.width", m.Width),
		attribute.Int("map.height", m.Height),
		attribute.Int("room.width", room.Width),
		attribute.Int("room.height", room.Height),
		attribute.Int("room.x", placed.X),
		attribute.Int("room.y", placed.Y),
		attribute.Int("map.room_count", len(m.rooms)),
		attribute.Int64("map.generation_us", time.Since(startTime).Microseconds()),
	)
	return id
}

// Rooms returns every room stamped so far, in stamping order.
func (m *Map) Rooms() []Placement {
	rooms := make([]Placement, len(m.rooms))
	copy(rooms, m.rooms)
	return rooms
}

// Room returns the placement registered under id.
func (m *Map) Room(id RoomID) (Placement, bool) {
	if id < 0 || int(id) >= len(m.rooms) {
		return Placement{}, false
	}
	return m.rooms[id], true
}

// RoomCount returns the number of stamped rooms.
func (m *Map) RoomCount() int {
	return len(m.rooms)
}

// RoomIndexAt returns the most recently stamped room containing the
// position, or -1 if it is not in a room.
func (m *Map) RoomIndexAt(x, y int) RoomID {
	for i := len(m.rooms) - 1; i >= 0; i-- {
		if m.rooms[i].Contains(x, y) {
			return RoomID(i)
		}
	}
	return -1
}

package world

// Room is a rectangular blueprint. It has a size but no position until
// it is stamped into a map.
type Room struct {
	Width, Height int
}

// NewRoom creates a room blueprint.
func NewRoom(width, height int) Room {
	return Room{Width: width, Height: height}
}

// Center returns the center of the blueprint relative to its own corner.
func (r Room) Center() (int, int) {
	return floorDiv(r.Width, 2), floorDiv(r.Height, 2)
}

// Placement is a room stamped into a map at a top-left corner.
type Placement struct {
	Room
	X, Y int // Top-left corner position
}

// Center returns the absolute center coordinates of the placed room.
func (p Placement) Center() (int, int) {
	cx, cy := p.Room.Center()
	return p.X + cx, p.Y + cy
}

// Contains returns true if the given point is inside the placed room,
// walls included.
func (p Placement) Contains(x, y int) bool {
	return x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height
}

// Intersects returns true if this placement overlaps with another.
func (p Placement) Intersects(other Placement) bool {
	return p.X < other.X+other.Width &&
		p.X+p.Width > other.X &&
		p.Y < other.Y+other.Height &&
		p.Y+p.Height > other.Y
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

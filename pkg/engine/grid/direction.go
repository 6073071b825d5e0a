package grid

// Direction represents a cardinal facing/movement direction
type Direction int

// Direction constants
const (
	Up Direction = iota
	Down
	Left
	Right
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// ParseDirection converts a stored facing string back to a Direction.
// Unknown strings default to Down, the spawn facing.
func ParseDirection(s string) Direction {
	switch s {
	case "up":
		return Up
	case "down":
		return Down
	case "left":
		return Left
	case "right":
		return Right
	default:
		return Down
	}
}

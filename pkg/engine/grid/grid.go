// Package grid provides the tile grid primitives the game world is
// built from. Every floor is a fixed-size matrix of tiles, and all
// positions are row/column pairs on that matrix.
package grid

// Standard floor dimensions. Every floor uses the same footprint.
const (
	Rows = 15
	Cols = 20
)

// TileKind classifies a single grid cell
type TileKind int

// Tile kinds
const (
	TileFloor TileKind = iota
	TileWall
	TileFurniture
	TileDoor
	TileInteract
	TileStairs
	TileCounter
)

// String returns the string representation of a tile kind
func (t TileKind) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileFurniture:
		return "furniture"
	case TileDoor:
		return "door"
	case TileInteract:
		return "interact"
	case TileStairs:
		return "stairs"
	case TileCounter:
		return "counter"
	default:
		return "unknown"
	}
}

// Walkable reports whether the player may stand on a tile of this kind.
// Furniture, counters and interactables block movement but can be the
// target of an interaction; stairs are walkable and trigger transitions.
func (t TileKind) Walkable() bool {
	switch t {
	case TileFloor, TileDoor, TileStairs:
		return true
	default:
		return false
	}
}

// Point is a row/column position on a floor grid
type Point struct {
	Row int
	Col int
}

// Step returns the point one tile away in the given direction
func (p Point) Step(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Grid is a fixed-size tile matrix
type Grid [Rows][Cols]TileKind

// InBounds reports whether the point lies on the grid
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// At returns the tile at the given point. Out of bounds positions
// report as walls so callers never walk off the map.
func (g *Grid) At(p Point) TileKind {
	if !g.InBounds(p) {
		return TileWall
	}
	return g[p.Row][p.Col]
}

// Package state holds the mutable game state: where the player is,
// what they carry and which quest flags are set. Everything else in
// the game reads and writes through this package.
package state

import (
	"github.com/zyedidia/generic/mapset"

	"cathouse/pkg/engine/grid"
	"cathouse/pkg/game/floor"
)

// Item identifies a carryable inventory item
type Item string

// Inventory items
const (
	ItemPurrpops      Item = "purrpops"
	ItemFeastPlate    Item = "feast_plate"
	ItemBasementKey   Item = "basement_key"
	ItemLaundryBasket Item = "laundry_basket"
)

// DisplayName returns the player-facing name of an item
func (i Item) DisplayName() string {
	switch i {
	case ItemPurrpops:
		return "Purrpops"
	case ItemFeastPlate:
		return "Shrimp & Salmon Feast"
	case ItemBasementKey:
		return "Basement Key"
	case ItemLaundryBasket:
		return "Laundry Basket"
	default:
		return string(i)
	}
}

// Flags is the set of quest progress flags. Each flag flips false to
// true exactly once over a playthrough and never unsets.
type Flags struct {
	FrontDoorUnlocked bool
	AliceFed          bool
	OliveFed          bool
	BeatriceFed       bool
	HasBasementKey    bool
	BasementUnlocked  bool
	SofaSearched      bool
	HasLaundryBasket  bool
	LaundryCleared    bool
	GameComplete      bool

	// CatToysFound holds the toy ids of optional collectibles.
	CatToysFound mapset.Set[string]
}

// NewFlags returns a zero-progress flag set
func NewFlags() Flags {
	return Flags{
		CatToysFound: mapset.New[string](),
	}
}

// TileSize is the length of one tile slide in progress units. A move
// commits once MoveProgress reaches it.
const TileSize = 24

// Game represents a single playthrough
type Game struct {
	CurrentFloor floor.ID

	// PlayerPos is the authoritative discrete tile. During a slide it
	// still holds the departure tile until the slide commits.
	PlayerPos    grid.Point
	PlayerFacing grid.Direction

	// Slide sub-state. Presentational interpolation only, except that
	// Moving gates input. Never persisted.
	Moving       bool
	MoveFrom     grid.Point
	MoveTo       grid.Point
	MoveProgress int

	Inventory []Item

	Flags Flags
}

// NewGame creates a fresh playthrough positioned at the outside spawn
func NewGame() *Game {
	start := floor.Get(floor.Outside)
	return &Game{
		CurrentFloor: floor.Outside,
		PlayerPos:    start.Start,
		PlayerFacing: start.StartFacing,
		Inventory:    make([]Item, 0),
		Flags:        NewFlags(),
	}
}

// Floor returns the floor the player is currently on
func (g *Game) Floor() *floor.Floor {
	return floor.Get(g.CurrentFloor)
}

// HasItem checks if the player carries a specific item
func (g *Game) HasItem(item Item) bool {
	for _, it := range g.Inventory {
		if it == item {
			return true
		}
	}
	return false
}

// AddItem adds an item to the inventory. Duplicates are ignored so a
// replayed pickup can never grant two of the same item.
func (g *Game) AddItem(item Item) {
	if g.HasItem(item) {
		return
	}
	g.Inventory = append(g.Inventory, item)
}

// RemoveItem removes an item from the inventory if present
func (g *Game) RemoveItem(item Item) {
	for i, it := range g.Inventory {
		if it == item {
			g.Inventory = append(g.Inventory[:i], g.Inventory[i+1:]...)
			return
		}
	}
}

// ToyCount returns how many cat toys have been found
func (g *Game) ToyCount() int {
	return g.Flags.CatToysFound.Size()
}

// MarkToyFound records a collected toy and reports whether it was new
func (g *Game) MarkToyFound(toyID string) bool {
	if g.Flags.CatToysFound.Has(toyID) {
		return false
	}
	g.Flags.CatToysFound.Put(toyID)
	return true
}

// CatFed reports whether the named cat has been fed
func (g *Game) CatFed(cat floor.CatID) bool {
	switch cat {
	case floor.CatAlice:
		return g.Flags.AliceFed
	case floor.CatOlive:
		return g.Flags.OliveFed
	case floor.CatBeatrice:
		return g.Flags.BeatriceFed
	default:
		return false
	}
}

// MarkCatFed records that the named cat has been fed
func (g *Game) MarkCatFed(cat floor.CatID) {
	switch cat {
	case floor.CatAlice:
		g.Flags.AliceFed = true
	case floor.CatOlive:
		g.Flags.OliveFed = true
	case floor.CatBeatrice:
		g.Flags.BeatriceFed = true
	}
}

// Package floor defines the static world data: the tile grid, the
// interactable objects and the stair routes of each floor of the
// house. Floor data never changes at runtime; all progress lives in
// the game state.
package floor

import (
	"fmt"

	"cathouse/pkg/engine/grid"
)

// ID identifies a floor. The values double as the serialized floor
// names in save files.
type ID string

// Floor identifiers
const (
	Outside  ID = "outside"
	Main     ID = "main"
	Basement ID = "basement"
	Upstairs ID = "upstairs"
)

// IsValid reports whether the ID names a known floor
func (id ID) IsValid() bool {
	switch id {
	case Outside, Main, Basement, Upstairs:
		return true
	}
	return false
}

// CatID identifies one of the three cats
type CatID string

// The cats
const (
	CatAlice    CatID = "alice"
	CatOlive    CatID = "olive"
	CatBeatrice CatID = "beatrice"
)

// Kind classifies an interactable and selects its interaction logic.
type Kind int

// Interactable kinds
const (
	// KindFlavor plays a fixed dialogue script and nothing else.
	KindFlavor Kind = iota

	// KindCupboard grants its Item once, then reads as empty.
	KindCupboard

	// KindCat runs the feeding quest for its Cat.
	KindCat

	// KindSofa hides the basement key until Alice reveals it.
	KindSofa

	// KindBasementDoor is locked until opened with the basement key.
	KindBasementDoor

	// KindFrontDoor is locked behind the numeric keypad code.
	KindFrontDoor

	// KindToy is a collectible cat toy.
	KindToy
)

// Interactable is a fixed object on a floor the player can interact
// with by facing it and pressing the interact key.
type Interactable struct {
	Pos   grid.Point
	Kind  Kind
	Label string

	// Script is the dialogue script key for KindFlavor, and the
	// pickup script for KindCupboard.
	Script string

	// Cat is set for KindCat.
	Cat CatID

	// Item is the inventory item id a KindCupboard grants.
	Item string

	// ToyID is set for KindToy.
	ToyID string
}

// StairRoute describes a group of stair tiles and where stepping on
// them leads. A route may be gated behind a quest flag; walking onto
// a gated route with the clearing item consumes it and opens the way.
type StairRoute struct {
	Tiles []grid.Point

	Target       ID
	Arrive       grid.Point
	ArriveFacing grid.Direction

	// RequiresFlag names the quest flag that must be set before the
	// route is passable. Empty means always passable.
	RequiresFlag string

	// ConsumeItem is the inventory item that clears the gate.
	ConsumeItem string

	// BlockedScript plays when the gate is shut and the player lacks
	// the clearing item. ClearScript plays when the item is used.
	BlockedScript string
	ClearScript   string
}

// Contains reports whether the point is one of the route's tiles
func (r *StairRoute) Contains(p grid.Point) bool {
	for _, t := range r.Tiles {
		if t == p {
			return true
		}
	}
	return false
}

// RoomLabel is a decorative room name drawn on the map
type RoomLabel struct {
	Text string
	Pos  grid.Point
}

// Floor bundles everything static about one floor of the house
type Floor struct {
	ID   ID
	Name string

	Grid grid.Grid

	Interactables []Interactable
	Stairs        []StairRoute
	Labels        []RoomLabel

	Start       grid.Point
	StartFacing grid.Direction
}

// InteractableAt returns the interactable at the given position, or
// nil when the position holds none.
func (f *Floor) InteractableAt(p grid.Point) *Interactable {
	for i := range f.Interactables {
		if f.Interactables[i].Pos == p {
			return &f.Interactables[i]
		}
	}
	return nil
}

// StairAt returns the stair route covering the given position, or nil.
func (f *Floor) StairAt(p grid.Point) *StairRoute {
	for i := range f.Stairs {
		if f.Stairs[i].Contains(p) {
			return &f.Stairs[i]
		}
	}
	return nil
}

var floors = map[ID]*Floor{
	Outside:  outsideFloor,
	Main:     mainFloor,
	Basement: basementFloor,
	Upstairs: upstairsFloor,
}

// Get returns the floor for the given ID. Unknown IDs panic since
// they can only come from a programming error; save files are
// validated before they reach this point.
func Get(id ID) *Floor {
	f, ok := floors[id]
	if !ok {
		panic(fmt.Sprintf("unknown floor %q", id))
	}
	return f
}

// All returns every floor, for validation and tooling
func All() []*Floor {
	return []*Floor{outsideFloor, mainFloor, basementFloor, upstairsFloor}
}

// Validate checks the static data for internal consistency. It is
// called from tests so broken floor data fails loudly.
func Validate(f *Floor) error {
	if !f.Grid.InBounds(f.Start) || !f.Grid.At(f.Start).Walkable() {
		return fmt.Errorf("floor %s: start %v is not walkable", f.ID, f.Start)
	}

	seen := make(map[grid.Point]bool)
	for _, it := range f.Interactables {
		if !f.Grid.InBounds(it.Pos) {
			return fmt.Errorf("floor %s: interactable %q out of bounds at %v", f.ID, it.Label, it.Pos)
		}
		if seen[it.Pos] {
			return fmt.Errorf("floor %s: two interactables share %v", f.ID, it.Pos)
		}
		seen[it.Pos] = true
		if f.Grid.At(it.Pos).Walkable() {
			return fmt.Errorf("floor %s: interactable %q sits on a walkable tile at %v", f.ID, it.Label, it.Pos)
		}
	}

	for _, route := range f.Stairs {
		if !route.Target.IsValid() {
			return fmt.Errorf("floor %s: stair route targets unknown floor %q", f.ID, route.Target)
		}
		for _, t := range route.Tiles {
			if f.Grid.At(t) != grid.TileStairs {
				return fmt.Errorf("floor %s: stair route tile %v is not a stairs tile", f.ID, t)
			}
		}
		target := Get(route.Target)
		if !target.Grid.At(route.Arrive).Walkable() {
			return fmt.Errorf("floor %s: stair landing %v on %s is not walkable", f.ID, route.Arrive, route.Target)
		}
	}

	return nil
}

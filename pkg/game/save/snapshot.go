package save

import (
	"encoding/json"
	"fmt"
	"sort"

	"cathouse/pkg/engine/grid"
	"cathouse/pkg/game/floor"
	"cathouse/pkg/game/state"
)

// Snapshot is the serialized form of a playthrough
type Snapshot struct {
	CurrentFloor string         `json:"current_floor"`
	Player       PlayerSnapshot `json:"player"`
	Inventory    []string       `json:"inventory"`
	Flags        FlagsSnapshot  `json:"flags"`
}

// PlayerSnapshot records where the player stands
type PlayerSnapshot struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Facing string `json:"facing"`
}

// FlagsSnapshot mirrors state.Flags. Absent fields unmarshal to their
// zero value, so snapshots from older versions load with the missing
// flags unset.
type FlagsSnapshot struct {
	FrontDoorUnlocked bool     `json:"front_door_unlocked"`
	AliceFed          bool     `json:"alice_fed"`
	OliveFed          bool     `json:"olive_fed"`
	BeatriceFed       bool     `json:"beatrice_fed"`
	HasBasementKey    bool     `json:"has_basement_key"`
	BasementUnlocked  bool     `json:"basement_unlocked"`
	SofaSearched      bool     `json:"sofa_searched"`
	HasLaundryBasket  bool     `json:"has_laundry_basket"`
	LaundryCleared    bool     `json:"laundry_cleared"`
	GameComplete      bool     `json:"game_complete"`
	CatToysFound      []string `json:"cat_toys_found"`
}

// Capture builds a snapshot of the current game state
func Capture(g *state.Game) Snapshot {
	inv := make([]string, 0, len(g.Inventory))
	for _, item := range g.Inventory {
		inv = append(inv, string(item))
	}

	toys := make([]string, 0, g.Flags.CatToysFound.Size())
	g.Flags.CatToysFound.Each(func(id string) {
		toys = append(toys, id)
	})
	sort.Strings(toys)

	return Snapshot{
		CurrentFloor: string(g.CurrentFloor),
		Player: PlayerSnapshot{
			Row:    g.PlayerPos.Row,
			Col:    g.PlayerPos.Col,
			Facing: g.PlayerFacing.String(),
		},
		Inventory: inv,
		Flags: FlagsSnapshot{
			FrontDoorUnlocked: g.Flags.FrontDoorUnlocked,
			AliceFed:          g.Flags.AliceFed,
			OliveFed:          g.Flags.OliveFed,
			BeatriceFed:       g.Flags.BeatriceFed,
			HasBasementKey:    g.Flags.HasBasementKey,
			BasementUnlocked:  g.Flags.BasementUnlocked,
			SofaSearched:      g.Flags.SofaSearched,
			HasLaundryBasket:  g.Flags.HasLaundryBasket,
			LaundryCleared:    g.Flags.LaundryCleared,
			GameComplete:      g.Flags.GameComplete,
			CatToysFound:      toys,
		},
	}
}

// Restore rebuilds a game from a snapshot. The floor must be known; a
// position that is out of bounds or unwalkable falls back to the
// floor's spawn rather than trapping the player inside a wall.
func Restore(snap Snapshot) (*state.Game, error) {
	id := floor.ID(snap.CurrentFloor)
	if !id.IsValid() {
		return nil, fmt.Errorf("snapshot references unknown floor %q", snap.CurrentFloor)
	}
	f := floor.Get(id)

	pos := grid.Point{Row: snap.Player.Row, Col: snap.Player.Col}
	facing := grid.ParseDirection(snap.Player.Facing)
	if !f.Grid.InBounds(pos) || !f.Grid.At(pos).Walkable() {
		pos = f.Start
		facing = f.StartFacing
	}

	g := &state.Game{
		CurrentFloor: id,
		PlayerPos:    pos,
		PlayerFacing: facing,
		Inventory:    make([]state.Item, 0, len(snap.Inventory)),
		Flags:        state.NewFlags(),
	}

	for _, item := range snap.Inventory {
		g.AddItem(state.Item(item))
	}

	g.Flags.FrontDoorUnlocked = snap.Flags.FrontDoorUnlocked
	g.Flags.AliceFed = snap.Flags.AliceFed
	g.Flags.OliveFed = snap.Flags.OliveFed
	g.Flags.BeatriceFed = snap.Flags.BeatriceFed
	g.Flags.HasBasementKey = snap.Flags.HasBasementKey
	g.Flags.BasementUnlocked = snap.Flags.BasementUnlocked
	g.Flags.SofaSearched = snap.Flags.SofaSearched
	g.Flags.HasLaundryBasket = snap.Flags.HasLaundryBasket
	g.Flags.LaundryCleared = snap.Flags.LaundryCleared
	g.Flags.GameComplete = snap.Flags.GameComplete
	for _, toy := range snap.Flags.CatToysFound {
		g.Flags.CatToysFound.Put(toy)
	}

	return g, nil
}

// Marshal encodes a snapshot as indented JSON
func Marshal(snap Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// Unmarshal decodes snapshot JSON
func Unmarshal(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("corrupt save data: %w", err)
	}
	return snap, nil
}

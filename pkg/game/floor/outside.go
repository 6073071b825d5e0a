package floor

import "cathouse/pkg/engine/grid"

// Outside: the front yard where every game begins. The house facade
// runs along row 4 with the keypad-locked front door in the middle.
// Entering the house goes through the front door interactable rather
// than a stair tile.
var outsideFloor = &Floor{
	ID:   Outside,
	Name: "Outside",

	Grid: grid.Grid{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 4, 1, 4, 1, 4, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 4, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	},

	Interactables: []Interactable{
		// House facade
		{Pos: grid.Point{Row: 4, Col: 7}, Kind: KindFlavor, Label: "Porch Light", Script: "porch_light"},
		{Pos: grid.Point{Row: 4, Col: 9}, Kind: KindFrontDoor, Label: "Front Door"},
		{Pos: grid.Point{Row: 4, Col: 11}, Kind: KindFlavor, Label: "House Plaque", Script: "outside_riddle_board"},

		// Porch and yard
		{Pos: grid.Point{Row: 5, Col: 5}, Kind: KindFlavor, Label: "Flower Bed", Script: "flower_bed"},
		{Pos: grid.Point{Row: 5, Col: 14}, Kind: KindFlavor, Label: "Flower Bed", Script: "flower_bed"},
		{Pos: grid.Point{Row: 6, Col: 8}, Kind: KindFlavor, Label: "Welcome Mat", Script: "welcome_mat"},
		{Pos: grid.Point{Row: 7, Col: 12}, Kind: KindFlavor, Label: "Garden Bench", Script: "garden_bench"},
		{Pos: grid.Point{Row: 8, Col: 3}, Kind: KindFlavor, Label: "Mailbox", Script: "mailbox"},
		{Pos: grid.Point{Row: 8, Col: 16}, Kind: KindFlavor, Label: "Bird Bath", Script: "bird_bath"},
		{Pos: grid.Point{Row: 10, Col: 4}, Kind: KindFlavor, Label: "Garden Gnome", Script: "garden_gnome"},
	},

	Labels: []RoomLabel{
		{Text: "Front Yard", Pos: grid.Point{Row: 11, Col: 3}},
	},

	Start:       grid.Point{Row: 11, Col: 9},
	StartFacing: grid.Up,
}

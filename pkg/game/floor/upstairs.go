package floor

import "cathouse/pkg/engine/grid"

// Upstairs: main bedroom top-left, guest bedroom top-right with
// Beatrice under the blanket, office bottom-left, washroom
// bottom-right and the stairs back down in the center.
var upstairsFloor = &Floor{
	ID:   Upstairs,
	Name: "Upstairs",

	Grid: grid.Grid{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 2, 2, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 4, 2, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 2, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 3, 1, 1, 0, 0, 0, 1, 0, 0, 0, 1, 1, 3, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 2, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 2, 0, 1},
		{1, 0, 0, 2, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 4, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 2, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 2, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 0, 5, 5, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 0, 5, 5, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	},

	Interactables: []Interactable{
		// Beatrice under the blanket on the guest bed
		{Pos: grid.Point{Row: 2, Col: 15}, Kind: KindCat, Label: "Beatrice", Cat: CatBeatrice},
		{Pos: grid.Point{Row: 2, Col: 16}, Kind: KindFlavor, Label: "Dresser", Script: "guest_dresser"},

		// Main bedroom
		{Pos: grid.Point{Row: 3, Col: 7}, Kind: KindFlavor, Label: "Wardrobe", Script: "wardrobe"},

		// Office
		{Pos: grid.Point{Row: 8, Col: 3}, Kind: KindFlavor, Label: "Filing Cabinet", Script: "filing_cabinet"},
		{Pos: grid.Point{Row: 9, Col: 3}, Kind: KindFlavor, Label: "Printer", Script: "printer"},

		// Washroom
		{Pos: grid.Point{Row: 8, Col: 17}, Kind: KindFlavor, Label: "Cabinet", Script: "bathroom_cabinet"},
		{Pos: grid.Point{Row: 10, Col: 14}, Kind: KindFlavor, Label: "Towel Warmer", Script: "towel_warmer"},
		{Pos: grid.Point{Row: 11, Col: 16}, Kind: KindFlavor, Label: "Scale", Script: "bathroom_scale"},

		// Collectible, in the office drawer
		{Pos: grid.Point{Row: 10, Col: 3}, Kind: KindToy, Label: "Laser Pointer", ToyID: "laser_pointer"},
	},

	Stairs: []StairRoute{
		{
			Tiles: []grid.Point{
				{Row: 12, Col: 8}, {Row: 12, Col: 9},
				{Row: 13, Col: 8}, {Row: 13, Col: 9},
			},
			Target:       Main,
			Arrive:       grid.Point{Row: 8, Col: 10},
			ArriveFacing: grid.Down,
		},
	},

	Labels: []RoomLabel{
		{Text: "Main Bedroom", Pos: grid.Point{Row: 1, Col: 2}},
		{Text: "Guest Bedroom", Pos: grid.Point{Row: 1, Col: 13}},
		{Text: "Office", Pos: grid.Point{Row: 8, Col: 1}},
		{Text: "Washroom", Pos: grid.Point{Row: 8, Col: 15}},
	},

	Start:       grid.Point{Row: 11, Col: 8},
	StartFacing: grid.Down,
}

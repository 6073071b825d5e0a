package floor

import "cathouse/pkg/engine/grid"

// Basement: stairs top-left, lobby in the middle, rec room on the
// right and the washroom bottom-left. Olive hides under the treadmill
// in the rec room.
var basementFloor = &Floor{
	ID:   Basement,
	Name: "Basement",

	Grid: grid.Grid{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 5, 5, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 5, 5, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 3, 1, 1, 1, 1, 1, 0, 0, 4, 0, 0, 0, 0, 0, 0, 1},
		{1, 2, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 2, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 2, 0, 0, 2, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 2, 4, 0, 0, 0, 0, 2, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	},

	Interactables: []Interactable{
		// Olive under the treadmill in the rec room
		{Pos: grid.Point{Row: 6, Col: 12}, Kind: KindCat, Label: "Olive", Cat: CatOlive},

		// Rec room
		{Pos: grid.Point{Row: 3, Col: 14}, Kind: KindFlavor, Label: "Futon", Script: "futon"},
		{Pos: grid.Point{Row: 7, Col: 16}, Kind: KindFlavor, Label: "Free Weights", Script: "weights"},

		// Washroom and laundry corner
		{Pos: grid.Point{Row: 7, Col: 1}, Kind: KindFlavor, Label: "Washing Machine", Script: "washer"},
		{Pos: grid.Point{Row: 9, Col: 3}, Kind: KindFlavor, Label: "Cleaning Supplies", Script: "cleaning_supplies"},
		{Pos: grid.Point{Row: 9, Col: 6}, Kind: KindFlavor, Label: "Storage Boxes", Script: "storage_box"},
		{Pos: grid.Point{Row: 11, Col: 1}, Kind: KindFlavor, Label: "Tool Bench", Script: "tool_bench"},
		{Pos: grid.Point{Row: 11, Col: 7}, Kind: KindFlavor, Label: "Water Heater", Script: "water_heater"},

		// Collectible, tucked behind the boxes
		{Pos: grid.Point{Row: 11, Col: 2}, Kind: KindToy, Label: "Feather Wand", ToyID: "feather_wand"},
	},

	Stairs: []StairRoute{
		{
			Tiles: []grid.Point{
				{Row: 1, Col: 1}, {Row: 1, Col: 2},
				{Row: 2, Col: 1}, {Row: 2, Col: 2},
			},
			Target:       Main,
			Arrive:       grid.Point{Row: 7, Col: 17},
			ArriveFacing: grid.Left,
		},
	},

	Labels: []RoomLabel{
		{Text: "Lobby", Pos: grid.Point{Row: 2, Col: 4}},
		{Text: "Rec Room", Pos: grid.Point{Row: 4, Col: 14}},
		{Text: "Washroom", Pos: grid.Point{Row: 8, Col: 3}},
	},

	Start:       grid.Point{Row: 3, Col: 2},
	StartFacing: grid.Down,
}

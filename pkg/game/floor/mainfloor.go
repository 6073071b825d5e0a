package floor

import "cathouse/pkg/engine/grid"

// Main floor: kitchen and dining room along the top, living room in
// the middle, half-bath bottom-left. The central stairs lead up and
// the door by the dining room leads down.
var mainFloor = &Floor{
	ID:   Main,
	Name: "Main Floor",

	Grid: grid.Grid{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 6, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 4, 4, 4, 4, 6, 6, 4, 1, 0, 0, 0, 4, 0, 0, 0, 0, 0, 2, 1},
		{1, 4, 0, 0, 0, 4, 4, 0, 1, 2, 2, 0, 0, 0, 4, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 6, 6, 6, 1, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4, 1},
		{1, 0, 0, 2, 0, 0, 4, 0, 0, 0, 5, 5, 0, 0, 0, 4, 0, 0, 1, 1},
		{1, 0, 0, 2, 0, 0, 4, 0, 0, 0, 5, 5, 0, 0, 0, 0, 0, 0, 4, 1},
		{1, 0, 4, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
		{1, 1, 1, 3, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 2, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 2, 2, 0, 0, 0, 0, 0, 1},
		{1, 2, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	},

	Interactables: []Interactable{
		// Kitchen
		{Pos: grid.Point{Row: 3, Col: 1}, Kind: KindFlavor, Label: "Fridge", Script: "fridge"},
		{Pos: grid.Point{Row: 2, Col: 1}, Kind: KindFlavor, Label: "Cupboard", Script: "cupboard_empty"},
		{Pos: grid.Point{Row: 2, Col: 2}, Kind: KindCupboard, Label: "Cupboard", Script: "cupboard_purrpops", Item: "purrpops"},
		{Pos: grid.Point{Row: 2, Col: 3}, Kind: KindFlavor, Label: "Cupboard", Script: "cupboard_empty"},
		{Pos: grid.Point{Row: 2, Col: 4}, Kind: KindCupboard, Label: "Cupboard", Script: "cupboard_feast", Item: "feast_plate"},
		{Pos: grid.Point{Row: 3, Col: 5}, Kind: KindFlavor, Label: "Stove", Script: "stove"},
		{Pos: grid.Point{Row: 3, Col: 6}, Kind: KindFlavor, Label: "Sink", Script: "kitchen_sink"},
		{Pos: grid.Point{Row: 2, Col: 7}, Kind: KindFlavor, Label: "Coffee Station", Script: "coffee_station"},

		// Dining room
		{Pos: grid.Point{Row: 3, Col: 14}, Kind: KindCat, Label: "Alice", Cat: CatAlice},
		{Pos: grid.Point{Row: 2, Col: 12}, Kind: KindFlavor, Label: "Dining Table", Script: "dining_table"},
		{Pos: grid.Point{Row: 2, Col: 18}, Kind: KindFlavor, Label: "China Cabinet", Script: "china_cabinet"},
		{Pos: grid.Point{Row: 5, Col: 18}, Kind: KindFlavor, Label: "Sliding Door", Script: "sliding_door"},

		// Living room
		{Pos: grid.Point{Row: 6, Col: 6}, Kind: KindFlavor, Label: "Floor Lamp", Script: "floor_lamp"},
		{Pos: grid.Point{Row: 7, Col: 6}, Kind: KindFlavor, Label: "Coffee Table", Script: "coffee_table"},
		{Pos: grid.Point{Row: 6, Col: 15}, Kind: KindFlavor, Label: "TV Console", Script: "tv"},
		{Pos: grid.Point{Row: 8, Col: 2}, Kind: KindFlavor, Label: "Bookshelf", Script: "bookshelf"},
		{Pos: grid.Point{Row: 6, Col: 3}, Kind: KindFlavor, Label: "Coat Rack", Script: "coat_rack"},
		{Pos: grid.Point{Row: 7, Col: 3}, Kind: KindFlavor, Label: "Potted Plant", Script: "plant"},
		{Pos: grid.Point{Row: 10, Col: 12}, Kind: KindFlavor, Label: "Reading Chair", Script: "reading_chair"},
		{Pos: grid.Point{Row: 10, Col: 13}, Kind: KindFlavor, Label: "Side Table", Script: "side_table"},

		// Sofa with the blanket, living room
		{Pos: grid.Point{Row: 8, Col: 5}, Kind: KindSofa, Label: "Sofa"},

		// Half-bath
		{Pos: grid.Point{Row: 10, Col: 1}, Kind: KindFlavor, Label: "Mirror", Script: "bathroom_mirror"},
		{Pos: grid.Point{Row: 11, Col: 1}, Kind: KindFlavor, Label: "Towel Rack", Script: "towel_rack"},

		// Basement door, right of the dining room
		{Pos: grid.Point{Row: 7, Col: 18}, Kind: KindBasementDoor, Label: "Basement Door"},

		// Collectible
		{Pos: grid.Point{Row: 12, Col: 8}, Kind: KindToy, Label: "Jingle Ball", ToyID: "jingle_ball"},
	},

	Stairs: []StairRoute{
		{
			Tiles: []grid.Point{
				{Row: 6, Col: 10}, {Row: 6, Col: 11},
				{Row: 7, Col: 10}, {Row: 7, Col: 11},
			},
			Target:        Upstairs,
			Arrive:        grid.Point{Row: 11, Col: 8},
			ArriveFacing:  grid.Down,
			RequiresFlag:  "laundry_cleared",
			ConsumeItem:   "laundry_basket",
			BlockedScript: "laundry_pile_blocked",
			ClearScript:   "laundry_pile_clear",
		},
	},

	Labels: []RoomLabel{
		{Text: "Kitchen", Pos: grid.Point{Row: 2, Col: 2}},
		{Text: "Dining Room", Pos: grid.Point{Row: 2, Col: 12}},
		{Text: "Living Room", Pos: grid.Point{Row: 8, Col: 10}},
		{Text: "Half-Bath", Pos: grid.Point{Row: 10, Col: 2}},
	},

	Start:       grid.Point{Row: 8, Col: 9},
	StartFacing: grid.Down,
}

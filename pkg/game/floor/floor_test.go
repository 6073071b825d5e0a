package floor

import (
	"testing"

	"cathouse/pkg/engine/grid"
)

func TestAllFloorsValidate(t *testing.T) {
	for _, f := range All() {
		t.Run(string(f.ID), func(t *testing.T) {
			if err := Validate(f); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestEveryFloorRegistered(t *testing.T) {
	for _, id := range []ID{Outside, Main, Basement, Upstairs} {
		f := Get(id)
		if f.ID != id {
			t.Errorf("Get(%s) returned floor %s", id, f.ID)
		}
	}
}

func TestGetUnknownFloorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get with unknown ID did not panic")
		}
	}()
	Get("attic")
}

func TestOneCatPerCatFloor(t *testing.T) {
	tests := []struct {
		floor ID
		cat   CatID
	}{
		{Main, CatAlice},
		{Basement, CatOlive},
		{Upstairs, CatBeatrice},
	}

	for _, tt := range tests {
		f := Get(tt.floor)
		var cats []CatID
		for _, it := range f.Interactables {
			if it.Kind == KindCat {
				cats = append(cats, it.Cat)
			}
		}
		if len(cats) != 1 || cats[0] != tt.cat {
			t.Errorf("floor %s: cats = %v, want exactly [%s]", tt.floor, cats, tt.cat)
		}
	}
}

func TestEveryToyPlacedOnce(t *testing.T) {
	found := make(map[string]int)
	for _, f := range All() {
		for _, it := range f.Interactables {
			if it.Kind == KindToy {
				found[it.ToyID]++
			}
		}
	}

	for _, toy := range []string{"jingle_ball", "feather_wand", "laser_pointer"} {
		if found[toy] != 1 {
			t.Errorf("toy %s placed %d times, want 1", toy, found[toy])
		}
	}
	if len(found) != 3 {
		t.Errorf("found %d distinct toys, want 3", len(found))
	}
}

func TestStairRoutesConnect(t *testing.T) {
	// Walking upstairs and back down must land next to the stairs,
	// not on them, so the player does not bounce between floors.
	for _, f := range All() {
		for _, route := range f.Stairs {
			target := Get(route.Target)
			if back := target.StairAt(route.Arrive); back != nil {
				t.Errorf("floor %s: landing %v on %s is itself a stair tile", f.ID, route.Arrive, route.Target)
			}
		}
	}
}

func TestFrontDoorReachable(t *testing.T) {
	f := Get(Outside)

	door := f.InteractableAt(grid.Point{Row: 4, Col: 9})
	if door == nil || door.Kind != KindFrontDoor {
		t.Fatal("front door interactable missing at (4,9)")
	}

	// The tile below the door must be walkable so the player can face it.
	if !f.Grid.At(grid.Point{Row: 5, Col: 9}).Walkable() {
		t.Error("tile in front of the front door is not walkable")
	}
}

func TestInteractableAt(t *testing.T) {
	f := Get(Main)

	if it := f.InteractableAt(grid.Point{Row: 8, Col: 5}); it == nil || it.Kind != KindSofa {
		t.Error("expected sofa at (8,5)")
	}
	if it := f.InteractableAt(grid.Point{Row: 8, Col: 6}); it != nil {
		t.Errorf("expected nothing at (8,6), got %q", it.Label)
	}
}

func TestLaundryGateOnMainStairs(t *testing.T) {
	f := Get(Main)

	route := f.StairAt(grid.Point{Row: 6, Col: 10})
	if route == nil {
		t.Fatal("no stair route on main floor stairs")
	}
	if route.Target != Upstairs {
		t.Errorf("main stairs target %s, want upstairs", route.Target)
	}
	if route.RequiresFlag != "laundry_cleared" || route.ConsumeItem != "laundry_basket" {
		t.Errorf("main stairs gate = (%q, %q), want laundry gate", route.RequiresFlag, route.ConsumeItem)
	}
}

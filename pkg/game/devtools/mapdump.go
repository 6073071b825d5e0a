// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"

	"cathouse/pkg/engine/grid"
	"cathouse/pkg/game/floor"
)

const mapDumpFilename = "maps.txt"

// tileSymbol returns the single-character symbol for a tile.
func tileSymbol(k grid.TileKind) rune {
	switch k {
	case grid.TileWall:
		return '#'
	case grid.TileFurniture:
		return 'f'
	case grid.TileCounter:
		return 'c'
	case grid.TileDoor:
		return '+'
	case grid.TileInteract:
		return '?'
	case grid.TileStairs:
		return '%'
	default:
		return '.'
	}
}

// objectSymbol overlays an interactable on top of its tile symbol.
func objectSymbol(obj *floor.Interactable) rune {
	switch obj.Kind {
	case floor.KindCat:
		return 'C'
	case floor.KindToy:
		return '*'
	case floor.KindFrontDoor, floor.KindBasementDoor:
		return 'D'
	case floor.KindSofa:
		return 'S'
	case floor.KindCupboard:
		return 'U'
	default:
		return '?'
	}
}

// writeFloor writes one floor's grid with interactables and spawn overlaid.
func writeFloor(f *os.File, fl *floor.Floor) {
	fmt.Fprintf(f, "--- %s (%s) ---\n", fl.Name, fl.ID)
	fmt.Fprintf(f, "start: %d,%d facing %s\n", fl.Start.Row, fl.Start.Col, fl.StartFacing)

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			p := grid.Point{Row: row, Col: col}
			if p == fl.Start {
				fmt.Fprint(f, "@")
				continue
			}
			if obj := fl.InteractableAt(p); obj != nil {
				fmt.Fprintf(f, "%c", objectSymbol(obj))
				continue
			}
			fmt.Fprintf(f, "%c", tileSymbol(fl.Grid.At(p)))
		}
		fmt.Fprintln(f)
	}
	fmt.Fprintln(f)

	fmt.Fprintln(f, "Interactables:")
	for i := range fl.Interactables {
		obj := &fl.Interactables[i]
		fmt.Fprintf(f, "  row: %d col: %d kind: %d label: %q script: %q\n",
			obj.Pos.Row, obj.Pos.Col, obj.Kind, obj.Label, obj.Script)
	}
	fmt.Fprintln(f)

	fmt.Fprintln(f, "Stairs:")
	for _, route := range fl.Stairs {
		fmt.Fprintf(f, "  target: %s arrive: %d,%d facing %s requires_flag: %q consume_item: %q\n",
			route.Target, route.Arrive.Row, route.Arrive.Col, route.ArriveFacing,
			route.RequiresFlag, route.ConsumeItem)
	}
	fmt.Fprintln(f)
}

// DumpFloorsToFile writes every floor's layout and object tables to
// maps.txt in a human-readable format, for checking map edits without
// walking the whole house.
func DumpFloorsToFile() (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintln(f, "=== FLOOR DUMP (layouts, interactables, stair routes) ===")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "Legend: . floor  # wall  f furniture  c counter  + doorway  % stairs")
	fmt.Fprintln(f, "        @ spawn  C cat  * toy  D locked door  S sofa  U cupboard  ? object")
	fmt.Fprintln(f)

	for _, fl := range floor.All() {
		writeFloor(f, fl)
	}

	fmt.Fprintln(f, "=== END FLOOR DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// Package gameplay provides core game logic for player movement and
// interactions. A Session wires the game state, the dialogue engine
// and the saver together; rendering happens through the renderer
// package so the logic also runs headless in tests.
package gameplay

import (
	"time"

	"cathouse/pkg/engine/grid"
	"cathouse/pkg/game/floor"
	"cathouse/pkg/game/renderer"
	"cathouse/pkg/game/state"
)

// slideStep is how far a slide advances per tick.
const slideStep = 4

// Move turns the player toward dir and, if the target is walkable,
// starts a one-tile slide. Blocked steps still turn the player, so
// facing an object to interact with it never requires walking into
// it.
func (s *Session) Move(dir grid.Direction) {
	if s.dialogue.Active() || !dir.IsValid() {
		return
	}

	g := s.game
	if g.Moving {
		// Mid-slide input turns the player but starts no second slide.
		g.PlayerFacing = dir
		return
	}
	f := g.Floor()

	turned := g.PlayerFacing != dir
	g.PlayerFacing = dir

	target := g.PlayerPos.Step(dir)
	if !f.Grid.At(target).Walkable() {
		if turned {
			s.saver.Checkpoint(g)
		}
		return
	}

	if route := f.StairAt(target); route != nil {
		s.takeStairs(route)
		return
	}

	g.Moving = true
	g.MoveFrom = g.PlayerPos
	g.MoveTo = target
	g.MoveProgress = 0
	renderer.PlayCue("footstep")
}

// advanceSlide progresses an active slide by one tick. The discrete
// position commits only when the slide finishes.
func (s *Session) advanceSlide() {
	g := s.game
	if !g.Moving {
		return
	}

	g.MoveProgress += slideStep
	if g.MoveProgress < state.TileSize {
		return
	}

	g.PlayerPos = g.MoveTo
	g.Moving = false
	g.MoveProgress = 0
	s.saver.Checkpoint(g)
}

// takeStairs resolves stepping onto a stair route. An open route
// transitions immediately. A gated route either gets cleared with the
// clearing item or plays its blocked dialogue, leaving the player in
// place.
func (s *Session) takeStairs(route *floor.StairRoute) {
	g := s.game

	if route.RequiresFlag == "" || s.flagSet(route.RequiresFlag) {
		s.changeFloorTo(route.Target, route.Arrive, route.ArriveFacing)
		return
	}

	clearItem := state.Item(route.ConsumeItem)
	if route.ConsumeItem != "" && g.HasItem(clearItem) {
		g.RemoveItem(clearItem)
		s.setFlag(route.RequiresFlag)

		target, arrive, facing := route.Target, route.Arrive, route.ArriveFacing
		s.dialogue.Start(route.ClearScript, func() {
			renderer.TriggerShake(1, 300*time.Millisecond)
			renderer.ShowToast("The stairs are clear!", 3*time.Second)
			s.saver.CheckpointNow(g)
			s.changeFloorTo(target, arrive, facing)
		})
		return
	}

	s.dialogue.Start(route.BlockedScript, nil)
}

// changeFloorTo moves the player to another floor at an explicit
// landing position.
func (s *Session) changeFloorTo(id floor.ID, pos grid.Point, facing grid.Direction) {
	g := s.game
	g.CurrentFloor = id
	g.PlayerPos = pos
	g.PlayerFacing = facing
	g.Moving = false
	g.MoveProgress = 0

	renderer.StartFloorMusic(id)
	s.saver.CheckpointNow(g)
}

// changeFloor moves the player to another floor's spawn point
func (s *Session) changeFloor(id floor.ID) {
	f := floor.Get(id)
	s.changeFloorTo(id, f.Start, f.StartFacing)
}

// flagSet resolves a stair gate flag by name
func (s *Session) flagSet(name string) bool {
	switch name {
	case "laundry_cleared":
		return s.game.Flags.LaundryCleared
	default:
		return false
	}
}

// setFlag sets a stair gate flag by name
func (s *Session) setFlag(name string) {
	switch name {
	case "laundry_cleared":
		s.game.Flags.LaundryCleared = true
	}
}

// FacingTarget returns the tile position the player is looking at
func (s *Session) FacingTarget() grid.Point {
	return s.game.PlayerPos.Step(s.game.PlayerFacing)
}

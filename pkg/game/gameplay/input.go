package gameplay

import (
	"time"

	"cathouse/pkg/engine/grid"
	engineinput "cathouse/pkg/engine/input"
	"cathouse/pkg/game/renderer"
)

// HandleIntent dispatches a high-level input intent. While dialogue
// is active, interaction advances it and everything else is ignored,
// which keeps conversations modal.
func (s *Session) HandleIntent(intent engineinput.Intent) {
	if s.game == nil {
		return
	}

	if s.dialogue.Active() {
		if intent.Action == engineinput.ActionInteract {
			s.dialogue.Advance()
		}
		return
	}

	switch intent.Action {
	case engineinput.ActionMoveUp:
		s.Move(grid.Up)
	case engineinput.ActionMoveDown:
		s.Move(grid.Down)
	case engineinput.ActionMoveLeft:
		s.Move(grid.Left)
	case engineinput.ActionMoveRight:
		s.Move(grid.Right)

	case engineinput.ActionInteract:
		s.Interact()

	case engineinput.ActionHint:
		s.ShowHint()
	}
}

// ShowHint surfaces the next objective as a toast
func (s *Session) ShowHint() {
	hint := NextObjectiveHint(s.game)
	if hint == "" {
		hint = "All three cats are fed. Dinner time!"
	}
	renderer.ShowToast(hint, 4*time.Second)
}

// Tick advances time-based effects: an active slide and the dialogue
// typewriter reveal. It is called once per frame by the active
// backend.
func (s *Session) Tick() {
	if s.game != nil {
		s.advanceSlide()
	}
	if s.dialogue.Tick() {
		renderer.PlayCue("typewriter")
	}
}

package gameplay

import (
	"cathouse/pkg/game/renderer"
	"cathouse/pkg/game/state"
)

// StartNew begins a fresh playthrough in the front yard and plays the
// intro. Any previous save is overwritten at the first checkpoint.
func (s *Session) StartNew() {
	s.game = state.NewGame()

	renderer.StartFloorMusic(s.game.CurrentFloor)
	s.dialogue.Start("intro", nil)
	s.saver.CheckpointNow(s.game)
}

// ContinueFromSave restores the saved playthrough. On any load error
// the caller decides whether to fall back to a new game; the session
// is left without an active game.
func (s *Session) ContinueFromSave() error {
	g, err := s.saver.Load()
	if err != nil {
		return err
	}

	s.game = g
	renderer.StartFloorMusic(g.CurrentFloor)
	return nil
}

// HasSave reports whether a saved playthrough exists
func (s *Session) HasSave() bool {
	_, err := s.saver.Load()
	return err == nil
}

// Shutdown flushes any pending save. Call before the process exits.
func (s *Session) Shutdown() {
	if s.game != nil {
		s.saver.CheckpointNow(s.game)
	} else {
		s.saver.Flush()
	}
}

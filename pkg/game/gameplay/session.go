package gameplay

import (
	"cathouse/pkg/game/dialogue"
	"cathouse/pkg/game/save"
	"cathouse/pkg/game/state"
)

// Session ties one playthrough together: the game state, the dialogue
// engine that pauses it, and the saver that persists it.
type Session struct {
	game     *state.Game
	dialogue *dialogue.Engine
	saver    *save.Saver
}

// NewSession creates a session with no active game. Call StartNew or
// ContinueFromSave before handling input.
func NewSession(saver *save.Saver) *Session {
	return &Session{
		dialogue: dialogue.NewEngine(),
		saver:    saver,
	}
}

// Game returns the active game state, nil before a game starts
func (s *Session) Game() *state.Game {
	return s.game
}

// Dialogue returns the session's dialogue engine
func (s *Session) Dialogue() *dialogue.Engine {
	return s.dialogue
}

// Saver returns the session's saver
func (s *Session) Saver() *save.Saver {
	return s.saver
}

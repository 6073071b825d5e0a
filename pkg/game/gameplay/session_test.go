package gameplay

import (
	"testing"

	"cathouse/pkg/engine/grid"
	"cathouse/pkg/game/floor"
	"cathouse/pkg/game/renderer"
	"cathouse/pkg/game/save"
	"cathouse/pkg/game/state"
)

func TestStartNewPlaysIntroAndSaves(t *testing.T) {
	stub := &stubRenderer{}
	renderer.SetRenderer(stub)
	t.Cleanup(func() { renderer.SetRenderer(nil) })

	store := &save.MemStore{}
	s := NewSession(save.NewSaverWithDebounce(store, 0))
	s.StartNew()

	if !s.Dialogue().Active() {
		t.Error("no intro dialogue on a new game")
	}
	if s.Game().CurrentFloor != floor.Outside {
		t.Error("new game does not start outside")
	}
	if len(stub.music) == 0 || stub.music[0] != floor.Outside {
		t.Error("outside music not started")
	}

	// The fresh game is saved immediately.
	if _, err := store.Read(); err != nil {
		t.Errorf("no save written on new game: %v", err)
	}
}

func TestContinueFromSaveRestoresProgress(t *testing.T) {
	s, _, store := newTestSession(t)
	g := s.Game()
	g.Flags.FrontDoorUnlocked = true
	g.Flags.AliceFed = true
	g.AddItem(state.ItemBasementKey)
	place(s, floor.Main, grid.Point{Row: 8, Col: 9}, grid.Left)
	s.Saver().CheckpointNow(g)

	// A second session picks up where the first left off.
	resumed := NewSession(save.NewSaverWithDebounce(store, 0))
	if err := resumed.ContinueFromSave(); err != nil {
		t.Fatalf("ContinueFromSave: %v", err)
	}

	rg := resumed.Game()
	if rg.CurrentFloor != floor.Main {
		t.Errorf("resumed on %s, want main", rg.CurrentFloor)
	}
	if rg.PlayerPos != (grid.Point{Row: 8, Col: 9}) || rg.PlayerFacing != grid.Left {
		t.Error("player position not restored")
	}
	if !rg.Flags.AliceFed || !rg.Flags.FrontDoorUnlocked {
		t.Error("flags not restored")
	}
	if !rg.HasItem(state.ItemBasementKey) {
		t.Error("inventory not restored")
	}
}

func TestContinueWithoutSave(t *testing.T) {
	s := NewSession(save.NewSaverWithDebounce(&save.MemStore{}, 0))

	if err := s.ContinueFromSave(); err == nil {
		t.Error("ContinueFromSave succeeded with an empty store")
	}
	if s.Game() != nil {
		t.Error("session has a game after a failed load")
	}
	if s.HasSave() {
		t.Error("HasSave true for an empty store")
	}
}

func TestCriticalMomentsSaveImmediately(t *testing.T) {
	s, _, store := newTestSession(t)
	g := s.Game()
	g.AddItem(state.ItemPurrpops)

	// Feed Alice, then reload from the store only.
	interact(t, s, floor.Main, grid.Point{Row: 3, Col: 13}, grid.Right)
	finishDialogue(t, s)

	fresh := NewSession(save.NewSaverWithDebounce(store, 0))
	if err := fresh.ContinueFromSave(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !fresh.Game().Flags.AliceFed {
		t.Error("feeding Alice was not persisted immediately")
	}
}

func TestHintIntentShowsToast(t *testing.T) {
	s, stub, _ := newTestSession(t)

	s.ShowHint()

	if len(stub.toasts) == 0 {
		t.Fatal("no hint toast")
	}
}

func TestTickDrivesTypewriter(t *testing.T) {
	s, stub, _ := newTestSession(t)
	place(s, floor.Outside, grid.Point{Row: 8, Col: 4}, grid.Left)
	s.Interact() // mailbox

	s.Tick()

	if s.Dialogue().VisibleText() == "" {
		t.Error("tick revealed no text")
	}
	if !stub.playedCue("typewriter") {
		t.Error("no typewriter cue while revealing")
	}
}

package gameplay

import (
	"strings"
	"testing"

	"cathouse/pkg/engine/grid"
	"cathouse/pkg/game/dialogue"
	"cathouse/pkg/game/floor"
	"cathouse/pkg/game/state"
)

// interact faces the player at a position toward a direction and
// interacts, returning the current dialogue line's text for
// script assertions.
func interact(t *testing.T, s *Session, id floor.ID, p grid.Point, facing grid.Direction) string {
	t.Helper()

	place(s, id, p, facing)
	s.Interact()

	line, ok := s.Dialogue().Current()
	if !ok {
		return ""
	}
	return line.Text
}

func scriptFirstLine(t *testing.T, key string) string {
	t.Helper()
	script, ok := dialogue.Scripts[key]
	if !ok || len(script) == 0 {
		t.Fatalf("script %q missing", key)
	}
	return script[0].Text
}

func TestInteractWithNothing(t *testing.T) {
	s, stub, _ := newTestSession(t)
	place(s, floor.Outside, grid.Point{Row: 11, Col: 9}, grid.Down)

	s.Interact()

	if s.Dialogue().Active() {
		t.Error("interacting with empty grass started a dialogue")
	}
	if stub.playedCue("interact") {
		t.Error("interact cue played with nothing to interact with")
	}
}

func TestFlavorInteractable(t *testing.T) {
	s, stub, _ := newTestSession(t)

	got := interact(t, s, floor.Outside, grid.Point{Row: 9, Col: 16}, grid.Up)

	if want := scriptFirstLine(t, "bird_bath"); got != want {
		t.Errorf("bird bath dialogue = %q, want %q", got, want)
	}
	if !stub.playedCue("interact") {
		t.Error("no interact cue")
	}
}

func TestFrontDoorWrongCode(t *testing.T) {
	s, stub, _ := newTestSession(t)
	g := s.Game()

	interact(t, s, floor.Outside, grid.Point{Row: 5, Col: 9}, grid.Up)
	finishDialogue(t, s)

	if stub.promptSubmit == nil {
		t.Fatal("keypad never opened")
	}
	stub.promptSubmit("1234")

	if g.Flags.FrontDoorUnlocked {
		t.Error("wrong code unlocked the door")
	}
	if !stub.playedCue("error") {
		t.Error("no error cue on wrong code")
	}
	if g.CurrentFloor != floor.Outside {
		t.Error("wrong code moved the player inside")
	}
}

func TestFrontDoorCorrectCode(t *testing.T) {
	s, stub, _ := newTestSession(t)
	g := s.Game()

	interact(t, s, floor.Outside, grid.Point{Row: 5, Col: 9}, grid.Up)
	finishDialogue(t, s)
	stub.promptSubmit(FrontDoorCode)

	if !g.Flags.FrontDoorUnlocked {
		t.Error("correct code did not unlock the door")
	}
	if g.CurrentFloor != floor.Main {
		t.Errorf("player on %s after entering, want main", g.CurrentFloor)
	}
	if g.PlayerPos != floor.Get(floor.Main).Start {
		t.Error("player not at the main floor spawn")
	}
	if !stub.playedCue("door_unlock") {
		t.Error("no unlock cue")
	}
}

func TestFrontDoorOpenOnceUnlocked(t *testing.T) {
	s, _, _ := newTestSession(t)
	g := s.Game()
	g.Flags.FrontDoorUnlocked = true

	interact(t, s, floor.Outside, grid.Point{Row: 5, Col: 9}, grid.Up)

	if s.Dialogue().Active() {
		t.Error("unlocked front door replayed the keypad dialogue")
	}
	if g.CurrentFloor != floor.Main {
		t.Error("unlocked front door did not open")
	}
}

func TestCupboardGrantsItemOnce(t *testing.T) {
	s, stub, _ := newTestSession(t)
	g := s.Game()
	g.Flags.FrontDoorUnlocked = true

	pantry := grid.Point{Row: 3, Col: 2}
	interact(t, s, floor.Main, pantry, grid.Up)
	finishDialogue(t, s)

	if !g.HasItem(state.ItemPurrpops) {
		t.Fatal("cupboard did not grant purrpops")
	}
	if !stub.playedCue("item_pickup") {
		t.Error("no pickup cue")
	}

	// Second visit while holding the treats reads as empty.
	got := interact(t, s, floor.Main, pantry, grid.Up)
	if want := scriptFirstLine(t, "cupboard_empty"); got != want {
		t.Errorf("restocked cupboard dialogue = %q, want empty cupboard", got)
	}
	finishDialogue(t, s)
	if n := len(g.Inventory); n != 1 {
		t.Errorf("inventory size = %d after revisiting the cupboard", n)
	}
}

func TestPurrpopsCupboardEmptyAfterTreatCatsFed(t *testing.T) {
	s, _, _ := newTestSession(t)
	g := s.Game()
	g.Flags.FrontDoorUnlocked = true
	g.Flags.AliceFed = true
	g.Flags.OliveFed = true

	got := interact(t, s, floor.Main, grid.Point{Row: 3, Col: 2}, grid.Up)

	if want := scriptFirstLine(t, "cupboard_empty"); got != want {
		t.Error("purrpops cupboard still stocked after both treat cats were fed")
	}
}

func TestFeastCupboardEmptyAfterBeatriceFed(t *testing.T) {
	s, _, _ := newTestSession(t)
	g := s.Game()
	g.Flags.BeatriceFed = true

	got := interact(t, s, floor.Main, grid.Point{Row: 3, Col: 4}, grid.Up)

	if want := scriptFirstLine(t, "cupboard_empty"); got != want {
		t.Error("feast cupboard still stocked after Beatrice was fed")
	}
}

func TestAliceBeforeWithoutTreats(t *testing.T) {
	s, stub, _ := newTestSession(t)

	got := interact(t, s, floor.Main, grid.Point{Row: 3, Col: 13}, grid.Right)

	if want := scriptFirstLine(t, "alice_before"); got != want {
		t.Errorf("empty-handed Alice dialogue = %q, want first meeting", got)
	}
	if !stub.playedCue("cat_meow") {
		t.Error("no meow cue")
	}
}

func TestAliceRejectsWrongItem(t *testing.T) {
	s, _, _ := newTestSession(t)
	g := s.Game()
	g.AddItem(state.ItemFeastPlate)

	got := interact(t, s, floor.Main, grid.Point{Row: 3, Col: 13}, grid.Right)

	if want := scriptFirstLine(t, "alice_wrong_item"); got != want {
		t.Errorf("wrong item dialogue = %q", got)
	}
	if !g.HasItem(state.ItemFeastPlate) {
		t.Error("wrong item was consumed")
	}
	if g.Flags.AliceFed {
		t.Error("wrong item fed the cat")
	}
}

func TestFeedingAlice(t *testing.T) {
	s, stub, _ := newTestSession(t)
	g := s.Game()
	g.AddItem(state.ItemPurrpops)

	interact(t, s, floor.Main, grid.Point{Row: 3, Col: 13}, grid.Right)
	finishDialogue(t, s)

	if !g.Flags.AliceFed {
		t.Error("Alice not marked fed")
	}
	if g.HasItem(state.ItemPurrpops) {
		t.Error("purrpops not consumed")
	}
	if !stub.playedCue("cat_fed") {
		t.Error("no feeding cue")
	}

	foundSofaHint := false
	for _, toast := range stub.toasts {
		if strings.Contains(toast, "sofa") {
			foundSofaHint = true
		}
	}
	if !foundSofaHint {
		t.Error("Alice's sofa hint toast missing")
	}

	// Revisit plays the done script.
	got := interact(t, s, floor.Main, grid.Point{Row: 3, Col: 13}, grid.Right)
	if want := scriptFirstLine(t, "alice_done"); got != want {
		t.Errorf("fed Alice dialogue = %q, want done script", got)
	}
}

func TestFeedingOliveGrantsBasket(t *testing.T) {
	s, _, _ := newTestSession(t)
	g := s.Game()
	g.AddItem(state.ItemPurrpops)

	interact(t, s, floor.Basement, grid.Point{Row: 7, Col: 12}, grid.Up)
	finishDialogue(t, s)

	if !g.Flags.OliveFed {
		t.Error("Olive not marked fed")
	}
	if !g.HasItem(state.ItemLaundryBasket) {
		t.Error("laundry basket not granted")
	}
	if !g.Flags.HasLaundryBasket {
		t.Error("laundry basket flag not set")
	}
}

func TestFeedingBeatriceCompletesGame(t *testing.T) {
	s, stub, _ := newTestSession(t)
	g := s.Game()
	g.AddItem(state.ItemFeastPlate)

	interact(t, s, floor.Upstairs, grid.Point{Row: 3, Col: 15}, grid.Up)
	finishDialogue(t, s)

	if !g.Flags.BeatriceFed || !g.Flags.GameComplete {
		t.Error("feeding Beatrice did not complete the game")
	}
	if stub.endings != 1 {
		t.Errorf("ending shown %d times, want 1", stub.endings)
	}

	// Visiting her again replays the ending.
	s.Interact()
	if stub.endings != 2 {
		t.Error("revisiting Beatrice after completion did not replay the ending")
	}
}

func TestSofaEmptyBeforeAliceHints(t *testing.T) {
	s, _, _ := newTestSession(t)

	got := interact(t, s, floor.Main, grid.Point{Row: 8, Col: 6}, grid.Left)

	if want := scriptFirstLine(t, "sofa_blanket_empty"); got != want {
		t.Error("sofa gave up the key before Alice's hint")
	}
	if s.Game().Flags.HasBasementKey {
		t.Error("key granted before Alice was fed")
	}
}

func TestSofaGivesKeyExactlyOnce(t *testing.T) {
	s, _, _ := newTestSession(t)
	g := s.Game()
	g.Flags.AliceFed = true

	interact(t, s, floor.Main, grid.Point{Row: 8, Col: 6}, grid.Left)
	finishDialogue(t, s)

	if !g.HasItem(state.ItemBasementKey) {
		t.Fatal("sofa did not grant the basement key")
	}
	if !g.Flags.SofaSearched || !g.Flags.HasBasementKey {
		t.Error("sofa flags not set")
	}

	got := interact(t, s, floor.Main, grid.Point{Row: 8, Col: 6}, grid.Left)
	if want := scriptFirstLine(t, "sofa_blanket_empty"); got != want {
		t.Error("sofa gave the key twice")
	}
}

func TestBasementDoorLockedWithoutKey(t *testing.T) {
	s, _, _ := newTestSession(t)

	got := interact(t, s, floor.Main, grid.Point{Row: 7, Col: 17}, grid.Right)

	if want := scriptFirstLine(t, "basement_door_locked"); got != want {
		t.Errorf("locked door dialogue = %q", got)
	}
	if s.Game().CurrentFloor != floor.Main {
		t.Error("locked door let the player through")
	}
}

func TestBasementDoorUnlockConsumesKey(t *testing.T) {
	s, stub, _ := newTestSession(t)
	g := s.Game()
	g.AddItem(state.ItemBasementKey)

	interact(t, s, floor.Main, grid.Point{Row: 7, Col: 17}, grid.Right)
	finishDialogue(t, s)

	if !g.Flags.BasementUnlocked {
		t.Error("door not unlocked")
	}
	if g.HasItem(state.ItemBasementKey) {
		t.Error("key not consumed")
	}
	if g.CurrentFloor != floor.Basement {
		t.Error("player not taken to the basement")
	}
	if g.PlayerPos != floor.Get(floor.Basement).Start {
		t.Error("player not at the basement spawn")
	}
	if !stub.playedCue("door_unlock") {
		t.Error("no unlock cue")
	}

	// Once unlocked the door opens directly.
	place(s, floor.Main, grid.Point{Row: 7, Col: 17}, grid.Right)
	s.Interact()
	if s.Dialogue().Active() {
		t.Error("unlocked door replayed dialogue")
	}
	if g.CurrentFloor != floor.Basement {
		t.Error("unlocked door did not open")
	}
}

func TestToyPickupOnce(t *testing.T) {
	s, stub, _ := newTestSession(t)
	g := s.Game()

	interact(t, s, floor.Main, grid.Point{Row: 12, Col: 7}, grid.Right)
	finishDialogue(t, s)

	if g.ToyCount() != 1 {
		t.Fatalf("toy count = %d after pickup", g.ToyCount())
	}
	if len(stub.effects) == 0 {
		t.Error("no particle effect on toy pickup")
	}

	foundToast := false
	for _, toast := range stub.toasts {
		if strings.Contains(toast, "(1/3 cat toys)") {
			foundToast = true
		}
	}
	if !foundToast {
		t.Errorf("toy counter toast missing, toasts = %v", stub.toasts)
	}

	got := interact(t, s, floor.Main, grid.Point{Row: 12, Col: 7}, grid.Right)
	if want := scriptFirstLine(t, "cat_toy_found"); got != want {
		t.Error("toy collected twice")
	}
	finishDialogue(t, s)
	if g.ToyCount() != 1 {
		t.Error("toy count changed on revisit")
	}
}

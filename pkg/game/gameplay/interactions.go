package gameplay

import (
	"fmt"
	"time"

	"cathouse/pkg/game/dialogue"
	"cathouse/pkg/game/floor"
	"cathouse/pkg/game/renderer"
	"cathouse/pkg/game/state"
)

// FrontDoorCode opens the keypad on the front door. Three cats and
// one of you, then there'll be four of you.
const FrontDoorCode = "3134"

// Interact acts on whatever the player is facing. While a dialogue is
// active the same key advances it instead.
func (s *Session) Interact() {
	if s.dialogue.Active() {
		s.dialogue.Advance()
		return
	}
	if s.game.Moving {
		return
	}

	f := s.game.Floor()
	it := f.InteractableAt(s.FacingTarget())
	if it == nil {
		return
	}

	renderer.PlayCue("interact")

	switch it.Kind {
	case floor.KindFlavor:
		s.dialogue.Start(it.Script, nil)

	case floor.KindCupboard:
		s.openCupboard(it)

	case floor.KindCat:
		s.visitCat(it.Cat)

	case floor.KindSofa:
		s.searchSofa()

	case floor.KindBasementDoor:
		s.openBasementDoor()

	case floor.KindFrontDoor:
		s.openFrontDoor()

	case floor.KindToy:
		s.pickUpToy(it)
	}
}

// cupboardEmpty reports whether a stocked cupboard has nothing left
// to give. Treats run out once both treat eaters are fed; the feast
// can is gone once Beatrice has eaten. Holding the item also reads as
// empty so the player cannot stack duplicates.
func (s *Session) cupboardEmpty(item state.Item) bool {
	g := s.game
	if g.HasItem(item) {
		return true
	}

	switch item {
	case state.ItemPurrpops:
		return g.Flags.AliceFed && g.Flags.OliveFed
	case state.ItemFeastPlate:
		return g.Flags.BeatriceFed
	default:
		return false
	}
}

func (s *Session) openCupboard(it *floor.Interactable) {
	item := state.Item(it.Item)

	if s.cupboardEmpty(item) {
		s.dialogue.Start("cupboard_empty", nil)
		return
	}

	s.dialogue.Start(it.Script, func() {
		s.game.AddItem(item)
		renderer.PlayCue("item_pickup")
		renderer.ShowToast(fmt.Sprintf("Picked up %s!", item.DisplayName()), 3*time.Second)
		s.saver.Checkpoint(s.game)
	})
}

// catFood returns the item a cat demands and the one it turns up its
// nose at.
func catFood(cat floor.CatID) (wants, refuses state.Item) {
	if cat == floor.CatBeatrice {
		return state.ItemFeastPlate, state.ItemPurrpops
	}
	return state.ItemPurrpops, state.ItemFeastPlate
}

// visitCat runs the feeding quest for one cat. The reward fires from
// the dialogue callback so it lands after the conversation, not
// during it.
func (s *Session) visitCat(cat floor.CatID) {
	g := s.game
	wants, refuses := catFood(cat)

	switch {
	case g.CatFed(cat):
		if cat == floor.CatBeatrice {
			renderer.ShowEnding(g)
			return
		}
		s.dialogue.Start(dialogue.CatScript(string(cat), "done"), nil)

	case g.HasItem(wants):
		g.RemoveItem(wants)
		g.MarkCatFed(cat)
		renderer.PlayCue("cat_fed")
		s.dialogue.Start(dialogue.CatScript(string(cat), "after"), func() {
			s.catReward(cat)
		})

	case g.HasItem(refuses):
		renderer.PlayCue("cat_meow")
		s.dialogue.Start(dialogue.CatScript(string(cat), "wrong_item"), nil)

	default:
		renderer.PlayCue("cat_meow")
		s.dialogue.Start(dialogue.CatScript(string(cat), "before"), nil)
	}
}

// catReward grants what feeding each cat unlocks
func (s *Session) catReward(cat floor.CatID) {
	g := s.game

	switch cat {
	case floor.CatAlice:
		renderer.ShowToast("Alice's tip: check the sofa in the living room!", 4*time.Second)
		s.saver.CheckpointNow(g)

	case floor.CatOlive:
		g.AddItem(state.ItemLaundryBasket)
		g.Flags.HasLaundryBasket = true
		renderer.PlayCue("item_pickup")
		renderer.ShowToast("Received Laundry Basket!", 3*time.Second)
		s.saver.CheckpointNow(g)

	case floor.CatBeatrice:
		g.Flags.GameComplete = true
		s.saver.CheckpointNow(g)
		renderer.ShowEnding(g)
	}
}

// searchSofa checks under the blanket. The key only appears once
// Alice has hinted at it, and only once.
func (s *Session) searchSofa() {
	g := s.game

	if g.Flags.SofaSearched || g.Flags.HasBasementKey || !g.Flags.AliceFed {
		s.dialogue.Start("sofa_blanket_empty", nil)
		return
	}

	g.Flags.SofaSearched = true
	g.Flags.HasBasementKey = true
	s.dialogue.Start("sofa_blanket", func() {
		g.AddItem(state.ItemBasementKey)
		renderer.PlayCue("item_pickup")
		renderer.ShowToast("Found the Basement Key!", 3*time.Second)
		s.saver.CheckpointNow(g)
	})
}

func (s *Session) openBasementDoor() {
	g := s.game

	switch {
	case g.Flags.BasementUnlocked:
		s.changeFloor(floor.Basement)

	case g.HasItem(state.ItemBasementKey):
		g.RemoveItem(state.ItemBasementKey)
		g.Flags.BasementUnlocked = true
		s.dialogue.Start("basement_door_unlock", func() {
			renderer.TriggerShake(1, 200*time.Millisecond)
			renderer.PlayCue("door_unlock")
			renderer.ShowToast("Basement unlocked!", 3*time.Second)
			s.saver.CheckpointNow(g)
			s.changeFloor(floor.Basement)
		})

	default:
		s.dialogue.Start("basement_door_locked", nil)
	}
}

func (s *Session) openFrontDoor() {
	if s.game.Flags.FrontDoorUnlocked {
		s.changeFloor(floor.Main)
		return
	}

	s.dialogue.Start("front_door_locked", func() {
		renderer.PromptCode(func(code string) {
			s.SubmitCode(code)
		})
	})
}

// SubmitCode checks a keypad entry against the front door code and
// reports whether it opened the door. A wrong code costs nothing;
// the keypad allows unlimited retries.
func (s *Session) SubmitCode(code string) bool {
	if code != FrontDoorCode {
		renderer.PlayCue("error")
		renderer.ShowToast("Incorrect code. Hint: the code is in the house plaque.", 3*time.Second)
		return false
	}

	g := s.game
	g.Flags.FrontDoorUnlocked = true
	renderer.PlayCue("door_unlock")
	renderer.TriggerShake(1, 200*time.Millisecond)
	renderer.ShowToast("The front door unlocks!", 3*time.Second)
	s.saver.CheckpointNow(g)
	s.changeFloor(floor.Main)
	return true
}

// pickUpToy collects an optional cat toy. Each toy can be found once;
// finding it again just reminds the player.
func (s *Session) pickUpToy(it *floor.Interactable) {
	g := s.game

	if !g.MarkToyFound(it.ToyID) {
		s.dialogue.Start("cat_toy_found", nil)
		return
	}

	pos, label := it.Pos, it.Label
	s.dialogue.Start("cat_toy_"+it.ToyID, func() {
		renderer.PlayCue("item_pickup")
		renderer.TriggerShake(0.5, 200*time.Millisecond)
		renderer.SpawnEffect("sparkle", pos)
		renderer.ShowToast(fmt.Sprintf("Found %s! (%d/3 cat toys)", label, g.ToyCount()), 3*time.Second)
		s.saver.CheckpointNow(g)
	})
}

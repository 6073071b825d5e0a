package gameplay

import "cathouse/pkg/game/state"

// NextObjectiveHint returns a hint for the next quest step, walking
// the quest chain in order and returning the first incomplete step.
// An empty string means the game is complete and there is nothing
// left to point at.
func NextObjectiveHint(g *state.Game) string {
	fl := g.Flags

	switch {
	case fl.GameComplete:
		return ""

	case !fl.FrontDoorUnlocked:
		return "The front door needs a four-digit code. The plaque by the door might help."

	case !fl.AliceFed:
		if g.HasItem(state.ItemPurrpops) {
			return "Alice is on her cat tree in the dining room. She wants those Purrpops."
		}
		return "Check the kitchen cupboards for cat treats."

	case !fl.HasBasementKey && !fl.BasementUnlocked:
		return "Alice mentioned something hidden under the blanket on the sofa."

	case !fl.BasementUnlocked:
		if g.HasItem(state.ItemBasementKey) {
			return "The Basement Key should open the door past the dining room."
		}
		return "Look around the sofa in the living room."

	case !fl.OliveFed:
		if g.HasItem(state.ItemPurrpops) {
			return "Olive is hiding somewhere in the basement. Bring the Purrpops."
		}
		return "Grab more Purrpops from the kitchen cupboard for Olive."

	case !fl.LaundryCleared:
		if g.HasItem(state.ItemLaundryBasket) {
			return "Use the laundry basket to clear the pile on the stairs."
		}
		return "Something is blocking the stairs. Olive might know what to do."

	case !fl.BeatriceFed:
		if g.HasItem(state.ItemFeastPlate) {
			return "Beatrice is upstairs. Serve her the Shrimp & Salmon Feast."
		}
		return "Beatrice only eats the fancy wet food. Check the kitchen cupboards."

	default:
		return ""
	}
}

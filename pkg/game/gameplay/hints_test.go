package gameplay

import (
	"strings"
	"testing"

	"cathouse/pkg/game/state"
)

func TestHintChainFollowsQuestOrder(t *testing.T) {
	g := state.NewGame()

	tests := []struct {
		name  string
		setup func()
		want  string
	}{
		{
			name:  "fresh game points at the plaque",
			setup: func() {},
			want:  "plaque",
		},
		{
			name:  "inside without treats points at cupboards",
			setup: func() { g.Flags.FrontDoorUnlocked = true },
			want:  "cupboard",
		},
		{
			name:  "holding treats points at Alice",
			setup: func() { g.AddItem(state.ItemPurrpops) },
			want:  "Alice",
		},
		{
			name:  "Alice fed points at the sofa",
			setup: func() { g.Flags.AliceFed = true; g.RemoveItem(state.ItemPurrpops) },
			want:  "sofa",
		},
		{
			name:  "holding the key points at the basement door",
			setup: func() { g.Flags.HasBasementKey = true; g.AddItem(state.ItemBasementKey) },
			want:  "Basement Key",
		},
		{
			name:  "basement open without treats points back at the cupboard",
			setup: func() { g.Flags.BasementUnlocked = true; g.RemoveItem(state.ItemBasementKey) },
			want:  "Purrpops",
		},
		{
			name:  "holding treats points at Olive",
			setup: func() { g.AddItem(state.ItemPurrpops) },
			want:  "Olive",
		},
		{
			name:  "Olive fed with basket points at the stairs",
			setup: func() {
				g.Flags.OliveFed = true
				g.RemoveItem(state.ItemPurrpops)
				g.AddItem(state.ItemLaundryBasket)
				g.Flags.HasLaundryBasket = true
			},
			want: "laundry basket",
		},
		{
			name: "laundry cleared points at Beatrice's food",
			setup: func() {
				g.Flags.LaundryCleared = true
				g.RemoveItem(state.ItemLaundryBasket)
			},
			want: "cupboard",
		},
		{
			name:  "holding the feast points at Beatrice",
			setup: func() { g.AddItem(state.ItemFeastPlate) },
			want:  "Beatrice is upstairs",
		},
		{
			name: "complete game has no hint",
			setup: func() {
				g.Flags.BeatriceFed = true
				g.Flags.GameComplete = true
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			got := NextObjectiveHint(g)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hint = %q, want none", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hint = %q, want it to mention %q", got, tt.want)
			}
		})
	}
}

// Package renderer decouples game logic from presentation. The logic
// packages call the package-level functions below; whichever backend
// is registered (terminal or Ebiten window) receives them. With no
// backend registered every call is a safe no-op, which is what the
// tests rely on.
package renderer

import (
	"time"

	"cathouse/pkg/engine/grid"
	"cathouse/pkg/game/dialogue"
	"cathouse/pkg/game/floor"
	"cathouse/pkg/game/state"
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, window, speaker, etc.)
	Init()

	// Close releases the renderer's resources
	Close()

	// RenderFrame renders a complete game frame: the map, the player,
	// any active dialogue box, toasts and the status bar.
	RenderFrame(g *state.Game, d *dialogue.Engine)

	// ShowMessage displays a plain message to the user
	ShowMessage(msg string)

	// ShowToast displays a transient notification for the duration
	ShowToast(text string, d time.Duration)

	// PlayCue plays a named sound effect
	PlayCue(name string)

	// StartFloorMusic switches the background music to the floor's track
	StartFloorMusic(id floor.ID)

	// TriggerShake shakes the view, used for unlocks and pickups
	TriggerShake(intensity float64, d time.Duration)

	// SpawnEffect emits a particle burst of the given kind at a tile
	SpawnEffect(kind string, pos grid.Point)

	// PromptCode opens the numeric keypad overlay. The callback runs
	// with the four digit code once entered.
	PromptCode(onSubmit func(code string))

	// ShowEnding plays the completion screen
	ShowEnding(g *state.Game)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Close shuts the current renderer down
func Close() {
	if Current != nil {
		Current.Close()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game, d *dialogue.Engine) {
	if Current != nil {
		Current.RenderFrame(g, d)
	}
}

// ShowMessage displays a message to the user
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// ShowToast displays a transient notification
func ShowToast(text string, d time.Duration) {
	if Current != nil {
		Current.ShowToast(text, d)
	}
}

// PlayCue plays a named sound effect
func PlayCue(name string) {
	if Current != nil {
		Current.PlayCue(name)
	}
}

// StartFloorMusic switches the background music track
func StartFloorMusic(id floor.ID) {
	if Current != nil {
		Current.StartFloorMusic(id)
	}
}

// TriggerShake shakes the view
func TriggerShake(intensity float64, d time.Duration) {
	if Current != nil {
		Current.TriggerShake(intensity, d)
	}
}

// SpawnEffect emits a particle burst at a tile
func SpawnEffect(kind string, pos grid.Point) {
	if Current != nil {
		Current.SpawnEffect(kind, pos)
	}
}

// PromptCode opens the numeric keypad overlay
func PromptCode(onSubmit func(code string)) {
	if Current != nil {
		Current.PromptCode(onSubmit)
	}
}

// ShowEnding plays the completion screen
func ShowEnding(g *state.Game) {
	if Current != nil {
		Current.ShowEnding(g)
	}
}

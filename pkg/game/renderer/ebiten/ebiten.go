// Package ebiten is the windowed renderer backend. It draws the house
// as flat-color tiles, runs the keypad and dialogue overlays, and owns
// the game loop while the window is open.
package ebiten

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"cathouse/pkg/engine/grid"
	"cathouse/pkg/game/audio"
	"cathouse/pkg/game/dialogue"
	"cathouse/pkg/game/floor"
	"cathouse/pkg/game/gameplay"
	"cathouse/pkg/game/menu"
	"cathouse/pkg/game/state"
)

const (
	windowWidth  = 560
	windowHeight = 480
	tileSize     = 24

	mapX = (windowWidth - tileSize*grid.Cols) / 2
	mapY = 48
)

// mode is the top level screen the window is showing.
type mode int

const (
	modeTitle mode = iota
	modePlaying
	modeKeypad
	modeEnding
)

// App implements ebiten.Game and the renderer interface. All methods
// run on Ebiten's update goroutine, so no locking is needed.
type App struct {
	session *gameplay.Session
	sound   *audio.SoundManager

	mode  mode
	title *menu.TitleMenu

	toastText  string
	toastUntil time.Time

	shakeAmp   float64
	shakeUntil time.Time

	particles []particle

	keypadCode   string
	keypadSubmit func(code string)

	idleSince time.Time

	endingGame *state.Game
}

// idleHintAfter is how long the player can sit still before the next
// objective is surfaced unprompted.
const idleHintAfter = 45 * time.Second

// New returns the windowed renderer for the given session.
func New(session *gameplay.Session, sound *audio.SoundManager) *App {
	return &App{
		session:   session,
		sound:     sound,
		mode:      modeTitle,
		title:     menu.NewTitleMenu(session.HasSave()),
		idleSince: time.Now(),
	}
}

// Run opens the window and blocks until the player quits.
func (a *App) Run() error {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Marice's Cat House")
	return ebiten.RunGame(a)
}

// Layout returns the game's logical screen size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

// Init sets up the speaker.
func (a *App) Init() {
	if a.sound != nil {
		if err := a.sound.Initialize(); err != nil {
			a.ShowToast(fmt.Sprintf("audio disabled: %v", err), 3*time.Second)
		}
	}
}

// Close releases the speaker.
func (a *App) Close() {
	if a.sound != nil {
		a.sound.Cleanup()
	}
}

// RenderFrame is a no-op: the window redraws every frame from the
// session in Draw.
func (a *App) RenderFrame(g *state.Game, d *dialogue.Engine) {}

// ShowMessage surfaces a plain message as a toast.
func (a *App) ShowMessage(msg string) {
	a.ShowToast(msg, 3*time.Second)
}

// ShowToast displays a transient notification for the duration
func (a *App) ShowToast(text string, d time.Duration) {
	a.toastText = text
	a.toastUntil = time.Now().Add(d)
}

// PlayCue plays a named sound effect
func (a *App) PlayCue(name string) {
	if a.sound != nil {
		a.sound.PlayCue(name)
	}
}

// StartFloorMusic switches the background music to the floor's track
func (a *App) StartFloorMusic(id floor.ID) {
	if a.sound != nil {
		a.sound.StartFloorMusic(id)
	}
}

// TriggerShake shakes the map for the duration.
func (a *App) TriggerShake(intensity float64, d time.Duration) {
	a.shakeAmp = intensity
	a.shakeUntil = time.Now().Add(d)
}

// SpawnEffect emits a particle burst at the tile.
func (a *App) SpawnEffect(kind string, pos grid.Point) {
	a.spawnParticles(kind, pos)
}

// PromptCode switches to the keypad overlay. The callback fires once
// four digits are typed.
func (a *App) PromptCode(onSubmit func(code string)) {
	a.keypadCode = ""
	a.keypadSubmit = onSubmit
	a.mode = modeKeypad
}

// ShowEnding switches to the completion screen.
func (a *App) ShowEnding(g *state.Game) {
	a.endingGame = g
	a.mode = modeEnding
}

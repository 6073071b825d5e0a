package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "cathouse/pkg/engine/input"
	"cathouse/pkg/game/audio"
	"cathouse/pkg/game/menu"
)

// keyCodes maps Ebiten keys to the same raw codes the terminal
// backend produces, so both feed the shared bindings table.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyW:          "w",
	ebiten.KeyS:          "s",
	ebiten.KeyA:          "a",
	ebiten.KeyD:          "d",
	ebiten.KeyH:          "h",
	ebiten.KeyJ:          "j",
	ebiten.KeyK:          "k",
	ebiten.KeyL:          "l",
	ebiten.KeyE:          "e",
	ebiten.KeyEnter:      "enter",
	ebiten.KeySpace:      " ",
	ebiten.KeyT:          "t",
	ebiten.KeyQ:          "q",
	ebiten.KeyM:          "m",
	ebiten.KeyEscape:     "escape",
}

// digitKeys maps the number row and the numpad to keypad digits.
var digitKeys = map[ebiten.Key]string{
	ebiten.Key0: "0", ebiten.KeyNumpad0: "0",
	ebiten.Key1: "1", ebiten.KeyNumpad1: "1",
	ebiten.Key2: "2", ebiten.KeyNumpad2: "2",
	ebiten.Key3: "3", ebiten.KeyNumpad3: "3",
	ebiten.Key4: "4", ebiten.KeyNumpad4: "4",
	ebiten.Key5: "5", ebiten.KeyNumpad5: "5",
	ebiten.Key6: "6", ebiten.KeyNumpad6: "6",
	ebiten.Key7: "7", ebiten.KeyNumpad7: "7",
	ebiten.Key8: "8", ebiten.KeyNumpad8: "8",
	ebiten.Key9: "9", ebiten.KeyNumpad9: "9",
}

// pressedIntent returns the intent for the key pressed this frame, or
// ActionNone when no bound key was pressed.
func pressedIntent() engineinput.Intent {
	for key, code := range keyCodes {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		raw := engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: time.Now(),
		}
		return engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Update advances the active screen by one frame.
func (a *App) Update() error {
	a.updateParticles()

	switch a.mode {
	case modeTitle:
		return a.updateTitle()
	case modeKeypad:
		a.updateKeypad()
	case modeEnding:
		a.updateEnding()
	default:
		return a.updatePlaying()
	}
	return nil
}

func (a *App) updateTitle() error {
	switch a.title.Handle(pressedIntent()) {
	case menu.ChoiceNewGame:
		a.session.StartNew()
		a.mode = modePlaying
	case menu.ChoiceContinue:
		if err := a.session.ContinueFromSave(); err != nil {
			a.ShowToast("No saved game found.", 3*time.Second)
			return nil
		}
		a.mode = modePlaying
	case menu.ChoiceQuit:
		a.session.Shutdown()
		return ebiten.Termination
	}
	return nil
}

func (a *App) updatePlaying() error {
	a.session.Tick()

	intent := pressedIntent()
	switch intent.Action {
	case engineinput.ActionQuit:
		a.session.Shutdown()
		return ebiten.Termination
	case engineinput.ActionOpenMenu:
		// Progress is already autosaved, so the title screen is safe
		// to return to at any time.
		a.title = menu.NewTitleMenu(a.session.HasSave())
		a.mode = modeTitle
	case engineinput.ActionNone:
		a.maybeShowIdleHint()
		return nil
	default:
		a.session.HandleIntent(intent)
	}
	a.idleSince = time.Now()
	return nil
}

// maybeShowIdleHint nudges a player who has sat still too long toward
// the next objective. Conversations do not count as idling.
func (a *App) maybeShowIdleHint() {
	if a.session.Dialogue().Active() {
		a.idleSince = time.Now()
		return
	}
	if time.Since(a.idleSince) >= idleHintAfter {
		a.session.ShowHint()
		a.idleSince = time.Now()
	}
}

func (a *App) updateKeypad() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.keypadSubmit = nil
		a.mode = modePlaying
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(a.keypadCode) > 0 {
		a.keypadCode = a.keypadCode[:len(a.keypadCode)-1]
		return
	}

	for key, digit := range digitKeys {
		if inpututil.IsKeyJustPressed(key) && len(a.keypadCode) < 4 {
			a.PlayCue(audio.CueNumpadBeep)
			a.keypadCode += digit
		}
	}

	if len(a.keypadCode) == 4 && a.keypadSubmit != nil {
		submit := a.keypadSubmit
		code := a.keypadCode
		a.keypadSubmit = nil
		a.keypadCode = ""
		a.mode = modePlaying
		submit(code)
	}
}

func (a *App) updateEnding() {
	intent := pressedIntent()
	if intent.Action == engineinput.ActionInteract || intent.Action == engineinput.ActionOpenMenu {
		a.mode = modePlaying
	}
}

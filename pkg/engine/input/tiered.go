package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Gameplay
	ActionInteract // Interact with furniture, cats and doors; also advances dialogue
	ActionHint     // Show the current objective

	// Meta / UI
	ActionQuit
	ActionOpenMenu
)

// Intent is the high level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is an event emitted directly from an input device.
// Code is a device specific identifier (e.g. "arrow_up", "KeyE").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the representation after debouncing/deduplication.
// The underlying sources (terminal raw mode, Ebiten's just-pressed
// queries) already debounce for us, but the distinct type keeps the
// layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions. Multiple codes may point to the
// same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_up":    ActionMoveUp,
	"w":           ActionMoveUp,
	"k":           ActionMoveUp,
	"arrow_down":  ActionMoveDown,
	"s":           ActionMoveDown,
	"j":           ActionMoveDown,
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"h":           ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,
	"l":           ActionMoveRight,

	// Interact / advance dialogue
	"e":     ActionInteract,
	"enter": ActionInteract,
	" ":     ActionInteract,

	// Objective hint
	"?": ActionHint,
	"t": ActionHint,

	// Quit and menu
	"q":      ActionQuit,
	"escape": ActionOpenMenu,
	"m":      ActionOpenMenu,
}

// MapToIntent applies the current bindings to a debounced input and
// returns a high level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionInteract:
		return "Interact"
	case ActionHint:
		return "Hint"
	case ActionQuit:
		return "Quit"
	case ActionOpenMenu:
		return "Menu"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// Package tui renders the game into a plain terminal with ANSI colors.
// It is the default backend and needs no window system, which also
// makes it the backend of choice over SSH.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"cathouse/pkg/engine/grid"
	"cathouse/pkg/engine/input"
	"cathouse/pkg/engine/terminal"
	"cathouse/pkg/game/audio"
	"cathouse/pkg/game/dialogue"
	"cathouse/pkg/game/floor"
	"cathouse/pkg/game/state"
)

// Gotext is referenced through a variable so `go vet` does not flag
// the calls with non-constant format strings.
var dynamicGet = gotext.Get

// Map glyphs
const (
	PlayerIcon = "@"

	IconWall      = "▒"
	IconFloor     = "·"
	IconFurniture = "▪"
	IconCounter   = "▬"
	IconDoorway   = "▢"
	IconStairs    = "≡"
	IconObject    = "◆"
	IconCat       = "ω"
	IconToy       = "✶"
	IconDoor      = "▣"
)

const dialogueWidth = 44

// TUIRenderer draws the house, the player and the dialogue box as
// colored text. One frame is printed per keypress, so nothing here
// needs to be fast.
type TUIRenderer struct {
	sound *audio.SoundManager

	toastText  string
	toastUntil time.Time

	stylePlayer    color.Style
	styleWall      color.Style
	styleFloor     color.Style
	styleFurniture color.Style
	styleCounter   color.Style
	styleDoorway   color.Style
	styleStairs    color.Style
	styleObject    color.Style
	styleCat       color.Style
	styleToy       color.Style
	styleDoor      color.Style

	styleTitle    color.Style
	styleLabel    color.Style
	styleSpeaker  color.Style
	styleDialogue color.Style
	styleToast    color.Style
	styleStatus   color.Style
	styleHint     color.Style
	styleEnding   color.Style
}

// New returns a terminal renderer backed by the given sound manager.
// A nil manager is fine and simply mutes the game.
func New(sound *audio.SoundManager) *TUIRenderer {
	return &TUIRenderer{sound: sound}
}

// Init sets up the color styles and the speaker.
func (t *TUIRenderer) Init() {
	t.stylePlayer = color.Style{color.FgGreen, color.OpBold}
	t.styleWall = color.Style{color.FgGray}
	t.styleFloor = color.Style{color.FgDarkGray}
	t.styleFurniture = color.Style{color.FgBlue}
	t.styleCounter = color.Style{color.FgCyan}
	t.styleDoorway = color.Style{color.FgGreen}
	t.styleStairs = color.Style{color.FgYellow}
	t.styleObject = color.Style{color.FgMagenta}
	t.styleCat = color.Style{color.FgMagenta, color.OpBold}
	t.styleToy = color.Style{color.FgYellow, color.OpBold}
	t.styleDoor = color.Style{color.FgRed, color.OpBold}

	t.styleTitle = color.Style{color.FgWhite, color.OpBold}
	t.styleLabel = color.Style{color.FgDarkGray, color.OpItalic}
	t.styleSpeaker = color.Style{color.FgMagenta, color.OpBold}
	t.styleDialogue = color.Style{color.FgWhite}
	t.styleToast = color.Style{color.FgYellow, color.OpBold}
	t.styleStatus = color.Style{color.FgCyan}
	t.styleHint = color.Style{color.FgDarkGray}
	t.styleEnding = color.Style{color.FgMagenta, color.OpBold}

	if t.sound != nil {
		if err := t.sound.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "audio disabled: %v\n", err)
		}
	}
}

// Close releases the speaker.
func (t *TUIRenderer) Close() {
	if t.sound != nil {
		t.sound.Cleanup()
	}
}

// Clear clears the terminal
func (t *TUIRenderer) Clear() {
	cmd := exec.Command("clear")
	cmd.Stdout = os.Stdout
	cmd.Run()
}

// GetInput blocks for one keypress and maps it to an Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	raw := input.RawInput{
		Device:    input.DeviceTerminal,
		Code:      input.ReadKey(),
		Timestamp: time.Now(),
	}
	return input.MapToIntent(input.NewDebouncedInput(raw))
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game, d *dialogue.Engine) {
	t.Clear()

	f := g.Floor()
	t.printTitle(f)
	t.printMap(g, f)
	t.printStatusBar(g)

	if d != nil && d.Active() {
		// The terminal prints one frame per keypress, so the
		// typewriter reveal collapses to the full line.
		for d.Tick() {
		}
		t.printDialogue(d)
		return
	}

	t.printToast()
	margin := terminal.LeftMargin(dialogueWidth)
	t.styleHint.Println(margin + dynamicGet("arrows/wasd move · e interact · t hint · m menu"))
}

func (t *TUIRenderer) printTitle(f *floor.Floor) {
	width := grid.Cols * 2
	margin := terminal.LeftMargin(width)
	title := dynamicGet("Marice's House")
	pad := (width - len(title) - len(f.Name) - 3) / 2
	if pad < 1 {
		pad = 1
	}
	t.styleTitle.Print(margin + title)
	t.styleLabel.Println(strings.Repeat(" ", pad) + "~ " + f.Name)
}

// printMap draws the floor grid with the player and every
// interactable layered on top, centered in the terminal.
func (t *TUIRenderer) printMap(g *state.Game, f *floor.Floor) {
	margin := terminal.LeftMargin(grid.Cols * 2)

	objects := make(map[grid.Point]*floor.Interactable, len(f.Interactables))
	for i := range f.Interactables {
		obj := &f.Interactables[i]
		objects[obj.Pos] = obj
	}

	for row := 0; row < grid.Rows; row++ {
		fmt.Print(margin)
		for col := 0; col < grid.Cols; col++ {
			p := grid.Point{Row: row, Col: col}

			if p == g.PlayerPos {
				t.stylePlayer.Print(PlayerIcon + " ")
				continue
			}
			if obj, ok := objects[p]; ok {
				t.printObject(obj)
				continue
			}
			t.printTile(f.Grid.At(p))
		}
		fmt.Println()
	}
}

func (t *TUIRenderer) printTile(k grid.TileKind) {
	switch k {
	case grid.TileWall:
		t.styleWall.Print(IconWall + " ")
	case grid.TileFurniture:
		t.styleFurniture.Print(IconFurniture + " ")
	case grid.TileCounter:
		t.styleCounter.Print(IconCounter + " ")
	case grid.TileDoor:
		t.styleDoorway.Print(IconDoorway + " ")
	case grid.TileStairs:
		t.styleStairs.Print(IconStairs + " ")
	default:
		t.styleFloor.Print(IconFloor + " ")
	}
}

func (t *TUIRenderer) printObject(obj *floor.Interactable) {
	switch obj.Kind {
	case floor.KindCat:
		t.styleCat.Print(IconCat + " ")
	case floor.KindToy:
		t.styleToy.Print(IconToy + " ")
	case floor.KindFrontDoor, floor.KindBasementDoor:
		t.styleDoor.Print(IconDoor + " ")
	default:
		t.styleObject.Print(IconObject + " ")
	}
}

// printStatusBar shows the inventory and toy tally under the map.
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	width := grid.Cols * 2
	margin := terminal.LeftMargin(width)

	t.styleHint.Println(margin + strings.Repeat("─", width))

	items := make([]string, 0, len(g.Inventory))
	for _, item := range g.Inventory {
		items = append(items, item.DisplayName())
	}
	carrying := dynamicGet("nothing")
	if len(items) > 0 {
		carrying = strings.Join(items, ", ")
	}

	t.styleStatus.Println(margin + dynamicGet("Carrying: ") + carrying)
	t.styleStatus.Println(margin + fmt.Sprintf(dynamicGet("Cat toys: %d/3"), g.ToyCount()))
}

// printDialogue draws the speaker and the current line in a box.
func (t *TUIRenderer) printDialogue(d *dialogue.Engine) {
	line, ok := d.Current()
	if !ok {
		return
	}
	margin := terminal.LeftMargin(dialogueWidth + 2)

	current, total := d.Progress()
	header := line.Speaker
	counter := fmt.Sprintf("%d/%d", current, total)
	gap := dialogueWidth - len(header) - len(counter)
	if gap < 1 {
		gap = 1
	}

	t.styleHint.Println(margin + "┌" + strings.Repeat("─", dialogueWidth) + "┐")
	fmt.Print(margin + "│")
	t.styleSpeaker.Print(header)
	t.styleHint.Print(strings.Repeat(" ", gap) + counter)
	fmt.Println("│")

	for _, row := range wrapText(d.VisibleText(), dialogueWidth-2) {
		fmt.Print(margin + "│ ")
		t.styleDialogue.Print(row)
		fmt.Println(strings.Repeat(" ", dialogueWidth-2-len([]rune(row))) + " │")
	}

	t.styleHint.Println(margin + "└" + strings.Repeat("─", dialogueWidth) + "┘")
	t.styleHint.Println(margin + " " + dynamicGet("e / enter to continue"))
}

func (t *TUIRenderer) printToast() {
	if t.toastText == "" || time.Now().After(t.toastUntil) {
		return
	}
	margin := terminal.LeftMargin(len([]rune(t.toastText)))
	t.styleToast.Println(margin + t.toastText)
}

// ShowMessage displays a plain message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// ShowToast displays a transient notification for the duration
func (t *TUIRenderer) ShowToast(text string, d time.Duration) {
	t.toastText = text
	t.toastUntil = time.Now().Add(d)
}

// PlayCue plays a named sound effect
func (t *TUIRenderer) PlayCue(name string) {
	if t.sound != nil {
		t.sound.PlayCue(name)
	}
}

// StartFloorMusic switches the background music to the floor's track
func (t *TUIRenderer) StartFloorMusic(id floor.ID) {
	if t.sound != nil {
		t.sound.StartFloorMusic(id)
	}
}

// TriggerShake is a no-op: the terminal has no animation. The window
// backend implements it.
func (t *TUIRenderer) TriggerShake(intensity float64, d time.Duration) {}

// SpawnEffect is a no-op in the terminal backend.
func (t *TUIRenderer) SpawnEffect(kind string, pos grid.Point) {}

// PromptCode runs the keypad loop: digits accumulate, backspace
// deletes, escape cancels. Four digits submit automatically.
func (t *TUIRenderer) PromptCode(onSubmit func(code string)) {
	code := ""
	for {
		t.Clear()
		margin := terminal.LeftMargin(dialogueWidth)
		t.styleTitle.Println(margin + dynamicGet("A keypad is set into the door frame."))
		fmt.Println()
		display := code + strings.Repeat("_", 4-len(code))
		t.styleToast.Println(margin + "  [ " + strings.Join(strings.Split(display, ""), " ") + " ]")
		fmt.Println()
		t.styleHint.Println(margin + dynamicGet("0-9 type · backspace delete · esc leave"))

		key := input.ReadKey()
		switch {
		case key == "escape":
			return
		case key == "backspace" && len(code) > 0:
			code = code[:len(code)-1]
		case len(key) == 1 && key >= "0" && key <= "9":
			t.PlayCue(audio.CueNumpadBeep)
			code += key
		}

		if len(code) == 4 {
			onSubmit(code)
			return
		}
	}
}

// ShowEnding plays the completion screen
func (t *TUIRenderer) ShowEnding(g *state.Game) {
	t.Clear()
	width := 40
	margin := terminal.LeftMargin(width)

	fmt.Println()
	t.styleEnding.Println(margin + "        /\\_/\\   /\\_/\\   /\\_/\\")
	t.styleEnding.Println(margin + "       ( ^.^ ) ( -.- ) ( o.o )")
	t.styleEnding.Println(margin + "        Alice   Olive  Beatrice")
	fmt.Println()
	t.styleTitle.Println(margin + dynamicGet("All three cats are fed and purring."))
	t.styleTitle.Println(margin + dynamicGet("Marice's house is at peace."))
	fmt.Println()
	t.styleStatus.Println(margin + fmt.Sprintf(dynamicGet("Cat toys found: %d/3"), g.ToyCount()))
	if g.ToyCount() == 3 {
		t.styleToast.Println(margin + dynamicGet("A perfect toy collection!"))
	}
	fmt.Println()
	t.styleHint.Println(margin + dynamicGet("press any key"))
	input.ReadKey()
}

// wrapText splits s into rows no wider than width, breaking on spaces.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var rows []string
	row := words[0]
	for _, word := range words[1:] {
		if len([]rune(row))+1+len([]rune(word)) > width {
			rows = append(rows, row)
			row = word
			continue
		}
		row += " " + word
	}
	return append(rows, row)
}

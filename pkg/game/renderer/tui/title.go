package tui

import (
	"fmt"

	"cathouse/pkg/engine/terminal"
	"cathouse/pkg/game/menu"
)

// ShowTitleMenu draws the New Game / Continue / Quit screen.
func (t *TUIRenderer) ShowTitleMenu(m *menu.TitleMenu) {
	t.Clear()
	width := 38
	margin := terminal.LeftMargin(width)

	fmt.Println()
	t.styleEnding.Println(margin + "  /\\_/\\")
	t.styleEnding.Println(margin + " ( o.o )   M A R I C E ' S")
	t.styleEnding.Println(margin + "  > ^ <    C A T   H O U S E")
	fmt.Println()
	t.styleHint.Println(margin + "   three hungry cats await")
	fmt.Println()

	for i, item := range m.Items() {
		cursor := "   "
		if i == m.Selected() {
			cursor = " > "
		}
		label := item.Label
		if !item.Selectable {
			label += "  (no save)"
		}

		switch {
		case i == m.Selected():
			t.styleToast.Println(margin + cursor + label)
		case !item.Selectable:
			t.styleHint.Println(margin + cursor + label)
		default:
			t.styleDialogue.Println(margin + cursor + label)
		}
	}

	fmt.Println()
	t.printToast()
	t.styleHint.Println(margin + dynamicGet("arrows move · e select · q quit"))
}

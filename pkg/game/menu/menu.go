// Package menu holds the title menu model. It only tracks items and
// the selection; each renderer backend draws it in its own way and
// feeds intents back in.
package menu

import (
	engineinput "cathouse/pkg/engine/input"
)

// Choice identifies what a menu item does when activated.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceNewGame
	ChoiceContinue
	ChoiceQuit
)

// Item is a single entry in the title menu.
type Item struct {
	Label      string
	Choice     Choice
	Selectable bool
}

// TitleMenu is the New Game / Continue / Quit screen.
type TitleMenu struct {
	items    []Item
	selected int
}

// NewTitleMenu builds the title menu. Continue is only offered when a
// save exists.
func NewTitleMenu(hasSave bool) *TitleMenu {
	items := []Item{
		{Label: "New Game", Choice: ChoiceNewGame, Selectable: true},
		{Label: "Continue", Choice: ChoiceContinue, Selectable: hasSave},
		{Label: "Quit", Choice: ChoiceQuit, Selectable: true},
	}
	m := &TitleMenu{items: items}
	m.selected = m.nextSelectable(-1, 1)
	return m
}

// Items returns the menu entries for drawing.
func (m *TitleMenu) Items() []Item {
	return m.items
}

// Selected returns the index of the highlighted entry.
func (m *TitleMenu) Selected() int {
	return m.selected
}

// nextSelectable walks from the given index in steps of dir and
// returns the first selectable index, wrapping around.
func (m *TitleMenu) nextSelectable(from, dir int) int {
	i := from
	for range m.items {
		i += dir
		if i < 0 {
			i = len(m.items) - 1
		}
		if i >= len(m.items) {
			i = 0
		}
		if m.items[i].Selectable {
			return i
		}
	}
	return 0
}

// Handle applies one intent to the menu. It returns the activated
// choice, or ChoiceNone when the intent only moved the selection.
func (m *TitleMenu) Handle(intent engineinput.Intent) Choice {
	switch intent.Action {
	case engineinput.ActionMoveUp:
		m.selected = m.nextSelectable(m.selected, -1)
	case engineinput.ActionMoveDown:
		m.selected = m.nextSelectable(m.selected, 1)
	case engineinput.ActionInteract:
		return m.items[m.selected].Choice
	case engineinput.ActionQuit:
		return ChoiceQuit
	}
	return ChoiceNone
}

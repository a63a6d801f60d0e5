package ui

import "github.com/gdamore/tcell/v2"

// Action is a high-level input action derived from a key event
type Action int

const (
	ActionNone Action = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
	ActionPause
	ActionStart
	ActionQuit
)

// KeyToAction classifies a key event. W/S drive the left paddle and the
// arrow keys the right one; space pauses, enter starts, q/Esc/Ctrl-C quit.
func KeyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionRightUp
	case tcell.KeyDown:
		return ActionRightDown
	case tcell.KeyEnter:
		return ActionStart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return ActionLeftUp
		case 's', 'S':
			return ActionLeftDown
		case ' ':
			return ActionPause
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

package term

import (
	"github.com/gdamore/tcell/v2"

	"hanoi/internal/game"
)

// ActionForEvent maps a tcell key event to a game action.
func ActionForEvent(ev *tcell.EventKey) game.Action {
	if ev == nil {
		return game.ActionNone
	}
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.ActionLeft
	case tcell.KeyRight:
		return game.ActionRight
	case tcell.KeyUp:
		return game.ActionRaise
	case tcell.KeyDown:
		return game.ActionLower
	case tcell.KeyCtrlC:
		return game.ActionQuit
	case tcell.KeyRune:
		return actionForRune(ev.Rune())
	}
	return game.ActionNone
}

func actionForRune(r rune) game.Action {
	switch r {
	case 'h':
		return game.ActionLeft
	case 'l':
		return game.ActionRight
	case 'k':
		return game.ActionRaise
	case 'j':
		return game.ActionLower
	case 'r', 'R':
		return game.ActionReset
	case 'q', 'Q':
		return game.ActionQuit
	default:
		return game.ActionNone
	}
}

package ui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"hanoi/internal/game"
)

type gameKeyMap struct {
	Left  key.Binding
	Right key.Binding
	Raise key.Binding
	Lower key.Binding
	Reset key.Binding
	Help  key.Binding
	Close key.Binding
	Quit  key.Binding
}

func defaultKeyMap() gameKeyMap {
	return gameKeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Raise: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "raise")),
		Lower: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "lower")),
		Reset: key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "reset")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close: key.NewBinding(key.WithKeys("?", "esc"), key.WithHelp("esc", "close help")),
		Quit:  key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k gameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Raise, k.Lower, k.Reset, k.Quit}
}

func (k gameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.Raise, k.Lower}, {k.Reset, k.Help, k.Close, k.Quit}}
}

// actionFor maps a key press to a game action; unknown keys map to ActionNone.
func (k gameKeyMap) actionFor(msg tea.KeyPressMsg) game.Action {
	switch {
	case key.Matches(msg, k.Left):
		return game.ActionLeft
	case key.Matches(msg, k.Right):
		return game.ActionRight
	case key.Matches(msg, k.Raise):
		return game.ActionRaise
	case key.Matches(msg, k.Lower):
		return game.ActionLower
	case key.Matches(msg, k.Reset):
		return game.ActionReset
	case key.Matches(msg, k.Quit):
		return game.ActionQuit
	default:
		return game.ActionNone
	}
}

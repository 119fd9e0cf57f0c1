package ui

import (
	"charm.land/lipgloss/v2"

	"hanoi/internal/layout"
	"hanoi/internal/theme"
)

type Theme struct {
	Even      lipgloss.Style
	Odd       lipgloss.Style
	Neutral   lipgloss.Style
	Status    lipgloss.Style
	HelpTitle lipgloss.Style
	Muted     lipgloss.Style
}

func ThemeForVariant(variant string) Theme {
	p := theme.ForVariant(variant)
	return Theme{
		Even: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Even)).
			Bold(true),
		Odd: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Odd)).
			Bold(true),
		Neutral: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Neutral)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Neutral)),
		HelpTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Background(lipgloss.Color(p.Panel)).
			Bold(true).
			Padding(0, 1),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
	}
}

func (t Theme) ForClass(c layout.Class) lipgloss.Style {
	switch c {
	case layout.ClassEven:
		return t.Even
	case layout.ClassOdd:
		return t.Odd
	default:
		return t.Neutral
	}
}

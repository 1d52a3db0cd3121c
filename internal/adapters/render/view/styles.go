package view

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	name     lipgloss.Style
	detail   lipgloss.Style
	faint    lipgloss.Style
	badge    lipgloss.Style
	leader   lipgloss.Style
	unlocked lipgloss.Style
	locked   lipgloss.Style
	link     lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
}

// Neutral colors adapt to the background; set it with lipgloss.SetHasDarkBackground.
func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "241"}),
		name:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"}),
		faint:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "245"}),
		badge:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "31", Dark: "159"}),
		leader:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		unlocked: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		locked:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		link:     lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("39")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}

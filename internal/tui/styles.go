package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	tabActive, tabInactive, tabsRow lipgloss.Style
	title, subtle, body             lipgloss.Style
	listItem, listSel               lipgloss.Style
	badge, badgeActive              lipgloss.Style
	panel                           lipgloss.Style
	statusBar, statusErr, hint      lipgloss.Style
}

func newStyles() styles {
	base := lipgloss.NewStyle()
	accent := lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#B69CFF"}

	return styles{
		tabActive:   base.Bold(true).Padding(0, 1).Foreground(accent).Underline(true),
		tabInactive: base.Padding(0, 1).Faint(true),
		tabsRow:     base.MarginBottom(1),
		title:       base.Bold(true).Foreground(accent),
		subtle:      base.Faint(true),
		body:        base.Width(80),
		listItem:    base.PaddingLeft(2),
		listSel:     base.PaddingLeft(1).Bold(true).Foreground(accent),
		badge:       base.Padding(0, 1).Faint(true),
		badgeActive: base.Padding(0, 1).Bold(true).Reverse(true),
		panel:       base.Border(lipgloss.RoundedBorder()).Padding(0, 1),
		statusBar:   base.MarginTop(1),
		statusErr:   base.MarginTop(1).Foreground(lipgloss.Color("9")),
		hint:        base.Faint(true),
	}
}

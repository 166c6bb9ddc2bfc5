package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/shreyasren/popos-boot-health-check/model"
)

var (
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")
)

type styles struct {
	title    lipgloss.Style
	category lipgloss.Style
	ok       lipgloss.Style
	warn     lipgloss.Style
	crit     lipgloss.Style
	dim      lipgloss.Style
	value    lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			title: plain, category: plain, ok: plain,
			warn: plain, crit: plain, dim: plain, value: plain,
		}
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
		category: lipgloss.NewStyle().Bold(true).Foreground(colorWhite),
		ok:       lipgloss.NewStyle().Foreground(colorGreen),
		warn:     lipgloss.NewStyle().Bold(true).Foreground(colorYellow),
		crit:     lipgloss.NewStyle().Bold(true).Foreground(colorRed),
		dim:      lipgloss.NewStyle().Foreground(colorGray),
		value:    lipgloss.NewStyle().Foreground(colorWhite),
	}
}

func (s styles) icon(status model.CheckStatus) string {
	switch status {
	case model.CheckOK:
		return s.ok.Render("✓")
	case model.CheckWarn:
		return s.warn.Render("⚠")
	case model.CheckCrit:
		return s.crit.Render("✗")
	}
	return s.dim.Render("·")
}

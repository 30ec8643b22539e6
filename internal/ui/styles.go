package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): primary text and values
// - Accent (soft purple #A78BFA): headers, attribute names
// - Muted (gray): counts, hints, absent values

var (
	// Accent style for attribute names and highlights.
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))

	// Muted style for secondary info and hints.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis.
	Bold = lipgloss.NewStyle().Bold(true)
)

// ConfigureTheme overrides the accent color. Supported values are ANSI
// codes ("0" to "255") or hex colors ("#RRGGBB"); empty keeps the default.
func ConfigureTheme(accent string) {
	if accent == "" {
		return
	}
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
}

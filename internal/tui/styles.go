// Package tui renders footprint reports for the terminal and hosts the
// interactive what-if editor.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader    = lipgloss.Color("86")
	ColorBorder    = lipgloss.Color("62")
	ColorLabel     = lipgloss.Color("250")
	ColorValue     = lipgloss.Color("255")
	ColorHighlight = lipgloss.Color("212")
	ColorMuted     = lipgloss.Color("243")
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorCritical  = lipgloss.Color("196")
	ColorSpinner   = lipgloss.Color("205")
)

// Direction icons for deltas.
const (
	IconArrowUp    = "↑"
	IconArrowDown  = "↓"
	IconArrowRight = "→"
)

// borderPadding accounts for the left and right box border.
const borderPadding = 2

// Shared styles.
//
//nolint:gochecknoglobals // Immutable lipgloss styles shared by all views.
var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle   = lipgloss.NewStyle().Italic(true).Foreground(ColorMuted)

	AboveStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)
	BelowStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorOK)
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCritical)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorBorder)
	TableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorValue).
				Background(ColorBorder)
)

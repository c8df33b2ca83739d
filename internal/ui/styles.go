package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#c8963e") // amber
	ColorSecondary  = lipgloss.Color("#6f8f72") // moss
	ColorBackground = lipgloss.Color("#1b1712") // dark
	ColorText       = lipgloss.Color("#e4ddd0") // main text
	ColorMuted      = lipgloss.Color("#9a9184") // muted text
	ColorSuccess    = lipgloss.Color("#7fae6a") // green
	ColorError      = lipgloss.Color("#e06c75") // red
	ColorWarning    = lipgloss.Color("#d9a441") // warning
	ColorBorder     = lipgloss.Color("#3a3226") // border
)

// --- Reusable Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	MenuKeyStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Underline(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

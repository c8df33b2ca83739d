package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
   ___         __
  / _ | ____  / /__ __ _  ___ _ ____
 / __ |/ __/ /  '_//  ' \/ _ '// __/
/_/ |_/_/   /_/\_\/_/_/_/\_, //_/
                        /___/       `

const bannerSubtitle = "Game Server & Mod Manager"

// RenderBanner returns the styled ASCII banner with its subtitle.
func RenderBanner() string {
	lines := splitLines(strings.TrimPrefix(bannerArt, "\n"))

	blockWidth := lipgloss.Width(bannerSubtitle)
	var rendered strings.Builder
	for _, line := range lines {
		blockWidth = max(blockWidth, lipgloss.Width(line))
		rendered.WriteString(BannerStyle.Render(line) + "\n")
	}

	subtitle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(bannerSubtitle)
	underline := lipgloss.NewStyle().
		Foreground(ColorBorder).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(strings.Repeat("─", lipgloss.Width(bannerSubtitle)))

	return "\n" + rendered.String() + subtitle + "\n" + underline + "\n"
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

package components

import "github.com/charmbracelet/lipgloss"

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2).
			Width(48)

	dialogFieldStyle = lipgloss.NewStyle().
				Foreground(colorLabel)

	dialogErrStyle = lipgloss.NewStyle().
			Foreground(colorErrHead)
)

// InputDialog renders an input prompt showing buffer with a block cursor.
// A non-empty errText is shown under the input.
func InputDialog(title, buffer, hint, errText string) string {
	header := boxHeaderStyle.Render(title)
	field := dialogFieldStyle.Render("> " + SanitizeText(buffer) + "█")

	body := header + "\n\n" + field
	if errText != "" {
		body += "\n\n" + dialogErrStyle.Render(SanitizeOneLine(errText))
	}
	if hint != "" {
		body += "\n\n" + boxMutedStyle.Render(hint)
	}
	return dialogStyle.Render(body)
}

package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// --- Palette ---

const (
	colorPrimary = lipgloss.Color("#c8963e") // amber
	colorBorder  = lipgloss.Color("#3a3226")
	colorLabel   = lipgloss.Color("#6f8f72")
	colorText    = lipgloss.Color("#e4ddd0")
	colorMuted   = lipgloss.Color("#9a9184")
	colorRowBg   = lipgloss.Color("#2a241c")
	colorErrBdr  = lipgloss.Color("#7a2f3a")
	colorErrHead = lipgloss.Color("#e06c75")
	colorErrBody = lipgloss.Color("#d6b5b5")
)

var (
	boxBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	boxBorderActive = boxBorder.BorderForeground(colorPrimary)

	boxHeaderStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	boxMutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	boxValueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	boxLabelStyle = lipgloss.NewStyle().
			Foreground(colorLabel).
			Bold(true)

	boxActiveRowStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorRowBg).
				Bold(true)

	errorBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorErrBdr).
			Padding(1, 2)

	errorHeaderStyle = lipgloss.NewStyle().
				Foreground(colorErrHead).
				Bold(true)

	errorBodyStyle = lipgloss.NewStyle().
			Foreground(colorErrBody)
)

// boxWidth is ~70% of the terminal, kept within [40,80].
func boxWidth(width int) int {
	if width <= 0 {
		return 0
	}
	return min(max(width*70/100, 40), 80)
}

func safeBoxWidth(width int) int {
	w := boxWidth(width)
	if width > 0 && w > width {
		return width
	}
	return w
}

// Box renders content inside a bordered box.
func Box(content string, width int) string {
	return boxBorder.Width(safeBoxWidth(width)).Render(content)
}

// BoxContentWidth returns the inner width left after border (2) and padding (4).
func BoxContentWidth(width int) int {
	return max(safeBoxWidth(width)-6, 0)
}

// ClampTextWidth flattens text to one line and truncates it to width.
func ClampTextWidth(text string, width int) string {
	cleaned := SanitizeOneLine(text)
	if width <= 0 || lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	return truncateRunes(cleaned, width)
}

// ErrorBox renders a red bordered box for errors.
func ErrorBox(title, message string, width int) string {
	header := ""
	if title != "" {
		header = errorHeaderStyle.Render(title) + "\n\n"
	}
	return errorBorder.Width(safeBoxWidth(width)).Render(header + errorBodyStyle.Render(message))
}

// TitledBox renders a box with its title set into the top border.
func TitledBox(title, content string, width int) string {
	return titledBox(title, content, width, boxBorder, colorBorder)
}

// ActiveTitledBox is TitledBox with the highlighted border.
func ActiveTitledBox(title, content string, width int) string {
	return titledBox(title, content, width, boxBorderActive, colorPrimary)
}

func titledBox(title, content string, width int, style lipgloss.Style, borderColor lipgloss.Color) string {
	boxed := style.Width(safeBoxWidth(width)).Render(content)
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	middle := lineWidth - 2
	label := truncateRunes(fmt.Sprintf(" [ %s ] ", title), middle)
	left := max((middle-lipgloss.Width(label))/2, 0)
	right := max(middle-lipgloss.Width(label)-left, 0)

	bs := lipgloss.NewStyle().Foreground(borderColor)
	lines[0] = bs.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		boxHeaderStyle.Render(label) +
		bs.Render(strings.Repeat(border.Top, right)+border.TopRight)
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// TableRow is a single row in a key-value table.
type TableRow struct {
	Label string
	Value string
}

// Table renders aligned label/value rows inside a titled box.
func Table(title string, rows []TableRow, width int) string {
	return TableWithActiveRow(title, rows, width, -1)
}

// TableWithActiveRow is Table with one row highlighted and marked by "> ".
// Pass -1 to disable.
func TableWithActiveRow(title string, rows []TableRow, width int, active int) string {
	if len(rows) == 0 {
		return ""
	}

	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(SanitizeOneLine(r.Label)))
	}
	labelWidth = min(labelWidth, 24)

	contentWidth := BoxContentWidth(width)
	if contentWidth <= 0 {
		contentWidth = labelWidth + 40
	}
	valueWidth := max(contentWidth-labelWidth-4, 4)

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		marker := "  "
		if i == active {
			marker = "> "
		}
		label := padRight(ClampTextWidth(r.Label, labelWidth), labelWidth)
		value := ClampTextWidth(r.Value, valueWidth)
		if i == active {
			lines = append(lines, boxActiveRowStyle.Render(marker+label+"  "+value))
			continue
		}
		lines = append(lines, marker+boxLabelStyle.Render(label)+"  "+boxValueStyle.Render(value))
	}
	return TitledBox(title, strings.Join(lines, "\n"), width)
}

// Indent adds left padding to every line of a multi-line string.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

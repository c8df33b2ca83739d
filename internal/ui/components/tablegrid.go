package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a single column for TableGrid.
//
// Width is the visual width of the cell content, excluding separators.
// The last column absorbs any slack so the grid spans the full table width.
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

const gridLeftOffset = 2

var gridLineStyle = lipgloss.NewStyle().
	Foreground(colorBorder)

var gridActiveSepStyle = lipgloss.NewStyle().
	Foreground(colorBorder).
	Background(colorRowBg)

// TableGrid renders a header, a rule and one line per row.
func TableGrid(columns []TableColumn, rows [][]string, tableWidth int) string {
	return TableGridWithActiveRow(columns, rows, tableWidth, -1)
}

// TableGridWithActiveRow is like TableGrid but highlights rows[activeRow].
// Pass -1 to disable highlighting.
func TableGridWithActiveRow(columns []TableColumn, rows [][]string, tableWidth int, activeRow int) string {
	if tableWidth <= 0 {
		return ""
	}
	if len(columns) == 0 {
		return padRight("", tableWidth)
	}

	border := lipgloss.RoundedBorder()
	cols := fitGridColumns(columns, tableWidth)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}

	out := make([]string, 0, len(rows)+2)
	out = append(out, renderGridRow(cols, headers, border.Left, tableWidth, rowHeader))
	out = append(out, renderGridRule(cols, border.Middle, border.Top, tableWidth))
	for i, row := range rows {
		kind := rowPlain
		if i == activeRow {
			kind = rowActive
		}
		out = append(out, renderGridRow(cols, row, border.Left, tableWidth, kind))
	}
	return strings.Join(out, "\n")
}

type rowKind int

const (
	rowPlain rowKind = iota
	rowHeader
	rowActive
)

func fitGridColumns(columns []TableColumn, tableWidth int) []TableColumn {
	fitted := make([]TableColumn, len(columns))
	copy(fitted, columns)

	available := max(tableWidth-gridLeftOffset, len(fitted))
	used := len(fitted) - 1 // separators
	for i := range fitted {
		fitted[i].Width = max(fitted[i].Width, 1)
		used += fitted[i].Width
	}
	last := &fitted[len(fitted)-1]
	last.Width = max(last.Width+available-used, 1)
	return fitted
}

func renderGridRow(columns []TableColumn, cells []string, sep string, tableWidth int, kind rowKind) string {
	sepStyle := gridLineStyle
	var cellStyle lipgloss.Style
	switch kind {
	case rowHeader:
		cellStyle = boxLabelStyle
	case rowActive:
		sepStyle = gridActiveSepStyle
		cellStyle = boxActiveRowStyle
	default:
		cellStyle = boxValueStyle
	}
	sepStyled := sepStyle.Inline(true).Render(sep)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gridLeftOffset))
	for i, col := range columns {
		if i > 0 {
			b.WriteString(sepStyled)
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		b.WriteString(cellStyle.Inline(true).Render(renderGridCell(text, col.Width, col.Align)))
	}
	return padRight(b.String(), tableWidth)
}

func renderGridRule(columns []TableColumn, cross, horiz string, tableWidth int) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = strings.Repeat(horiz, max(col.Width, 1))
	}
	line := strings.Repeat(" ", gridLeftOffset) + strings.Join(parts, cross)
	return gridLineStyle.Inline(true).Render(padRight(line, tableWidth))
}

func renderGridCell(text string, width int, align lipgloss.Position) string {
	if width <= 0 {
		return ""
	}
	clamped := ClampTextWidth(text, width)
	pad := width - lipgloss.Width(clamped)
	if pad <= 0 {
		return truncateRunes(clamped, width)
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + clamped
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + clamped + strings.Repeat(" ", pad-left)
	default:
		return clamped + strings.Repeat(" ", pad)
	}
}

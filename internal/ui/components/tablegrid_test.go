package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTableGridSpansWidth(t *testing.T) {
	cols := []TableColumn{{Header: "ID", Width: 4}, {Header: "Name", Width: 10}}
	out := TableGrid(cols, [][]string{{"1", "alpha"}, {"2", "beta"}}, 40)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
	clean := SanitizeText(out)
	assert.Contains(t, clean, "ID")
	assert.Contains(t, clean, "alpha")
}

func TestTableGridTruncatesCells(t *testing.T) {
	cols := []TableColumn{{Header: "Name", Width: 4}, {Header: "X", Width: 1}}
	out := SanitizeText(TableGrid(cols, [][]string{{"verylongname", "x"}}, 12))
	assert.Contains(t, out, "very")
	assert.NotContains(t, out, "verylong")
}

func TestRenderGridCellAlign(t *testing.T) {
	assert.Equal(t, "  ab", renderGridCell("ab", 4, lipgloss.Right))
	assert.Equal(t, " ab ", renderGridCell("ab", 4, lipgloss.Center))
	assert.Equal(t, "ab  ", renderGridCell("ab", 4, lipgloss.Left))
	assert.Equal(t, "", TableGrid(nil, nil, 0))
}

// Package table renders rows of data as a terminal table with lipgloss.
package table

import (
	"fmt"
	"strings"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	ui "github.com/mutablelogic/go-llm-toolcall/pkg/ui"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is implemented by anything which can be rendered as a table
type TableData interface {
	// Header returns the column labels
	Header() []string

	// Len returns the number of rows
	Len() int

	// Row returns the cells for row i, or nil to skip the row
	Row(i int) []any
}

// Bold renders a cell value highlighted
type Bold struct{ Value any }

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cellStyle   = lipgloss.NewStyle()
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render returns the table for terminal output. When stdout is a terminal
// narrower than the table, columns are wrapped to fit.
func Render(data TableData) string {
	return RenderWidth(data, ui.Width())
}

// RenderWidth returns the table wrapped to at most width columns, or at its
// natural width when width is zero
func RenderWidth(data TableData, width int) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = FormatCell(v)
		}
		t.Row(cells...)
	}

	result := t.Render()
	if width > 0 && widest(result) > width {
		t.Width(width)
		result = t.Render()
	}
	return result
}

// Truncate shortens s to max runes on a single line
func Truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// FormatCell returns the display text for a cell, with "-" for empty values
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case Bold:
		return boldStyle.Render(FormatCell(val.Value))
	case string:
		if val == "" {
			return "-"
		}
		return val
	case []string:
		if len(val) == 0 {
			return "-"
		}
		return strings.Join(val, ", ")
	default:
		if s := fmt.Sprint(val); s != "" {
			return s
		}
		return "-"
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func widest(s string) int {
	var result int
	for _, line := range strings.Split(s, "\n") {
		if n := lipgloss.Width(line); n > result {
			result = n
		}
	}
	return result
}

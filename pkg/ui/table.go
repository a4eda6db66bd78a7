package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mdslide/mdslide/internal/core/domain"
)

// TableColumn represents a column in the table
type TableColumn struct {
	Header string
	Width  int    // Minimum width
	Align  string // "left", "right", "center"
}

// Table represents a data table
type Table struct {
	Columns []TableColumn
	Rows    [][]string
}

// NewTable creates a new table with specified columns
func NewTable(columns []TableColumn) *Table {
	return &Table{
		Columns: columns,
		Rows:    [][]string{},
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render renders the table as a string
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	// Column widths are measured in terminal cells, not bytes
	colWidths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		colWidths[i] = max(lipgloss.Width(col.Header), col.Width)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				colWidths[i] = max(colWidths[i], lipgloss.Width(cell))
			}
		}
	}

	var b strings.Builder

	header := make([]string, len(t.Columns))
	separator := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = padString(col.Header, colWidths[i], "left")
		separator[i] = strings.Repeat("─", colWidths[i])
	}
	b.WriteString(StyleTableHeader.Render(strings.Join(header, "  ")))
	b.WriteString("\n")
	b.WriteString(StyleTableBorder.Render(strings.Join(separator, "  ")))
	b.WriteString("\n")

	for idx, row := range t.Rows {
		parts := make([]string, len(t.Columns))
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			parts[i] = padString(cell, colWidths[i], t.Columns[i].Align)
		}

		style := StyleTableRow
		if idx%2 == 1 {
			style = StyleTableRowAlt
		}
		b.WriteString(style.Render(strings.TrimRight(strings.Join(parts, "  "), " ")))
		b.WriteString("\n")
	}

	return b.String()
}

// padString pads s to width cells with the given alignment
func padString(s string, width int, align string) string {
	padding := width - lipgloss.Width(s)
	if padding <= 0 {
		return s
	}

	switch align {
	case "right":
		return strings.Repeat(" ", padding) + s
	case "center":
		left := padding / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", padding-left)
	default:
		return s + strings.Repeat(" ", padding)
	}
}

// RenderSimpleList renders a bulleted list
func RenderSimpleList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(StyleInfo.Render("  • "))
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderKeyValue renders a key-value pair
func RenderKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s", StyleAccent.Render(key), value)
}

// RenderTree draws entries and their children with box-drawing branches
func RenderTree(entries []domain.Entry) string {
	var b strings.Builder
	renderBranch(&b, entries, "")
	return b.String()
}

func renderBranch(b *strings.Builder, entries []domain.Entry, prefix string) {
	for i, e := range entries {
		connector, indent := "├── ", "│   "
		if i == len(entries)-1 {
			connector, indent = "└── ", "    "
		}

		name := e.Name
		if e.IsDir {
			name = StyleAccent.Render(name + "/")
		}
		b.WriteString(StyleTableBorder.Render(prefix + connector))
		b.WriteString(EntryIcon(e) + " " + name)
		b.WriteString("\n")

		if len(e.Children) > 0 {
			renderBranch(b, e.Children, prefix+indent)
		}
	}
}

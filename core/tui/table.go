package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

type lineSeparator struct {
	header  [3]string // Characters for top border: left, middle, right
	content [3]string // Characters for middle row separator: left, middle, right
	footer  [3]string // Characters for bottom border: left, middle, right
}

var boxSeparator = lineSeparator{
	header:  [3]string{"┌", "┬", "┐"},
	content: [3]string{"├", "┼", "┤"},
	footer:  [3]string{"└", "┴", "┘"},
}

type Table struct {
	LineSeparator bool // Whether to include table borders
	Padding       int  // Number of spaces around cell content
	MaxWidth      int  // Optional max width for each column
}

// Table renders a matrix as a formatted table. Cells may carry ANSI styling;
// widths are measured on what the terminal displays.
func (t *Tui) Table(table *Table, matrix [][]string) string {
	if !table.tableHasUniformColumns(matrix) {
		return "Error: can't print table, has not uniform columns"
	}

	var result strings.Builder
	widths := table.calcMaxWidths(matrix)

	for j := range widths {
		if table.MaxWidth > 0 && widths[j]+2*table.Padding > table.MaxWidth {
			widths[j] = max(table.MaxWidth-2*table.Padding, 1)
		}
	}

	sep := boxSeparator
	if table.LineSeparator {
		result.WriteString(table.buildSep(sep.header, widths) + "\n")
	}

	for i, row := range matrix {
		wrappedCells := make([][]string, len(row))
		maxLines := 1
		for j, cell := range row {
			wrapped := wrapCell(cell, widths[j])
			wrappedCells[j] = wrapped
			if len(wrapped) > maxLines {
				maxLines = len(wrapped)
			}
		}

		for line := 0; line < maxLines; line++ {
			if table.LineSeparator {
				result.WriteString("│")
			}
			for j := range row {
				content := ""
				if line < len(wrappedCells[j]) {
					content = wrappedCells[j][line]
				}
				padding := widths[j] - ansi.StringWidth(content)
				result.WriteString(strings.Repeat(" ", table.Padding) + content + strings.Repeat(" ", table.Padding+padding))
				if table.LineSeparator {
					result.WriteString("│")
				}
			}
			result.WriteString("\n")
		}

		if table.LineSeparator {
			if i < len(matrix)-1 {
				result.WriteString(table.buildSep(sep.content, widths) + "\n")
			} else {
				result.WriteString(table.buildSep(sep.footer, widths) + "\n")
			}
		}
	}

	return result.String()
}

// Checks if all rows in the matrix have the same number of columns
func (t *Table) tableHasUniformColumns(matrix [][]string) bool {
	if len(matrix) == 0 {
		return true
	}
	expectedCols := len(matrix[0])
	for _, row := range matrix {
		if len(row) != expectedCols {
			return false
		}
	}
	return true
}

func (t *Table) buildSep(chars [3]string, widths []int) string {
	var sb strings.Builder
	sb.WriteString(chars[0])
	for i, w := range widths {
		if i > 0 {
			sb.WriteString(chars[1])
		}
		sb.WriteString(strings.Repeat("─", w+2*t.Padding))
	}
	sb.WriteString(chars[2])
	return sb.String()
}

func (t *Table) calcMaxWidths(matrix [][]string) []int {
	if len(matrix) == 0 {
		return []int{}
	}
	widths := make([]int, len(matrix[0]))
	for _, row := range matrix {
		for j, cell := range row {
			if w := ansi.StringWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}

// wrapCell splits a cell into lines of at most maxWidth display columns.
// Styled cells that need wrapping lose their styling.
func wrapCell(s string, maxWidth int) []string {
	if ansi.StringWidth(s) <= maxWidth {
		return []string{s}
	}
	plain := ansi.Strip(s)

	var lines []string
	var line strings.Builder
	width := 0
	for _, r := range plain {
		rw := runewidth.RuneWidth(r)
		if width+rw > maxWidth && width > 0 {
			lines = append(lines, line.String())
			line.Reset()
			width = 0
		}
		line.WriteRune(r)
		width += rw
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

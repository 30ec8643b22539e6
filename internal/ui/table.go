package ui

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/aidanlsb/sift/internal/query"
)

const colPadding = 2

// RenderTuples renders a result set as a plain, space-aligned table with a
// header row. columns fixes the column set and order; nil derives the
// sorted union of attribute names. Values wider than the terminal are
// truncated with an ellipsis.
func RenderTuples(tuples []query.Tuple, columns []string, d *DisplayContext) string {
	if len(tuples) == 0 {
		return Muted.Render("no results") + "\n"
	}
	if columns == nil {
		columns = unionColumns(tuples)
	}
	if len(columns) == 0 {
		return Muted.Render("no attributes") + "\n"
	}

	maxCell := d.TermWidth / len(columns)
	if maxCell < 8 {
		maxCell = 8
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}
	rows := make([][]string, len(tuples))
	for r, t := range tuples {
		row := make([]string, len(columns))
		for i, col := range columns {
			cell := formatCell(t, col, maxCell)
			row[i] = cell
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
		rows[r] = row
	}

	var sb strings.Builder
	for i, col := range columns {
		sb.WriteString(Accent.Render(pad(col, widths[i])))
		if i < len(columns)-1 {
			sb.WriteString(strings.Repeat(" ", colPadding))
		}
	}
	sb.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			sb.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", colPadding))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func unionColumns(tuples []query.Tuple) []string {
	seen := map[string]bool{}
	for _, t := range tuples {
		for k := range t {
			seen[k] = true
		}
	}
	cols := make([]string, 0, len(seen))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// formatCell renders one attribute value. Absent attributes render as a
// muted dash so sparse collections stay readable.
func formatCell(t query.Tuple, col string, maxWidth int) string {
	if !t.Has(col) {
		return "-"
	}
	v := t[col]

	var s string
	switch val := v.(type) {
	case nil:
		s = "null"
	case string:
		s = val
	case map[string]any, query.Tuple, []any:
		if b, err := json.Marshal(val); err == nil {
			s = string(b)
		} else {
			s = fmt.Sprint(val)
		}
	default:
		s = fmt.Sprint(val)
	}

	s = strings.ReplaceAll(s, "\n", " ")
	if runes := []rune(s); len(runes) > maxWidth {
		if maxWidth > 1 {
			s = string(runes[:maxWidth-1]) + "…"
		} else {
			s = string(runes[:maxWidth])
		}
	}
	return s
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

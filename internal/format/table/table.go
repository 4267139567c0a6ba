package table

import (
	"strings"

	"github.com/atomicstack/popup-select/internal/options"
	"github.com/charmbracelet/lipgloss"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format returns the rows padded according to the widest entry in each column.
// Rows shorter than the first row are padded with empty cells.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := cellWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < colCount; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - cellWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < colCount-1 {
					writeSpaces(&b, pad)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

// Selection lays out chosen labels next to their values. Labels are left
// aligned; the value column is right aligned when every value is numeric.
func Selection(labels []string, values []any) []string {
	rows := make([][]string, 0, len(labels))
	numeric := len(values) > 0
	for i, label := range labels {
		value := ""
		if i < len(values) {
			value = options.Label(values[i])
			if !isNumber(values[i]) {
				numeric = false
			}
		}
		rows = append(rows, []string{label, value})
	}
	align := []Alignment{AlignLeft, AlignLeft}
	if numeric {
		align[1] = AlignRight
	}
	return Format(rows, align)
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

// cellWidth measures display columns, so wide runes and styled cells line up.
func cellWidth(text string) int {
	return lipgloss.Width(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}

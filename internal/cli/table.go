package cli

import (
	"strconv"
	"strings"

	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders rows under headers with columns padded to fit.
// Cells in columns listed in rightAlign are right-aligned.
func RenderTable(headers []string, rows [][]string, rightAlign ...int) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	right := make(map[int]bool, len(rightAlign))
	for _, i := range rightAlign {
		right[i] = true
	}

	line := func(cells []string) string {
		parts := make([]string, len(widths))
		for i := range widths {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if right[i] {
				parts[i] = pad + cell
			} else {
				parts[i] = cell + pad
			}
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(line(headers)) + "\n")
	for _, row := range rows {
		b.WriteString(line(row) + "\n")
	}
	return b.String()
}

// RenderDenominations renders a denomination map sorted by denomination.
func RenderDenominations(header string, m map[int]int, label func(int) string) string {
	if len(m) == 0 {
		return SubtleStyle.Render("No data.") + "\n"
	}
	keys := model.Denominations(m)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{label(k), strconv.Itoa(m[k])})
	}
	return RenderTable([]string{header, "Quantity"}, rows, 1)
}

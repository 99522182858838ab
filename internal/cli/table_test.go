package cli

import (
	"strings"
	"testing"

	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"ID", "Amount"}, [][]string{{"1", "$5"}, {"12", "$100"}}, 1)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "1"+strings.Repeat(" ", 7)+"$5", lines[1])
	assert.Equal(t, "12"+strings.Repeat(" ", 4)+"$100", lines[2])
}

func TestRenderDenominations(t *testing.T) {
	out := RenderDenominations("Coin", model.CoinInventory{25: 3, 1: 10, 100: 0}, model.CoinLabel)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "1¢"))
	assert.True(t, strings.HasPrefix(lines[2], "25¢"))
	assert.True(t, strings.HasPrefix(lines[3], "$1.00"))

	assert.Contains(t, RenderDenominations("Coin", nil, model.CoinLabel), "No data.")
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Change for $1 (minimal)", "25¢  4")
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Change for $1 (minimal)")
	assert.Contains(t, lines[2], "25¢  4")
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.True(t, strings.HasPrefix(lines[3], "╰"))
}

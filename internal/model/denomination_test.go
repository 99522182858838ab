package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDenominations(t *testing.T) {
	tests := []struct {
		inventory map[int]int
		name      string
		wantErr   bool
	}{
		{name: "empty", inventory: map[int]int{}},
		{name: "valid", inventory: map[int]int{1: 10, 5: 0, 25: 3}},
		{name: "zero denomination", inventory: map[int]int{0: 1}, wantErr: true},
		{name: "negative denomination", inventory: map[int]int{-5: 1}, wantErr: true},
		{name: "negative count", inventory: map[int]int{10: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDenominations(tt.inventory)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCoinInventoryTotals(t *testing.T) {
	inv := CoinInventory{1: 3, 10: 2, 25: 4}

	assert.Equal(t, 123, inv.TotalCents())
	assert.Equal(t, 9, inv.CoinCount())
	assert.Equal(t, []int{1, 10, 25}, Denominations(inv))
}

func TestBillInventoryTotal(t *testing.T) {
	assert.Equal(t, 32, BillInventory{2: 1, 10: 3}.TotalDollars())
}

func TestFormatting(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "cents", got: FormatCents(1250), want: "$12.50"},
		{name: "zero", got: FormatCents(0), want: "$0.00"},
		{name: "negative", got: FormatCents(-5), want: "-$0.05"},
		{name: "small coin", got: CoinLabel(25), want: "25¢"},
		{name: "dollar coin", got: CoinLabel(100), want: "$1.00"},
		{name: "bill", got: BillLabel(20), want: "$20"},
		{name: "breakdown", got: Breakdown(CoinInventory{10: 1, 25: 3}), want: "3×25¢, 1×10¢"},
		{name: "empty breakdown", got: Breakdown(nil), want: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestParseStrategy(t *testing.T) {
	s, ok := ParseStrategy("max")
	assert.True(t, ok)
	assert.Equal(t, StrategyMaximal, s)

	_, ok = ParseStrategy("greedy")
	assert.False(t, ok)

	assert.Equal(t, StrategyMinimal, StrategyOf(true))
}

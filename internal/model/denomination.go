// Package model defines the view models mirrored from the exchange backend.
package model

import (
	"fmt"
	"sort"
	"strings"
)

// CoinInventory maps a coin denomination in cents to the number of coins.
type CoinInventory map[int]int

// BillInventory maps a bill denomination in dollars to the number of bills.
type BillInventory map[int]int

// Denominations returns the keys of a denomination map in ascending order.
func Denominations(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// ValidateDenominations checks that every denomination is positive and every count non-negative.
func ValidateDenominations(m map[int]int) error {
	for denom, count := range m {
		if denom <= 0 {
			return fmt.Errorf("denomination %d must be positive", denom)
		}
		if count < 0 {
			return fmt.Errorf("count %d for denomination %d must be non-negative", count, denom)
		}
	}
	return nil
}

// Validate checks the coin inventory invariants.
func (c CoinInventory) Validate() error {
	return ValidateDenominations(c)
}

// Validate checks the bill inventory invariants.
func (b BillInventory) Validate() error {
	return ValidateDenominations(b)
}

// TotalCents returns the value of all coins in cents.
func (c CoinInventory) TotalCents() int {
	total := 0
	for denom, count := range c {
		total += denom * count
	}
	return total
}

// CoinCount returns the number of coins held.
func (c CoinInventory) CoinCount() int {
	total := 0
	for _, count := range c {
		total += count
	}
	return total
}

// TotalDollars returns the face value of all bills in dollars.
func (b BillInventory) TotalDollars() int {
	total := 0
	for denom, count := range b {
		total += denom * count
	}
	return total
}

// FormatCents renders a cent amount as dollars, e.g. 1250 -> "$12.50".
func FormatCents(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// CoinLabel renders a coin denomination, e.g. 25 -> "25¢", 100 -> "$1.00".
func CoinLabel(cents int) string {
	if cents >= 100 {
		return FormatCents(cents)
	}
	return fmt.Sprintf("%d¢", cents)
}

// BillLabel renders a bill denomination, e.g. 10 -> "$10".
func BillLabel(dollars int) string {
	return fmt.Sprintf("$%d", dollars)
}

// Breakdown renders a change map as "3×25¢, 1×10¢" ordered by descending denomination.
func Breakdown(change CoinInventory) string {
	if len(change) == 0 {
		return "-"
	}
	keys := Denominations(change)
	parts := make([]string, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		parts = append(parts, fmt.Sprintf("%d×%s", change[keys[i]], CoinLabel(keys[i])))
	}
	return strings.Join(parts, ", ")
}

// Package calculator derives amounts and totals for the yard sale ledger.
// All arithmetic runs on decimals so that sums of 2-place prices stay exact.
package calculator

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Places is the number of decimal places every stored amount is rounded to.
const Places = 2

// Currency is used for display formatting.
const Currency = money.USD

var (
	oneCent   = decimal.New(1, -Places)
	oneDollar = decimal.NewFromInt(1)
)

// Round rounds an amount to 2 decimal places, half away from zero.
// NaN and infinities are returned unchanged.
func Round(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return amount
	}
	return decimal.NewFromFloat(amount).Round(Places).InexactFloat64()
}

// ParseAmount parses user input such as "2.5" or " 10 " and rounds it.
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d.Round(Places).InexactFloat64(), nil
}

// FormatInput renders an amount the way edit forms pre-fill it ("2.50").
func FormatInput(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(Places)
}

// Sum adds amounts exactly and rounds the result to 2 decimal places.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.Round(Places).InexactFloat64()
}

// Format renders an amount for display: "50¢" between one cent and one
// dollar, "$1.50" otherwise.
func Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}
	d := decimal.NewFromFloat(amount).Round(Places)
	cents := d.Shift(Places).IntPart()
	if d.GreaterThanOrEqual(oneCent) && d.LessThan(oneDollar) {
		return fmt.Sprintf("%d¢", cents)
	}
	return money.New(cents, Currency).Display()
}

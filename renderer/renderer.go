// Package renderer turns bookkeeping reports into markdown strings ready to
// be printed on a terminal.
package renderer

import (
	"sort"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount formats a monetary value with its currency symbol and code.
func Amount(value decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return value.StringFixed(2) + " " + currency
	}
	minor := value.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, currency).Display()
}

// sortedCategories returns the category names ordered by descending amount,
// ties broken alphabetically so the output is stable.
func sortedCategories(byCategory map[string]decimal.Decimal) []string {
	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		a, b := byCategory[categories[i]], byCategory[categories[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return categories[i] < categories[j]
	})
	return categories
}

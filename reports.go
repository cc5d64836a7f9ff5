package bookkeeper

import (
	"github.com/etnz/bookkeeper/date"
	"github.com/shopspring/decimal"
)

// Summary aggregates the records of one kind over a period: the grand total
// and the per-category subtotals, both rounded to 2 decimals once at the end.
type Summary struct {
	Period     date.Filter
	Total      decimal.Decimal
	ByCategory map[string]decimal.Decimal
}

// Summarize filters records by the period and sums their amounts, overall
// and per category. Rows that failed to parse were already dropped by the
// store's reader, so every record here carries a valid amount. Rounding is
// applied at the end, not per record.
func Summarize(records []Record, period date.Filter) Summary {
	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, rec := range records {
		if !period.Match(rec.Date) {
			continue
		}
		total = total.Add(rec.Amount)
		byCategory[rec.Category] = byCategory[rec.Category].Add(rec.Amount)
	}
	for cat, amount := range byCategory {
		byCategory[cat] = amount.Round(2)
	}
	return Summary{Period: period, Total: total.Round(2), ByCategory: byCategory}
}

// OnDate returns the records falling on a single day, in file order. This is
// the daily drill-down: no aggregation.
func OnDate(records []Record, on date.Date) []Record {
	filter := date.ByDay(on)
	var out []Record
	for _, rec := range records {
		if filter.Match(rec.Date) {
			out = append(out, rec)
		}
	}
	return out
}

// SummarizeExpenses aggregates the ledger's expenses over a period.
func (s *Store) SummarizeExpenses(l Ledger, period date.Filter) Summary {
	return Summarize(s.Expenses(l), period)
}

// SummarizeIncome aggregates the ledger's income over a period.
func (s *Store) SummarizeIncome(l Ledger, period date.Filter) Summary {
	return Summarize(s.Income(l), period)
}

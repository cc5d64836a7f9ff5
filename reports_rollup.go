package bookkeeper

import (
	"fmt"

	"github.com/etnz/bookkeeper/date"
	"github.com/shopspring/decimal"
)

// Rollup is a cross-ledger aggregation of one record kind, expressed in a
// single display currency.
type Rollup struct {
	Target     string // display currency
	Kind       Kind
	Period     date.Filter
	Total      decimal.Decimal
	ByLedger   map[string]decimal.Decimal // ledger name -> converted total
	ByCategory map[string]decimal.Decimal // category -> converted total
}

// Rollup aggregates every ledger owned by the requester over the period,
// converts each ledger's own-currency totals to the target currency, and
// sums across ledgers. Per-category subtotals are converted individually and
// then summed, rather than converting every record: this introduces one
// rounding step per ledger per category, so cross-ledger category totals may
// differ in the last cent from a record-level conversion.
func (s *Store) Rollup(rates *Rates, owner, target string, kind Kind, period date.Filter) (Rollup, error) {
	if !rates.IsSupported(target) {
		return Rollup{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, target)
	}
	roll := Rollup{
		Target:     upper(target),
		Kind:       kind,
		Period:     period,
		ByLedger:   make(map[string]decimal.Decimal),
		ByCategory: make(map[string]decimal.Decimal),
	}
	for _, l := range s.Ledgers(owner) {
		sum := Summarize(s.Records(l, kind), period)
		total, err := rates.Convert(sum.Total, l.Currency(), target)
		if err != nil {
			return Rollup{}, fmt.Errorf("could not convert ledger %q total: %w", l.Name(), err)
		}
		roll.ByLedger[l.Name()] = total
		roll.Total = roll.Total.Add(total)
		for cat, amount := range sum.ByCategory {
			converted, err := rates.Convert(amount, l.Currency(), target)
			if err != nil {
				return Rollup{}, fmt.Errorf("could not convert ledger %q category %q: %w", l.Name(), cat, err)
			}
			roll.ByCategory[cat] = roll.ByCategory[cat].Add(converted)
		}
	}
	roll.Total = roll.Total.Round(2)
	return roll, nil
}

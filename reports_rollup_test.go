package bookkeeper

import (
	"errors"
	"testing"

	"github.com/etnz/bookkeeper/date"
)

func TestRollup(t *testing.T) {
	s := newTestStore(t)
	rates := NewRates()

	daily, err := s.CreateLedger("daily", "AUD", "rickey")
	if err != nil {
		t.Fatal(err)
	}
	travel, err := s.CreateLedger("travel", "USD", "rickey")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddExpense(daily, rec("2025-01-15", "100", "food", "")); err != nil {
		t.Fatal(err)
	}
	if err := s.AddExpense(travel, rec("2025-01-20", "65", "food", "")); err != nil {
		t.Fatal(err)
	}
	if err := s.AddExpense(travel, rec("2025-01-21", "13", "shopping", "")); err != nil {
		t.Fatal(err)
	}

	roll, err := s.Rollup(rates, "rickey", "AUD", Expense, date.ByYear(2025))
	if err != nil {
		t.Fatalf("Rollup: %v", err)
	}

	// 65 USD = 100 AUD and 13 USD = 20 AUD at the static 0.65 rate.
	if !roll.ByLedger["daily"].Equal(dec("100")) {
		t.Errorf("daily converted total = %s, want 100", roll.ByLedger["daily"])
	}
	if !roll.ByLedger["travel"].Equal(dec("120")) {
		t.Errorf("travel converted total = %s, want 120", roll.ByLedger["travel"])
	}
	if !roll.Total.Equal(dec("220")) {
		t.Errorf("Total = %s, want 220", roll.Total)
	}

	// Category subtotals are converted per ledger, then summed across ledgers.
	if !roll.ByCategory["food"].Equal(dec("200")) {
		t.Errorf("food = %s, want 200", roll.ByCategory["food"])
	}
	if !roll.ByCategory["shopping"].Equal(dec("20")) {
		t.Errorf("shopping = %s, want 20", roll.ByCategory["shopping"])
	}
}

func TestRollupUnsupportedTarget(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Rollup(NewRates(), "rickey", "XXX", Expense, date.All()); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Errorf("got %v, want ErrUnsupportedCurrency", err)
	}
}

func TestRollupNoLedgers(t *testing.T) {
	s := newTestStore(t)
	roll, err := s.Rollup(NewRates(), "rickey", "AUD", Expense, date.All())
	if err != nil {
		t.Fatalf("Rollup: %v", err)
	}
	if !roll.Total.IsZero() || len(roll.ByLedger) != 0 {
		t.Errorf("rollup over no ledgers = %+v, want zero", roll)
	}
}

package bookkeeper

import (
	"testing"

	"github.com/etnz/bookkeeper/date"
)

// newTestStore returns a store rooted in a fresh temporary folder.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

// recordsEqual compares records field by field, using decimal equality for
// the amount so that representation differences (50 vs 50.0) do not matter.
func recordsEqual(a, b Record) bool {
	return a.Date == b.Date &&
		a.Amount.Equal(b.Amount) &&
		a.Category == b.Category &&
		a.Description == b.Description
}

// rec is a shorthand record constructor for tests.
func rec(day, amount, category, description string) Record {
	return Record{
		Date:        date.MustParse(day),
		Amount:      dec(amount),
		Category:    category,
		Description: description,
	}
}

package bookkeeper

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/etnz/bookkeeper/date"
	"github.com/shopspring/decimal"
)

// GuestOwner is the sentinel storage prefix for anonymous sessions.
const GuestOwner = "local"

// DefaultLedgerName is the ledger auto-provisioned for every new owner.
const DefaultLedgerName = "default"

// Kind selects one of the two record sets a ledger maintains.
type Kind int

const (
	// Expense records money going out.
	Expense Kind = iota
	// Income records money coming in.
	Income
)

func (k Kind) String() string {
	switch k {
	case Expense:
		return "expense"
	case Income:
		return "income"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "expense", "expenses":
		return Expense, nil
	case "income":
		return Income, nil
	default:
		return 0, fmt.Errorf("unknown record kind: %q", s)
	}
}

// filename returns the record file name for this kind inside a ledger folder.
func (k Kind) filename() string {
	if k == Income {
		return "income.csv"
	}
	return "expenses.csv"
}

// ExpenseCategories are the UI-facing expense categories. Stored category
// values remain free strings.
var ExpenseCategories = []string{
	"food", "transportation", "entertainment", "shopping", "medical",
	"bills", "education", "travel", "housing", "other",
}

// IncomeCategories are the UI-facing income categories.
var IncomeCategories = []string{
	"salary", "bonus", "investment", "gift", "refund",
	"freelance", "business", "rental", "other",
}

// Ledger identifies a named, currency-denominated book of records owned by a
// user or a guest session. It is a value type: the currency is normalized at
// construction and cannot be changed afterwards.
type Ledger struct {
	name     string
	currency string
	owner    string // empty for guest sessions
}

// NewLedger builds a ledger identity. The currency is uppercased; owner may
// be empty for guest sessions.
func NewLedger(name, currency, owner string) Ledger {
	return Ledger{name: name, currency: upper(currency), owner: owner}
}

// Name returns the ledger name.
func (l Ledger) Name() string { return l.name }

// Currency returns the ledger currency code, fixed at creation.
func (l Ledger) Currency() string { return l.currency }

// Owner returns the owning username, or "" for guest sessions.
func (l Ledger) Owner() string { return l.owner }

// StorageKey returns the owner-prefixed folder name that resolves this
// ledger on disk: "{owner}-{name}", or "local-{name}" for guests. Two ledgers
// with the same key alias the same storage.
func (l Ledger) StorageKey() string {
	owner := l.owner
	if owner == "" {
		owner = GuestOwner
	}
	return owner + "-" + l.name
}

func (l Ledger) String() string {
	who := "guest"
	if l.owner != "" {
		who = "user " + l.owner
	}
	return fmt.Sprintf("%s (%s, %s)", l.name, l.currency, who)
}

// folder returns the ledger folder under the store root.
func (l Ledger) folder(root string) string {
	return filepath.Join(root, l.StorageKey())
}

// file returns the record file of the given kind under the store root.
func (l Ledger) file(root string, kind Kind) string {
	return filepath.Join(l.folder(root), kind.filename())
}

// Record is one dated income or expense row. The currency is implied by the
// owning ledger. Identity within a record kind is the positional index in
// file order; any mutation invalidates previously read indices.
type Record struct {
	Date        date.Date
	Amount      decimal.Decimal
	Category    string
	Description string
}

// Validate checks the record fields that are enforced at entry time.
func (r Record) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("record date is required")
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidAmount, r.Amount)
	}
	if strings.TrimSpace(r.Category) == "" {
		return fmt.Errorf("record category is required")
	}
	return nil
}

func upper(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

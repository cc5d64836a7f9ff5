package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/bookkeeper"
	"github.com/etnz/bookkeeper/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// addCmd records one expense or income row; the two subcommands differ only
// by kind and suggested categories.
type addCmd struct {
	kind       bookkeeper.Kind
	categories []string

	ledger      string
	day         string
	category    string
	description string
}

func newExpenseCmd() *addCmd {
	return &addCmd{kind: bookkeeper.Expense, categories: bookkeeper.ExpenseCategories}
}

func newIncomeCmd() *addCmd {
	return &addCmd{kind: bookkeeper.Income, categories: bookkeeper.IncomeCategories}
}

func (c *addCmd) Name() string     { return c.kind.String() }
func (c *addCmd) Synopsis() string { return "record an " + c.kind.String() }
func (c *addCmd) Usage() string {
	return fmt.Sprintf(`bk %s -c <category> [-l <ledger>] [-d <date>] [-note <text>] <amount>

  Appends one %s record to the ledger. Dates are entered as DD/MM/YYYY
  (ISO YYYY-MM-DD also accepted) and default to today.
  Common categories: %s.
`, c.kind, c.kind, strings.Join(c.categories, ", "))
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to record into. Defaults to the default ledger.")
	f.StringVar(&c.day, "d", "", "Date of the record (DD/MM/YYYY). Defaults to today.")
	f.StringVar(&c.category, "c", "", "Category of the record.")
	f.StringVar(&c.description, "note", "", "Optional free-text description.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one amount.")
		return subcommands.ExitUsageError
	}
	if c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: a category is required (-c).")
		return subcommands.ExitUsageError
	}

	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	on := date.Today()
	if c.day != "" {
		if on, err = date.Parse(c.day); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	l, err := findLedger(s, c.ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rec := bookkeeper.Record{Date: on, Amount: amount, Category: c.category, Description: c.description}
	if err := s.AddRecord(l, c.kind, rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording %s: %v\n", c.kind, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s %s (%s) in ledger %s\n", c.kind, amount, l.Currency(), c.category, l.Name())
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/bookkeeper"
	"github.com/etnz/bookkeeper/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type editCmd struct {
	ledger      string
	kind        string
	day         string
	amount      string
	category    string
	description string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace a record by index" }
func (*editCmd) Usage() string {
	return `bk edit -d <date> -a <amount> -c <category> [-note <text>] [-l <ledger>] [-k expense|income] <index>

  Replaces the record at the 0-based index shown by 'bk tx' with the given
  date, amount and category.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to edit. Defaults to the default ledger.")
	f.StringVar(&c.kind, "k", "expense", "Record kind (expense or income).")
	f.StringVar(&c.day, "d", "", "New date of the record (DD/MM/YYYY).")
	f.StringVar(&c.amount, "a", "", "New amount.")
	f.StringVar(&c.category, "c", "", "New category.")
	f.StringVar(&c.description, "note", "", "New description.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one record index.")
		return subcommands.ExitUsageError
	}
	if c.day == "" || c.amount == "" || c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -d, -a and -c are all required.")
		return subcommands.ExitUsageError
	}
	index, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing index %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	kind, err := bookkeeper.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitFailure
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
	if err := s.UpdateRecord(l, kind, index, rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating %s %d: %v\n", kind, index, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %s %d in ledger %s\n", kind, index, l.Name())
	return subcommands.ExitSuccess
}

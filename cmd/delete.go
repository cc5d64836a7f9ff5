package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/bookkeeper"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	ledger string
	kind   string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a record by index" }
func (*deleteCmd) Usage() string {
	return `bk delete [-l <ledger>] [-k expense|income] <index>

  Deletes the record at the 0-based index shown by 'bk tx'. All indices
  after the deleted one shift down by one, so list again before deleting
  another record.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to delete from. Defaults to the default ledger.")
	f.StringVar(&c.kind, "k", "expense", "Record kind (expense or income).")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one record index.")
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

	if err := s.DeleteRecord(l, kind, index); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting %s %d: %v\n", kind, index, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %s %d from ledger %s\n", kind, index, l.Name())
	return subcommands.ExitSuccess
}

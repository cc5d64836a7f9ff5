package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bookkeeper"
	"github.com/etnz/bookkeeper/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	ledger string
	kind   string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the records of a ledger" }
func (*txCmd) Usage() string {
	return `bk tx [-l <ledger>] [-k expense|income]

  Lists the records of one kind in file order. The printed index is the one
  accepted by delete and edit; it is only valid until the next mutation.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to list. Defaults to the default ledger.")
	f.StringVar(&c.kind, "k", "expense", "Record kind to list (expense or income).")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.RecordsMarkdown(l, kind, s.Records(l, kind)))
	return subcommands.ExitSuccess
}

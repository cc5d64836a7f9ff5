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

type rollupCmd struct {
	kind     string
	currency string
	year     int
	month    int
}

func (*rollupCmd) Name() string     { return "rollup" }
func (*rollupCmd) Synopsis() string { return "aggregate all ledgers in one currency" }
func (*rollupCmd) Usage() string {
	return `bk rollup [-k expense|income] [-c <currency>] [-y <year>] [-m <month>]

  Sums one kind of record across every ledger of the current user over a
  period, converting each ledger's totals into a single display currency.
`
}

func (c *rollupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "expense", "Record kind (expense or income).")
	f.StringVar(&c.currency, "c", bookkeeper.BaseCurrency, "Display currency of the rollup.")
	f.IntVar(&c.year, "y", 0, "Restrict to a year.")
	f.IntVar(&c.month, "m", 0, "Restrict to a month (1-12).")
}

func (c *rollupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := bookkeeper.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	period, err := periodOf(c.year, c.month)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	roll, err := s.Rollup(bookkeeper.NewRates(), *owner, c.currency, kind, period)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RollupMarkdown(roll))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bookkeeper"
	"github.com/etnz/bookkeeper/date"
	"github.com/etnz/bookkeeper/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	ledger string
	kind   string
	year   int
	month  int
	day    string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "aggregate a ledger over a period" }
func (*summaryCmd) Usage() string {
	return `bk summary [-l <ledger>] [-k expense|income] [-y <year>] [-m <month>] [-d <date>]

  Totals one kind of record over a period, overall and per category, in the
  ledger's own currency. Without a period flag the whole ledger is summed.
  -m alone means that month of the current year; -d lists the individual
  records of a single day instead of aggregating.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to summarize. Defaults to the default ledger.")
	f.StringVar(&c.kind, "k", "expense", "Record kind (expense or income).")
	f.IntVar(&c.year, "y", 0, "Restrict to a year.")
	f.IntVar(&c.month, "m", 0, "Restrict to a month (1-12).")
	f.StringVar(&c.day, "d", "", "Drill down to a single day (DD/MM/YYYY).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.day != "" {
		on, err := date.Parse(c.day)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		records := bookkeeper.OnDate(s.Records(l, kind), on)
		printMarkdown(renderer.RecordsMarkdown(l, kind, records))
		return subcommands.ExitSuccess
	}

	period, err := periodOf(c.year, c.month)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	summary := bookkeeper.Summarize(s.Records(l, kind), period)
	printMarkdown(renderer.SummaryMarkdown(l, kind, summary))
	return subcommands.ExitSuccess
}

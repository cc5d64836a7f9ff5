package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bookkeeper"
	"github.com/etnz/bookkeeper/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type convertCmd struct {
	from string
	to   string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `bk convert -from <currency> -to <currency> <amount>

  Converts an amount using the built-in exchange-rate table. The result is
  rounded to 2 decimals unless source and target are the same currency.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", bookkeeper.BaseCurrency, "Source currency code.")
	f.StringVar(&c.to, "to", bookkeeper.BaseCurrency, "Target currency code.")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one amount.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	rates := bookkeeper.NewRates()
	converted, err := rates.Convert(amount, c.from, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s = %s\n", renderer.Amount(amount, c.from), renderer.Amount(converted, c.to))
	return subcommands.ExitSuccess
}

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

type ratesCmd struct {
	set  string
	rate string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show the exchange-rate table" }
func (*ratesCmd) Usage() string {
	return fmt.Sprintf(`bk rates [-set <currency> -rate <value>]

  Prints the built-in exchange-rate table, expressed against the %s base.
  With -set and -rate, overrides one rate for this invocation before
  printing, which is mostly useful to preview a conversion at a custom rate.
`, bookkeeper.BaseCurrency)
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Currency code whose rate to override.")
	f.StringVar(&c.rate, "rate", "", "New rate, in units of the currency per 1 "+bookkeeper.BaseCurrency+".")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rates := bookkeeper.NewRates()

	if c.set != "" || c.rate != "" {
		if c.set == "" || c.rate == "" {
			fmt.Fprintln(os.Stderr, "Error: -set and -rate must be given together.")
			return subcommands.ExitUsageError
		}
		rate, err := decimal.NewFromString(c.rate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing rate %q: %v\n", c.rate, err)
			return subcommands.ExitUsageError
		}
		if err := rates.SetRate(c.set, rate); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.RatesMarkdown(rates))
	return subcommands.ExitSuccess
}

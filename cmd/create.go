package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/bookkeeper"
	"github.com/google/subcommands"
)

type createCmd struct {
	currency string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new ledger" }
func (*createCmd) Usage() string {
	return `bk create [-c <currency>] <name>

  Creates a new ledger denominated in the given currency. The currency is
  fixed at creation and cannot be changed afterwards.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", bookkeeper.BaseCurrency, "Currency code for the new ledger.")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one ledger name.")
		return subcommands.ExitUsageError
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	l, err := s.CreateLedger(f.Arg(0), c.currency, *owner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating ledger: %v\n", err)
		if errors.Is(err, bookkeeper.ErrUnsupportedCurrency) {
			fmt.Fprintf(os.Stderr, "Supported currencies: %s\n", strings.Join(bookkeeper.NewRates().Supported(), ", "))
		}
		return subcommands.ExitFailure
	}

	fmt.Printf("Created ledger %s\n", l)
	return subcommands.ExitSuccess
}

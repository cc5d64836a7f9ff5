package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bookkeeper/renderer"
	"github.com/google/subcommands"
)

type ledgersCmd struct{}

func (*ledgersCmd) Name() string     { return "ledgers" }
func (*ledgersCmd) Synopsis() string { return "list the ledgers of the current user" }
func (*ledgersCmd) Usage() string {
	return `bk ledgers

  Lists the ledgers owned by the current user (or the guest session), with
  the currency recovered from each ledger's files.
`
}

func (*ledgersCmd) SetFlags(f *flag.FlagSet) {}

func (c *ledgersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LedgersMarkdown(*owner, s.Ledgers(*owner)))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/bookkeeper/userdir"
	"github.com/google/subcommands"
)

type registerCmd struct{}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new user" }
func (*registerCmd) Usage() string {
	return `bk register <username> <password>

  Adds a user to the credential file. Registered users own their ledgers
  under a per-user namespace; without -u the session is a guest session
  sharing the "local" namespace.
`
}

func (*registerCmd) SetFlags(*flag.FlagSet) {}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a username and a password.")
		return subcommands.ExitUsageError
	}
	username, password := f.Arg(0), f.Arg(1)

	if err := os.MkdirAll(filepath.Dir(*usersPath), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating user folder: %v\n", err)
		return subcommands.ExitFailure
	}
	dir, err := userdir.Open(*usersPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := dir.Register(username, password); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Registered user %s. Select this user with -u %s or BOOKKEEPER_USER=%s.\n", username, username, username)
	return subcommands.ExitSuccess
}

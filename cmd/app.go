// Package cmd implements the CLI application to manage bookkeeping ledgers.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/bookkeeper"
	"github.com/etnz/bookkeeper/date"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgersPath *string
	usersPath   *string
	owner       *string
)

// The flag defaults come from BOOKKEEPER_* variables, so the .env file must
// be loaded before they are resolved. Package-level var initializers run
// before init functions, hence the flags are defined here rather than inline.
func init() {
	loadEnv()
	ledgersPath = flag.String("ledgers", envOr("BOOKKEEPER_LEDGERS", "data/ledgers"), "Path to the ledgers root folder")
	usersPath = flag.String("users", envOr("BOOKKEEPER_USERS", "data/users/users.txt"), "Path to the users credential file")
	owner = flag.String("u", os.Getenv("BOOKKEEPER_USER"), "Username owning the ledgers (empty for a guest session)")
}

// loadEnv merges a .env file from the working directory into the environment.
// Variables already set keep their value; a missing file is not an error.
func loadEnv() {
	_ = godotenv.Load()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Commands lists every subcommand in registration order. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&createCmd{},
	&ledgersCmd{},
	newExpenseCmd(),
	newIncomeCmd(),
	&txCmd{},
	&deleteCmd{},
	&editCmd{},
	&summaryCmd{},
	&rollupCmd{},
	&ratesCmd{},
	&convertCmd{},
	&registerCmd{},
	&topicCmd{},
}

// openStore opens the ledgers root selected by the app flags.
func openStore() (*bookkeeper.Store, error) {
	return bookkeeper.NewStore(*ledgersPath)
}

// findLedger resolves a ledger by name for the current owner. The "default"
// ledger is auto-provisioned on first use; any other name must exist.
func findLedger(s *bookkeeper.Store, name string) (bookkeeper.Ledger, error) {
	if name == "" || name == bookkeeper.DefaultLedgerName {
		return s.CreateDefaultLedger(*owner, bookkeeper.BaseCurrency)
	}
	for _, l := range s.Ledgers(*owner) {
		if l.Name() == name {
			return l, nil
		}
	}
	return bookkeeper.Ledger{}, fmt.Errorf("could not find ledger %q", name)
}

// periodOf builds the period filter shared by the reporting commands from
// their -y/-m flags. A month without a year means the current year.
func periodOf(year, month int) (date.Filter, error) {
	switch {
	case month != 0:
		if month < 1 || month > 12 {
			return date.Filter{}, fmt.Errorf("invalid month %d", month)
		}
		if year == 0 {
			year = date.Today().Year()
		}
		return date.ByMonth(year, time.Month(month)), nil
	case year != 0:
		return date.ByYear(year), nil
	default:
		return date.All(), nil
	}
}

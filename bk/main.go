package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/bookkeeper/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)

	subs := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		subs[c.Name()] = &complete.Command{}
	}
	// handles shell completion requests and exits, a no-op otherwise
	(&complete.Command{Sub: subs}).Complete(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

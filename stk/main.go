// Command stk values a stock portfolio typed by hand.
//
// Run without arguments, it starts an interactive 'track' session.
// See 'stk help' and 'stk topic' for the other commands.
package main

import (
	"flag"
	"os"
	"path"

	"github.com/etnz/stocktracker/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	cmd.Register(commander)

	// only active when invoked by the shell completion.
	cmd.Completion(flag.CommandLine).Complete(name)

	flag.Parse()
	if flag.NArg() == 0 {
		// track is the default command.
		flag.CommandLine.Parse(append(os.Args[1:], "track"))
	}
	os.Exit(int(commander.Execute(cmd.NewContext())))
}

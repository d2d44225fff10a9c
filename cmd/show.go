package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocktracker"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

type showCmd struct {
	streams
	markdown bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a portfolio saved as csv" }
func (*showCmd) Usage() string {
	return `stk show [-md] <file.csv>

  Reads a portfolio saved by 'stk track' in csv, checks that every value is
  its quantity times its price, and displays the summary again.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "display the summary as formatted markdown")
}

// Args predicts the positional arguments of the command.
func (*showCmd) Args() complete.Predictor { return predict.Files("*.csv") }

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one csv file, got %d arguments\n", f.NArg())
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	file, err := os.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio file %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	portfolio, err := stocktracker.DecodeCSV(file, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading portfolio file %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	displaySummary(c.stdout(), portfolio, c.markdown)
	return subcommands.ExitSuccess
}

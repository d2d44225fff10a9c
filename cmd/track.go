package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/stocktracker"
	"github.com/etnz/stocktracker/logger"
	"github.com/etnz/stocktracker/renderer"
	"github.com/google/subcommands"
)

// trackCmd holds the flags for the 'track' subcommand.
type trackCmd struct {
	streams
	markdown bool
	outDir   string
}

func (*trackCmd) Name() string     { return "track" }
func (*trackCmd) Synopsis() string { return "enter stocks, display their value and optionally save it" }
func (*trackCmd) Usage() string {
	return `stk track [-md] [-o <dir>]

  Asks for the number of stocks, then a ticker and a quantity for each of them.
  Displays every holding with its value and the total investment value.
  Finally offers to save the result as csv or txt.

  This is the default command when stk is run without arguments.
`
}

func (c *trackCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "display the summary as formatted markdown")
	f.StringVar(&c.outDir, "o", ".", "directory where the portfolio file is saved")
}

func (c *trackCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger.FromContext(ctx)
	out := c.stdout()

	catalog, err := OpenCatalog(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}

	renderer.Title(out)
	prompter := stocktracker.NewPrompter(c.stdin(), out)

	portfolio, err := stocktracker.Collect(ctx, prompter, catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError reading stocks: %v\n", err)
		return subcommands.ExitFailure
	}
	displaySummary(out, portfolio, c.markdown)

	choice, err := prompter.Line("\nDo you want to save the result? (csv / txt / no): ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError reading save choice: %v\n", err)
		return subcommands.ExitFailure
	}
	if exporter, ok := stocktracker.ParseFormat(choice); ok {
		path, err := stocktracker.Save(c.outDir, exporter, portfolio)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
			return subcommands.ExitFailure
		}
		log.Info().Str("format", exporter.Name()).Str("path", path).Int("holdings", portfolio.Len()).Msg("portfolio saved")
		fmt.Fprintf(out, "Data saved to %s\n", path)
	} else {
		fmt.Fprintln(out, "Data not saved.")
	}

	fmt.Fprintln(out, "\nProgram completed successfully.")
	return subcommands.ExitSuccess
}

// displaySummary prints the portfolio summary, as a plain table or as markdown.
func displaySummary(w io.Writer, p *stocktracker.Portfolio, markdown bool) {
	if markdown {
		printMarkdown(w, renderer.SummaryMarkdown(p))
		return
	}
	renderer.Summary(w, p)
}

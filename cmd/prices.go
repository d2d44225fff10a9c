package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocktracker/renderer"
	"github.com/google/subcommands"
)

type pricesCmd struct {
	streams
	markdown bool
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "list the unit prices used to value stocks" }
func (*pricesCmd) Usage() string {
	return `stk [-prices <file.json>] prices [-md]

  Lists the price table: the built-in one, or the one read from -prices.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "display the prices as formatted markdown")
}

func (c *pricesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := OpenCatalog(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}

	out := c.stdout()
	if c.markdown {
		printMarkdown(out, renderer.CatalogMarkdown(catalog))
		return subcommands.ExitSuccess
	}
	for ticker := range catalog.Tickers() {
		price, _ := catalog.Lookup(ticker)
		fmt.Fprintf(out, "%-6s %s\n", ticker, price)
	}
	return subcommands.ExitSuccess
}

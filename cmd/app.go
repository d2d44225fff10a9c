// Package cmd implements the stk command-line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stocktracker"
	"github.com/etnz/stocktracker/logger"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of stk, in the order they are documented.
var Commands = []subcommands.Command{
	&trackCmd{},
	&pricesCmd{},
	&showCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range Commands {
		group := "portfolio"
		if cmd.Name() == "topic" {
			group = "documentation"
		}
		c.Register(cmd, group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var pricesFile = flag.String("prices", "", "Path to a JSON price file replacing the built-in prices")
var pricesPath = flag.String("prices-path", stocktracker.DefaultPricesPath, "JSONPath of the prices object in the price file")
var currency = flag.String("currency", "INR", "Currency of the prices (ISO 4217 code)")
var verbose = flag.Bool("v", false, "Log debug information on stderr")

// NewContext returns the root context of a run, carrying its logger.
// It must be called after the flags are parsed.
func NewContext() context.Context {
	return logger.WithContext(context.Background(), logger.New(*verbose))
}

// OpenCatalog returns the price table of the run: the price file if one is
// set, the built-in table otherwise.
func OpenCatalog(ctx context.Context) (*stocktracker.Catalog, error) {
	if !stocktracker.ValidCurrency(*currency) {
		return nil, fmt.Errorf("unknown currency %q", *currency)
	}
	if *pricesFile == "" {
		return stocktracker.DefaultCatalog(*currency), nil
	}

	f, err := os.Open(*pricesFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("price file %q does not exist", *pricesFile)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open price file: %w", err)
	}
	defer f.Close()

	catalog, err := stocktracker.DecodeCatalog(f, *pricesPath, *currency)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", *pricesFile, err)
	}
	logger.FromContext(ctx).Debug().Str("file", *pricesFile).Int("tickers", catalog.Len()).Msg("price file loaded")
	return catalog, nil
}

// printMarkdown renders md for the terminal, or prints it as is if it cannot.
func printMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprint(w, md)
}

// streams holds the standard streams of an interactive command.
// Nil fields stand for the process ones.
type streams struct {
	in  io.Reader
	out io.Writer
}

func (s streams) stdin() io.Reader {
	if s.in == nil {
		return os.Stdin
	}
	return s.in
}

func (s streams) stdout() io.Writer {
	if s.out == nil {
		return os.Stdout
	}
	return s.out
}

package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setGlobal overrides a global flag value for the duration of the test.
func setGlobal(t *testing.T, flagValue *string, value string) {
	t.Helper()
	old := *flagValue
	*flagValue = value
	t.Cleanup(func() { *flagValue = old })
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestOpenCatalog_Default(t *testing.T) {
	catalog, err := OpenCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, catalog.Len())
	assert.Equal(t, "INR", catalog.Currency())
}

func TestOpenCatalog_PriceFile(t *testing.T) {
	setGlobal(t, pricesFile, writeFile(t, "prices.json", `{"market": {"quotes": {"NVDA": 875.5}}}`))
	setGlobal(t, pricesPath, "$.market.quotes")
	setGlobal(t, currency, "USD")

	catalog, err := OpenCatalog(context.Background())
	require.NoError(t, err)
	price, ok := catalog.Lookup("nvda")
	require.True(t, ok)
	assert.Equal(t, "$875.50", price.String())
	_, ok = catalog.Lookup("AAPL")
	assert.False(t, ok, "the price file replaces the built-in prices")
}

func TestOpenCatalog_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		setGlobal(t, pricesFile, filepath.Join(t.TempDir(), "nope.json"))
		_, err := OpenCatalog(context.Background())
		assert.ErrorContains(t, err, "does not exist")
	})
	t.Run("invalid file", func(t *testing.T) {
		setGlobal(t, pricesFile, writeFile(t, "prices.json", `{"prices": {"AAPL": "cheap"}}`))
		_, err := OpenCatalog(context.Background())
		assert.ErrorContains(t, err, "not a number")
	})
	t.Run("unknown currency", func(t *testing.T) {
		setGlobal(t, currency, "XXXX")
		_, err := OpenCatalog(context.Background())
		assert.ErrorContains(t, err, "unknown currency")
	})
}

func TestTrack_PriceFile(t *testing.T) {
	setGlobal(t, pricesFile, writeFile(t, "prices.json", `{"prices": {"NVDA": 900}}`))
	status, out := runTrack(t, t.TempDir(), "2", "AAPL", "3", "nvda", "2", "no")

	require.Equal(t, subcommands.ExitSuccess, status, out)
	assert.Contains(t, out, `Warning: stock "AAPL" not found, skipped.`)
	assert.Contains(t, out, "Total Investment Value: ₹1,800.00")
}

func TestPrices(t *testing.T) {
	var out strings.Builder
	c := &pricesCmd{streams: streams{out: &out}}
	f := flag.NewFlagSet("prices", flag.ContinueOnError)
	c.SetFlags(f)

	require.Equal(t, subcommands.ExitSuccess, c.Execute(context.Background(), f))
	assert.Equal(t, "AAPL   ₹180.00\nGOOGL  ₹140.00\nMSFT   ₹320.00\nTSLA   ₹250.00\n", out.String())
}

func TestShow(t *testing.T) {
	dir := t.TempDir()
	status, _ := runTrack(t, dir, "2", "MSFT", "10", "AAPL", "1", "csv")
	require.Equal(t, subcommands.ExitSuccess, status)

	var out strings.Builder
	c := &showCmd{streams: streams{out: &out}}
	f := flag.NewFlagSet("show", flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse([]string{filepath.Join(dir, "portfolio.csv")}))

	require.Equal(t, subcommands.ExitSuccess, c.Execute(context.Background(), f))
	assert.Contains(t, out.String(), "MSFT   | Qty: 10  | Price: ₹320.00  | Value: ₹3,200.00")
	assert.Contains(t, out.String(), "AAPL   | Qty: 1   | Price: ₹180.00  | Value: ₹180.00")
	assert.Contains(t, out.String(), "Total Investment Value: ₹3,380.00")
}

func TestShow_Errors(t *testing.T) {
	c := &showCmd{streams: streams{out: &strings.Builder{}}}

	f := flag.NewFlagSet("show", flag.ContinueOnError)
	c.SetFlags(f)
	assert.Equal(t, subcommands.ExitUsageError, c.Execute(context.Background(), f))

	f = flag.NewFlagSet("show", flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse([]string{writeFile(t, "portfolio.csv", "Stock,Quantity,Price,Investment Value\r\nAAPL,3,180,999\r\n\r\nTotal Investment,,,999\r\n")}))
	assert.Equal(t, subcommands.ExitFailure, c.Execute(context.Background(), f))
}

func TestTopic(t *testing.T) {
	var out strings.Builder
	c := &topicCmd{streams: streams{out: &out}}
	f := flag.NewFlagSet("topic", flag.ContinueOnError)
	require.NoError(t, f.Parse([]string{"export"}))

	require.Equal(t, subcommands.ExitSuccess, c.Execute(context.Background(), f))
	assert.Contains(t, out.String(), "Total Investment,,,540")

	f = flag.NewFlagSet("topic", flag.ContinueOnError)
	require.NoError(t, f.Parse([]string{"nope"}))
	assert.Equal(t, subcommands.ExitFailure, c.Execute(context.Background(), f))
}

func TestRegister(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("stk", flag.ContinueOnError), "stk")
	Register(commander)

	var names []string
	commander.VisitCommands(func(g *subcommands.CommandGroup, c subcommands.Command) {
		names = append(names, g.Name()+"/"+c.Name())
	})
	for _, want := range []string{"portfolio/track", "portfolio/prices", "portfolio/show", "documentation/topic"} {
		assert.True(t, slices.Contains(names, want), "missing %s in %v", want, names)
	}
}

func TestCompletion(t *testing.T) {
	top := flag.NewFlagSet("stk", flag.ContinueOnError)
	top.String("prices", "", "")
	top.Bool("v", false, "")

	c := Completion(top)
	assert.Contains(t, c.Flags, "prices")
	assert.Contains(t, c.Flags, "v")
	for _, cmd := range Commands {
		assert.Contains(t, c.Sub, cmd.Name())
	}
	assert.Contains(t, c.Sub["track"].Flags, "md")
	assert.Contains(t, c.Sub["track"].Flags, "o")
	assert.NotNil(t, c.Sub["show"].Args)
	assert.ElementsMatch(t, []string{"*", "export", "prices", "track"}, c.Sub["topic"].Args.Predict(""))
}

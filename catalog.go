package stocktracker

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Catalog is a read-only table of unit prices indexed by ticker.
//
// A Catalog is built once, before any input is read, and is never modified
// afterward. Holdings copy the price they need, so a Catalog can be discarded
// without affecting them.
type Catalog struct {
	currency string
	prices   map[string]Money
}

// NewCatalog creates a Catalog from a copy of prices, all in currency.
// Tickers are normalized to upper case.
func NewCatalog(currency string, prices map[string]Money) *Catalog {
	c := &Catalog{currency: currency, prices: make(map[string]Money, len(prices))}
	for ticker, price := range prices {
		c.prices[normalizeTicker(ticker)] = price
	}
	return c
}

// DefaultCatalog returns the built-in price table, in the given currency.
func DefaultCatalog(currency string) *Catalog {
	return NewCatalog(currency, map[string]Money{
		"AAPL":  M(180, currency),
		"TSLA":  M(250, currency),
		"GOOGL": M(140, currency),
		"MSFT":  M(320, currency),
	})
}

// Lookup returns the unit price of symbol, if listed.
// The match is exact once the symbol has been upper cased.
func (c *Catalog) Lookup(symbol string) (Money, bool) {
	price, ok := c.prices[normalizeTicker(symbol)]
	return price, ok
}

// Tickers iterates over listed tickers in alphabetical order.
func (c *Catalog) Tickers() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(c.prices)))
}

// Len returns the number of listed tickers.
func (c *Catalog) Len() int { return len(c.prices) }

// Currency returns the currency prices are expressed in.
func (c *Catalog) Currency() string { return c.currency }

func normalizeTicker(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

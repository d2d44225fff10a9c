// Package renderer formats portfolios for humans: fixed-width text for the
// terminal, and markdown for pretty printing.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/stocktracker"
)

const width = 50

// Title writes the banner shown when the tracker starts.
func Title(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", width))
	fmt.Fprintln(w, "        STOCK PORTFOLIO TRACKER")
	fmt.Fprintln(w, strings.Repeat("=", width))
}

// Summary writes the portfolio as a fixed-width table followed by its total.
// It does not modify p, and writes the same bytes for the same portfolio.
func Summary(w io.Writer, p *stocktracker.Portfolio) {
	rule := strings.Repeat("-", width)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "PORTFOLIO SUMMARY")
	fmt.Fprintln(w, rule)
	for _, h := range p.Holdings() {
		fmt.Fprintf(w, "%-6s | Qty: %-3s | Price: %-8s | Value: %s\n", h.Ticker, h.Quantity, h.Price, h.Value)
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total Investment Value: %s\n", p.Total())
}

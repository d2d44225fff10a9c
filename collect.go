package stocktracker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/stocktracker/logger"
)

// ErrInputClosed is returned when the input ends before an answer is read.
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on w and reads one line answers from r.
// Lines of any length are accepted.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from r and writing to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// Println writes a line of text to the prompter output.
func (p *Prompter) Println(a ...any) { fmt.Fprintln(p.out, a...) }

// Line prints msg and returns the next line of input, without its line ending.
func (p *Prompter) Line(msg string) (string, error) {
	fmt.Fprint(p.out, msg)
	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", ErrInputClosed
		}
		// last line without a line ending
		err = nil
	}
	if err != nil {
		return "", fmt.Errorf("cannot read answer to %q: %w", strings.TrimSpace(msg), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Int prints msg and reads an integer.
// It asks again, for as long as it takes, until the answer is a valid integer.
func (p *Prompter) Int(msg string) (int, error) {
	for {
		line, err := p.Line(msg)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		p.Println("Please enter a valid number.")
	}
}

// Quantity prints msg and reads a whole number of shares, of any size.
// Like [Prompter.Int] it asks again until the answer is valid.
func (p *Prompter) Quantity(msg string) (Quantity, error) {
	for {
		line, err := p.Line(msg)
		if err != nil {
			return Quantity{}, err
		}
		q, err := ParseQuantity(strings.TrimSpace(line))
		if err == nil {
			return q, nil
		}
		p.Println("Please enter a valid number.")
	}
}

// Collect interactively builds a Portfolio priced with catalog.
//
// It first asks for the number of stocks, then for each one a ticker and a
// quantity. A ticker absent from the catalog is reported and that entry is
// skipped; the loop does not ask for it again. A count of zero or less yields
// an empty portfolio.
func Collect(ctx context.Context, p *Prompter, catalog *Catalog) (*Portfolio, error) {
	log := logger.FromContext(ctx)
	portfolio := NewPortfolio(catalog.Currency())

	count, err := p.Int("Enter number of stocks: ")
	if err != nil {
		return nil, err
	}
	log.Debug().Int("count", count).Msg("collecting stocks")

	for i := 1; i <= count; i++ {
		p.Println()
		p.Println("Stock", i)
		name, err := p.Line("Enter stock name: ")
		if err != nil {
			return nil, err
		}
		ticker := normalizeTicker(name)
		quantity, err := p.Quantity("Enter quantity: ")
		if err != nil {
			return nil, err
		}

		price, ok := catalog.Lookup(ticker)
		if !ok {
			fmt.Fprintf(p.out, "Warning: stock %q not found, skipped.\n", ticker)
			log.Debug().Str("ticker", ticker).Int("entry", i).Msg("unknown ticker")
			continue
		}
		h := NewHolding(ticker, quantity, price)
		portfolio.Add(h)
		log.Debug().Str("ticker", ticker).Str("quantity", h.Quantity.String()).Str("value", h.Value.Amount()).Msg("holding recorded")
	}
	return portfolio, nil
}

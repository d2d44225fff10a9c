package stocktracker

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// this file contains the export formats of a portfolio.

//go:generate mockgen -package=stocktracker_test -destination=mock_clock_test.go -source=export.go Clock

// Clock tells the time an export is generated.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock reading the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Exporter writes a Portfolio in a given file format.
type Exporter interface {
	// Name is the format name, as typed by the user to select it.
	Name() string
	// Filename is the default name of the exported file.
	Filename() string
	// Export writes the whole portfolio to w.
	Export(w io.Writer, p *Portfolio) error
}

// Formats lists the available export formats.
var Formats = []Exporter{CSVExporter{}, TextExporter{Clock: SystemClock{}}}

// ParseFormat returns the Exporter named by choice, case insensitive.
// Any other answer means the portfolio must not be saved, and it returns false.
func ParseFormat(choice string) (Exporter, bool) {
	choice = strings.ToLower(strings.TrimSpace(choice))
	for _, e := range Formats {
		if e.Name() == choice {
			return e, true
		}
	}
	return nil, false
}

// Save exports p into dir, creating or overwriting the exporter's file.
// It returns the path of the written file.
func Save(dir string, e Exporter, p *Portfolio) (path string, err error) {
	path = filepath.Join(dir, e.Filename())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close %q: %w", path, cerr)
		}
	}()
	if err := e.Export(f, p); err != nil {
		return "", fmt.Errorf("cannot write %s to %q: %w", e.Name(), path, err)
	}
	return path, nil
}

// csvHeader is the header row of the CSV format.
var csvHeader = []string{"Stock", "Quantity", "Price", "Investment Value"}

// csvTotalLabel labels the summary row of the CSV format.
const csvTotalLabel = "Total Investment"

// CSVExporter writes a portfolio as comma separated values.
//
// The file has a header row, one row per holding, an empty row, and a summary
// row holding the total in the fourth column:
//
//	Stock,Quantity,Price,Investment Value
//	AAPL,3,180,540
//
//	Total Investment,,,540
//
// Amounts are written as plain decimals and rows end with CRLF.
type CSVExporter struct{}

func (CSVExporter) Name() string     { return "csv" }
func (CSVExporter) Filename() string { return "portfolio.csv" }

func (CSVExporter) Export(w io.Writer, p *Portfolio) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, h := range p.Holdings() {
		if err := cw.Write([]string{h.Ticker, h.Quantity.String(), h.Price.Amount(), h.Value.Amount()}); err != nil {
			return err
		}
	}
	if err := cw.Write(nil); err != nil {
		return err
	}
	if err := cw.Write([]string{csvTotalLabel, "", "", p.Total().Amount()}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// DecodeCSV reads back a portfolio written by [CSVExporter], amounts being in currency.
//
// Every row is checked: the value must be the quantity times the price, and
// the summary row must match the sum of all values and be the last record.
func DecodeCSV(r io.Reader, currency string) (*Portfolio, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty portfolio file")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header: %w", err)
	}
	if strings.Join(header, ",") != strings.Join(csvHeader, ",") {
		return nil, fmt.Errorf("unexpected header %q", header)
	}

	p := NewPortfolio(currency)
	for {
		// csv.Reader skips the empty row before the summary.
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing %q row", csvTotalLabel)
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		if row[0] == csvTotalLabel {
			total, err := ParseMoney(row[3], currency)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if !total.Equal(p.Total()) {
				return nil, fmt.Errorf("line %d: total %s does not match the sum of values %s", line, total.Amount(), p.Total().Amount())
			}
			switch _, err := cr.Read(); {
			case errors.Is(err, io.EOF):
			case err != nil:
				return nil, err
			default:
				extra, _ := cr.FieldPos(0)
				return nil, fmt.Errorf("line %d: unexpected record after the %q row", extra, csvTotalLabel)
			}
			return p, nil
		}

		quantity, err := ParseQuantity(row[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		price, err := ParseMoney(row[2], currency)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		value, err := ParseMoney(row[3], currency)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		h := NewHolding(row[0], quantity, price)
		if !h.Value.Equal(value) {
			return nil, fmt.Errorf("line %d: value %s of %s is not %s × %s", line, value.Amount(), h.Ticker, quantity, price.Amount())
		}
		p.Add(h)
	}
}

// TextExporter writes a portfolio as a plain text report.
//
// The last line records when the report was generated, as told by Clock.
type TextExporter struct {
	Clock Clock
}

func (TextExporter) Name() string     { return "txt" }
func (TextExporter) Filename() string { return "portfolio.txt" }

func (e TextExporter) Export(w io.Writer, p *Portfolio) error {
	clock := e.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	rule := strings.Repeat("-", 40)

	var b strings.Builder
	fmt.Fprintln(&b, "STOCK PORTFOLIO REPORT")
	fmt.Fprintln(&b, rule)
	for _, h := range p.Holdings() {
		fmt.Fprintf(&b, "%s | Qty: %s | Price: %s | Value: %s\n", h.Ticker, h.Quantity, h.Price, h.Value)
	}
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Total Investment Value: %s\n", p.Total())
	fmt.Fprintf(&b, "Generated On: %s\n", clock.Now().Local().Format("2006-01-02 15:04:05.000000"))

	_, err := io.WriteString(w, b.String())
	return err
}

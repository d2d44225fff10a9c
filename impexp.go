package stocktracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultPricesPath is the JSONPath of the price object in a price file.
const DefaultPricesPath = "$.prices"

// DecodeCatalog reads a price file and returns the Catalog it describes.
//
// A price file is a JSON document. The object selected by 'path' (a JSONPath
// expression) maps tickers to unit prices, expressed as JSON numbers in
// 'currency'. For instance with the default path:
//
//	{"prices": {"AAPL": 180, "MSFT": 320.5}}
//
// Numbers are read exactly, they never go through a float.
func DecodeCatalog(r io.Reader, path, currency string) (*Catalog, error) {
	if path == "" {
		path = DefaultPricesPath
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var jdoc any
	if err := dec.Decode(&jdoc); err != nil {
		return nil, fmt.Errorf("cannot parse price file: %w", err)
	}

	jval, err := jsonpath.Get(path, jdoc)
	if err != nil {
		return nil, fmt.Errorf("cannot select prices at %q: %w", path, err)
	}
	// jsonpath returns a list as soon as the path contains a wildcard or a filter,
	// keep the first match.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	jprices, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("cannot select prices at %q: not an object but %T", path, jval)
	}

	prices := make(map[string]Money, len(jprices))
	var errs error
	for ticker, v := range jprices {
		if strings.TrimSpace(ticker) == "" {
			errs = errors.Join(errs, fmt.Errorf("empty ticker"))
			continue
		}
		n, ok := v.(json.Number)
		if !ok {
			errs = errors.Join(errs, fmt.Errorf("price of %q is not a number: %v", ticker, v))
			continue
		}
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("price of %q: %w", ticker, err))
			continue
		}
		if d.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("price of %q is negative: %s", ticker, d))
			continue
		}
		prices[ticker] = M(d, currency)
	}
	if errs != nil {
		return nil, fmt.Errorf("invalid price file: %w", errs)
	}
	return NewCatalog(currency, prices), nil
}

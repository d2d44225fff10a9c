package stocktracker

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from any supported numeric value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a plain decimal amount, as written in exports.
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d, cur: currency}, nil
}

// ValidCurrency reports whether code is a currency known to the formatter.
func ValidCurrency(code string) bool { return money.GetCurrency(code) != nil }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// maxMinorUnits is the largest amount, in minor units, the currency formatter accepts.
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// String returns the value formatted with its currency symbol, e.g. "₹1,540.00".
// The value is rounded to the currency's fraction digits.
func (m Money) String() string {
	cur := m.currency()
	f := cur.Formatter()
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	if minor.Abs().LessThanOrEqual(maxMinorUnits) {
		return f.Format(minor.IntPart())
	}
	return formatMinor(f, minor)
}

// formatMinor formats an amount in minor units too large for an int64, with
// the same layout as [money.Formatter.Format].
func formatMinor(f *money.Formatter, minor decimal.Decimal) string {
	sa := minor.Abs().String()
	if f.Thousand != "" {
		for i := len(sa) - f.Fraction - 3; i > 0; i -= 3 {
			sa = sa[:i] + f.Thousand + sa[i:]
		}
	}
	if f.Fraction > 0 {
		sa = sa[:len(sa)-f.Fraction] + f.Decimal + sa[len(sa)-f.Fraction:]
	}
	sa = strings.Replace(f.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", f.Grapheme, 1)
	if minor.IsNegative() {
		sa = "-" + sa
	}
	return sa
}

// Amount returns the bare decimal amount, without symbol nor grouping.
func (m Money) Amount() string { return m.value.String() }

func (m Money) Currency() string           { return m.cur }
func (m Money) Equal(n Money) bool         { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool               { return m.value.IsZero() }
func (m Money) IsNegative() bool           { return m.value.IsNegative() }
func (m Money) Mul(n Quantity) Money       { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Add(n Money) Money          { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money          { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) LessThan(amount Money) bool { return m.value.LessThan(amount.value) }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

package stocktracker

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is a number of shares.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseQuantity parses a whole number of shares, written in base 10 with an
// optional sign. There is no upper bound.
func ParseQuantity(s string) (Quantity, error) {
	if n, ok := new(big.Int).SetString(s, 10); ok {
		return Quantity{value: decimal.NewFromBigInt(n, 0)}, nil
	}
	if _, err := decimal.NewFromString(s); err == nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: not a whole number", s)
	}
	return Quantity{}, fmt.Errorf("invalid quantity %q: not a number", s)
}

func (q Quantity) Equal(p Quantity) bool { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool          { return q.value.IsZero() }
func (q Quantity) IsNegative() bool      { return q.value.IsNegative() }
func (q Quantity) String() string        { return q.value.String() }

package stocktracker

import (
	"iter"
	"slices"
)

// Holding is one position accepted into a Portfolio.
//
// Price is a snapshot of the catalog price when the holding was recorded, and
// Value is computed once, at creation.
type Holding struct {
	Ticker   string
	Quantity Quantity
	Price    Money
	Value    Money
}

// NewHolding creates a Holding valued at quantity × price.
func NewHolding(ticker string, quantity Quantity, price Money) Holding {
	return Holding{
		Ticker:   normalizeTicker(ticker),
		Quantity: quantity,
		Price:    price,
		Value:    price.Mul(quantity),
	}
}

// Portfolio is the ordered list of holdings of a run and their total value.
//
// The total is accumulated as holdings are added, it is never recomputed from
// the list. The zero value is an empty portfolio.
type Portfolio struct {
	holdings []Holding
	total    Money
}

// NewPortfolio returns an empty portfolio whose total is expressed in currency.
func NewPortfolio(currency string) *Portfolio {
	return &Portfolio{total: M(0, currency)}
}

// Add appends h and adds its value to the total.
func (p *Portfolio) Add(h Holding) {
	p.holdings = append(p.holdings, h)
	p.total = p.total.Add(h.Value)
}

// Holdings iterates over holdings in entry order.
func (p *Portfolio) Holdings() iter.Seq2[int, Holding] {
	return slices.All(p.holdings)
}

// Holding returns the i-th holding, in entry order.
func (p *Portfolio) Holding(i int) Holding { return p.holdings[i] }

// Len returns the number of holdings.
func (p *Portfolio) Len() int { return len(p.holdings) }

// Total returns the total investment value.
func (p *Portfolio) Total() Money { return p.total }

package stocktracker

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"540", "₹540.00"},
		{"3840", "₹3,840.00"},
		{"0", "₹0.00"},
		{"-250", "-₹250.00"},
		{"412.355", "₹412.36"},
		{"412.354", "₹412.35"},
		{"-0.001", "₹0.00"},
		{"92233720368547758.07", "₹92,233,720,368,547,758.07"},
		{"18000000000000000000", "₹18,000,000,000,000,000,000.00"},
		{"-18000000000000000000.125", "-₹18,000,000,000,000,000,000.13"},
	}
	for _, tt := range tests {
		got := M(decimal.RequireFromString(tt.amount), "INR").String()
		if got != tt.want {
			t.Errorf("M(%s).String() = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	valid := map[string]string{
		"3":                     "3",
		"+3":                    "3",
		"-2":                    "-2",
		"0":                     "0",
		"99999999999999999999":  "99999999999999999999",
		"-99999999999999999999": "-99999999999999999999",
	}
	for in, want := range valid {
		q, err := ParseQuantity(in)
		if err != nil {
			t.Errorf("ParseQuantity(%q) error = %v", in, err)
			continue
		}
		if q.String() != want {
			t.Errorf("ParseQuantity(%q) = %s, want %s", in, q, want)
		}
	}

	for _, in := range []string{"", "-", "4.5", "4.0", "1e3", "0x10", "1_000", "three"} {
		if q, err := ParseQuantity(in); err == nil {
			t.Errorf("ParseQuantity(%q) = %s, want an error", in, q)
		}
	}
}

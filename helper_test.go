package stocktracker

import "strings"

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// script joins answers into a scripted interactive input.
func script(answers ...string) *strings.Reader {
	return strings.NewReader(strings.Join(answers, "\n") + "\n")
}

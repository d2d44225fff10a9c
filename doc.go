// Package stocktracker values a small stock portfolio entered by hand.
//
// It is the foundational logic of the `stk` command-line tool:
//   - Catalog: a fixed table of unit prices, built once per run and never
//     mutated. It can be the built-in table or a JSON price file.
//   - Collection: an interactive question/answer loop (see [Prompter] and
//     [Collect]) that turns tickers and quantities into [Holding] values.
//   - Portfolio: the ordered holdings and their running total.
//   - Export: serialization of a [Portfolio] to a CSV file or a plain text
//     report (see [Exporter]).
//
// All amounts are exact decimals; there is no floating point arithmetic
// between the price table and the exported files.
package stocktracker

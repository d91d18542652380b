package invoice

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Line is one invoice row. Qty and Price are kept as the raw strings the
// user last entered: the editable grid lets rows be retyped freely, so a
// cell can transiently hold something non-numeric. Coercion happens at
// recompute time, never silently.
type Line struct {
	Brand      string
	Ref        string // NDC#
	Qty        string
	Expiration string
	Condition  string
	Price      string
	Total      decimal.Decimal
}

// DataFormatError reports a quantity or price cell that could not be
// interpreted as a number. Row is zero-based.
type DataFormatError struct {
	Row   int
	Field string
	Value string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("line %d: %s %q is not numeric", e.Row+1, e.Field, e.Value)
}

// LineTotal computes qty × price for a single line without touching the
// stored Total.
func LineTotal(row int, l Line) (decimal.Decimal, error) {
	qty, err := parseCell(row, "quantity", l.Qty)
	if err != nil {
		return decimal.Zero, err
	}

	price, err := parseCell(row, "price", l.Price)
	if err != nil {
		return decimal.Zero, err
	}

	return qty.Mul(price), nil
}

// GrandTotal sums qty × price over all lines. It reads the cells, not the
// stored per-line totals, so a stale Total never skews the sum. An empty
// sequence yields zero.
func GrandTotal(lines []Line) (decimal.Decimal, error) {
	sum := decimal.Zero

	for i, l := range lines {
		total, err := LineTotal(i, l)
		if err != nil {
			return decimal.Zero, err
		}

		sum = sum.Add(total)
	}

	return sum, nil
}

func parseCell(row int, field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, &DataFormatError{Row: row, Field: field, Value: value}
	}

	return d, nil
}

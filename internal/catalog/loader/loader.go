// Package loader reads the price list into catalog entries. The source is
// either an Excel workbook or a CSV export of one; the column layout is
// detected from the header row rather than assumed, since hand-maintained
// price lists tend to grow leading notes and blank rows.
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stripbuyer/invoicer/internal/catalog"
)

// ErrUnavailable indicates the catalog source could not be loaded at all.
// Search is dead in the water without it, so callers should surface this
// at startup.
var ErrUnavailable = errors.New("catalog unavailable")

// Load reads the price list at path, dispatching on the file extension.
func Load(path string) ([]catalog.Entry, error) {
	var (
		rows [][]string
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("%w: unsupported catalog format %q", ErrUnavailable, filepath.Ext(path))
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return parseRows(rows)
}

// colIndex maps logical catalog fields to their column position.
type colIndex struct {
	brand, ref, typ, price int
}

// detectHeader scans rows for a header containing both a Brand and a Price
// column. Returns the mapping and the index of the header row.
func detectHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := colIndex{brand: -1, ref: -1, typ: -1, price: -1}

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))

			switch {
			case name == "brand":
				cols.brand = i
			case strings.HasPrefix(name, "ref") || strings.Contains(name, "ndc"):
				cols.ref = i
			case name == "type":
				cols.typ = i
			case name == "price":
				cols.price = i
			}
		}

		if cols.brand >= 0 && cols.price >= 0 {
			return cols, rowIdx, true
		}
	}

	return colIndex{}, 0, false
}

func parseRows(rows [][]string) ([]catalog.Entry, error) {
	cols, headerIdx, ok := detectHeader(rows)
	if !ok {
		return nil, fmt.Errorf("%w: no header row with Brand and Price columns", ErrUnavailable)
	}

	entries := make([]catalog.Entry, 0, len(rows)-headerIdx-1)

	for i, row := range rows[headerIdx+1:] {
		brand := cell(row, cols.brand)
		ref := cell(row, cols.ref)
		typ := cell(row, cols.typ)
		rawPrice := cell(row, cols.price)

		if brand == "" && ref == "" && typ == "" && rawPrice == "" {
			continue
		}

		price, err := parsePrice(rawPrice)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrUnavailable, headerIdx+i+2, err)
		}

		entries = append(entries, catalog.Entry{
			Brand: brand,
			Ref:   ref,
			Type:  typ,
			Price: price,
		})
	}

	return entries, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// parsePrice accepts the formats seen in real price lists: "10", "10.00",
// "$1,234.50". A blank cell loads as zero rather than failing the whole
// catalog.
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", ""))
	if s == "" {
		return decimal.Zero, nil
	}

	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse price %q: %v", s, err)
	}

	return price, nil
}

package loader

import (
	"encoding/csv"
	"fmt"
	"os"

	enc "github.com/stripbuyer/invoicer/internal/encoding"
)

// readCSV returns the raw cell grid of a CSV price list, decoding the
// source charset to UTF-8 first.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	utf8r, err := enc.NewUTF8Reader(f)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}

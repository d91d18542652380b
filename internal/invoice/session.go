package invoice

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stripbuyer/invoicer/internal/catalog"
)

// ErrInvalidQuantity rejects non-positive quantities on the
// add-by-selection path.
var ErrInvalidQuantity = fmt.Errorf("quantity must be a positive integer")

// Session is the invoice being built during one interactive session. It is
// created empty, mutated by a single actor, and discarded at session end;
// nothing here persists. The session exclusively owns its line slice —
// accessors return copies.
type Session struct {
	ID       uuid.UUID
	Date     time.Time
	Tracking string

	lines []Line
}

func NewSession() *Session {
	return &Session{
		ID:   uuid.New(),
		Date: time.Now(),
	}
}

// AddLine appends a line built from a catalog selection. Expiration and
// Condition start blank; the line total is computed immediately. Duplicate
// reference codes are legitimate separate lines and are never rejected.
func (s *Session) AddLine(e catalog.Entry, qty int) (Line, error) {
	if qty < 1 {
		return Line{}, ErrInvalidQuantity
	}

	line := Line{
		Brand: e.Brand,
		Ref:   e.Ref,
		Qty:   strconv.Itoa(qty),
		Price: e.Price.String(),
		Total: e.Price.Mul(decimal.NewFromInt(int64(qty))),
	}

	s.lines = append(s.lines, line)

	return line, nil
}

// Lines returns a copy of the current line sequence.
func (s *Session) Lines() []Line {
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)

	return lines
}

// ReplaceAll swaps in a wholly new line sequence, as produced by free-form
// grid edits. No coercion happens here; RecomputeTotals is where bad cells
// surface.
func (s *Session) ReplaceAll(lines []Line) {
	s.lines = make([]Line, len(lines))
	copy(s.lines, lines)
}

// RemoveLine deletes the line at index i, preserving order.
func (s *Session) RemoveLine(i int) error {
	if i < 0 || i >= len(s.lines) {
		return fmt.Errorf("no line at index %d", i)
	}

	s.lines = append(s.lines[:i], s.lines[i+1:]...)

	return nil
}

// RecomputeTotals reassigns every line's total to qty × price and returns
// the grand total. The pass is atomic: all cells are coerced before any
// total is written back, so a DataFormatError leaves the session exactly
// as it was.
func (s *Session) RecomputeTotals() (decimal.Decimal, error) {
	totals := make([]decimal.Decimal, len(s.lines))
	grand := decimal.Zero

	for i, l := range s.lines {
		total, err := LineTotal(i, l)
		if err != nil {
			return decimal.Zero, err
		}

		totals[i] = total
		grand = grand.Add(total)
	}

	for i := range s.lines {
		s.lines[i].Total = totals[i]
	}

	return grand, nil
}

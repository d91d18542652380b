package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stripbuyer/invoicer/internal/catalog"
	"github.com/stripbuyer/invoicer/internal/invoice"
)

var (
	acme = catalog.Entry{Brand: "Acme", Ref: "N123", Type: "Tablet", Price: decimal.RequireFromString("10.00")}
	beta = catalog.Entry{Brand: "Beta", Ref: "B456", Type: "Strip", Price: decimal.RequireFromString("5.00")}
)

func TestSession_AddLine(t *testing.T) {
	sess := invoice.NewSession()

	line, err := sess.AddLine(acme, 3)
	require.NoError(t, err)

	assert.Equal(t, "Acme", line.Brand)
	assert.Equal(t, "N123", line.Ref)
	assert.Equal(t, "3", line.Qty)
	assert.Empty(t, line.Expiration)
	assert.Empty(t, line.Condition)
	assert.Equal(t, "30.00", line.Total.StringFixed(2))

	_, err = sess.AddLine(beta, 2)
	require.NoError(t, err)

	grand, err := sess.RecomputeTotals()
	require.NoError(t, err)
	assert.Equal(t, "40.00", grand.StringFixed(2))
}

func TestSession_AddLine_InvalidQuantity(t *testing.T) {
	sess := invoice.NewSession()

	for _, qty := range []int{0, -1} {
		_, err := sess.AddLine(acme, qty)
		assert.ErrorIs(t, err, invoice.ErrInvalidQuantity)
	}

	assert.Empty(t, sess.Lines())
}

func TestSession_AddLine_DuplicatesAllowed(t *testing.T) {
	sess := invoice.NewSession()

	_, err := sess.AddLine(acme, 1)
	require.NoError(t, err)
	_, err = sess.AddLine(acme, 2)
	require.NoError(t, err)

	assert.Len(t, sess.Lines(), 2)
}

func TestSession_RecomputeAfterDirectEdit(t *testing.T) {
	sess := invoice.NewSession()

	_, err := sess.AddLine(acme, 3)
	require.NoError(t, err)
	_, err = sess.AddLine(beta, 2)
	require.NoError(t, err)

	// Edit the first line's quantity directly, bypassing AddLine.
	lines := sess.Lines()
	lines[0].Qty = "4"
	sess.ReplaceAll(lines)

	grand, err := sess.RecomputeTotals()
	require.NoError(t, err)
	assert.Equal(t, "50.00", grand.StringFixed(2))
	assert.Equal(t, "40.00", sess.Lines()[0].Total.StringFixed(2))
}

func TestSession_RecomputeIsIdempotent(t *testing.T) {
	sess := invoice.NewSession()

	_, err := sess.AddLine(acme, 3)
	require.NoError(t, err)

	first, err := sess.RecomputeTotals()
	require.NoError(t, err)
	firstLines := sess.Lines()

	second, err := sess.RecomputeTotals()
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.Equal(t, firstLines, sess.Lines())
}

func TestSession_RecomputeRejectsNonNumericAtomically(t *testing.T) {
	sess := invoice.NewSession()

	_, err := sess.AddLine(acme, 3)
	require.NoError(t, err)
	_, err = sess.AddLine(beta, 2)
	require.NoError(t, err)

	before := sess.Lines()

	lines := sess.Lines()
	lines[1].Qty = "abc"
	// Give the first line a stale total so a partial recompute would show.
	lines[0].Qty = "5"
	sess.ReplaceAll(lines)

	_, err = sess.RecomputeTotals()
	require.Error(t, err)

	var dfe *invoice.DataFormatError
	require.ErrorAs(t, err, &dfe)
	assert.Equal(t, 1, dfe.Row)
	assert.Equal(t, "quantity", dfe.Field)
	assert.Equal(t, "abc", dfe.Value)

	// No line total was reassigned by the failed pass.
	after := sess.Lines()
	assert.Equal(t, before[0].Total, after[0].Total)
	assert.Equal(t, before[1].Total, after[1].Total)
}

func TestSession_RemoveLine(t *testing.T) {
	sess := invoice.NewSession()

	_, err := sess.AddLine(acme, 1)
	require.NoError(t, err)
	_, err = sess.AddLine(beta, 1)
	require.NoError(t, err)

	require.NoError(t, sess.RemoveLine(0))

	lines := sess.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Beta", lines[0].Brand)

	assert.Error(t, sess.RemoveLine(5))
	assert.Error(t, sess.RemoveLine(-1))
}

func TestSession_LinesReturnsCopy(t *testing.T) {
	sess := invoice.NewSession()

	_, err := sess.AddLine(acme, 1)
	require.NoError(t, err)

	lines := sess.Lines()
	lines[0].Qty = "999"

	assert.Equal(t, "1", sess.Lines()[0].Qty)
}

func TestGrandTotal(t *testing.T) {
	tests := []struct {
		name    string
		lines   []invoice.Line
		want    string
		wantErr bool
	}{
		{
			name: "EmptyIsZero",
			want: "0.00",
		},
		{
			name: "SumsQtyTimesPrice",
			lines: []invoice.Line{
				{Qty: "3", Price: "10.00"},
				{Qty: "2", Price: "5"},
			},
			want: "40.00",
		},
		{
			name: "FractionalQuantityAccepted",
			lines: []invoice.Line{
				{Qty: "1.5", Price: "10"},
			},
			want: "15.00",
		},
		{
			name: "NonNumericPriceFails",
			lines: []invoice.Line{
				{Qty: "1", Price: "free"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := invoice.GrandTotal(tt.lines)

			if tt.wantErr {
				var dfe *invoice.DataFormatError
				require.ErrorAs(t, err, &dfe)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

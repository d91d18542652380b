package export_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/stripbuyer/invoicer/internal/catalog"
	exportHandler "github.com/stripbuyer/invoicer/internal/http/export"
	"github.com/stripbuyer/invoicer/internal/invoice"
	"github.com/stripbuyer/invoicer/internal/render"
)

func newTestServer(t *testing.T) (*httptest.Server, *invoice.Session) {
	t.Helper()

	sess := invoice.NewSession()
	svc := render.NewService(render.Footer{
		Carrier:       "UPS",
		PaymentLines:  []string{"Please Make Payment to Paypal"},
		BusinessLines: []string{"Strip Buyer Surplus LLC"},
	})

	router := chi.NewRouter()
	router.Route("/api/v1/export", exportHandler.NewHandler(svc, sess).Routes)

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	return ts, sess
}

func addLine(t *testing.T, sess *invoice.Session, brand, ref, price string, qty int) {
	t.Helper()

	_, err := sess.AddLine(catalog.Entry{
		Brand: brand, Ref: ref, Price: decimal.RequireFromString(price),
	}, qty)
	require.NoError(t, err)
}

func TestHandler_PDF(t *testing.T) {
	ts, sess := newTestServer(t)
	addLine(t, sess, "Acme", "N123", "10.00", 3)

	resp, err := http.Get(ts.URL + "/api/v1/export/pdf")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="invoice.pdf"`, resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
}

func TestHandler_XLSX(t *testing.T) {
	ts, sess := newTestServer(t)
	addLine(t, sess, "Acme", "N123", "10.00", 3)
	addLine(t, sess, "Beta", "B456", "5.00", 2)

	resp, err := http.Get(ts.URL + "/api/v1/export/xlsx")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="invoice.xlsx"`, resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	grand, err := f.GetCellValue("Invoice", "G7")
	require.NoError(t, err)
	assert.Equal(t, "40.00", grand)
}

func TestHandler_DataFormatError(t *testing.T) {
	ts, sess := newTestServer(t)
	addLine(t, sess, "Acme", "N123", "10.00", 1)

	lines := sess.Lines()
	lines[0].Price = "call for pricing"
	sess.ReplaceAll(lines)

	for _, path := range []string{"/api/v1/export/pdf", "/api/v1/export/xlsx"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
}

package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stripbuyer/invoicer/internal/catalog"
)

func testEntries() []catalog.Entry {
	return []catalog.Entry{
		{Brand: "Acme", Ref: "N123", Type: "Tablet", Price: decimal.RequireFromString("10.00")},
		{Brand: "Beta Labs", Ref: "B456", Type: "Strip", Price: decimal.RequireFromString("5.00")},
		{Brand: "Acme Plus", Ref: "N789", Type: "Strip", Price: decimal.RequireFromString("7.50")},
		{Brand: "", Ref: "X000", Type: "", Price: decimal.Zero},
	}
}

func TestService_Search(t *testing.T) {
	svc := catalog.NewService(testEntries())

	tests := []struct {
		name     string
		query    catalog.Query
		wantRefs []string
	}{
		{
			name:     "EmptyQueryReturnsAll",
			query:    catalog.Query{},
			wantRefs: []string{"N123", "B456", "N789", "X000"},
		},
		{
			name:     "BrandCaseInsensitive",
			query:    catalog.Query{Brand: "acme"},
			wantRefs: []string{"N123", "N789"},
		},
		{
			name:     "ConstraintsCombineWithAnd",
			query:    catalog.Query{Brand: "acme", Type: "strip"},
			wantRefs: []string{"N789"},
		},
		{
			name:     "RefSubstring",
			query:    catalog.Query{Ref: "45"},
			wantRefs: []string{"B456"},
		},
		{
			name:     "BlankFieldNeverMatchesConstraint",
			query:    catalog.Query{Brand: "a", Ref: "X000"},
			wantRefs: []string{},
		},
		{
			name:     "NoMatchIsEmptyNotError",
			query:    catalog.Query{Brand: "zzz"},
			wantRefs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Search(tt.query)

			refs := make([]string, 0, len(got))
			for _, e := range got {
				refs = append(refs, e.Ref)
			}

			// Order must follow catalog order, so compare as slices.
			assert.Equal(t, tt.wantRefs, refs)
		})
	}
}

func TestService_Search_Completeness(t *testing.T) {
	// Nothing left out of the results may also match all constraints.
	svc := catalog.NewService(testEntries())
	q := catalog.Query{Type: "strip"}

	got := svc.Search(q)
	require.Len(t, got, 2)

	matched := make(map[string]bool, len(got))
	for _, e := range got {
		matched[e.Ref] = true
	}

	for _, e := range svc.Entries() {
		if matched[e.Ref] {
			continue
		}

		assert.NotContains(t, []string{"Strip", "strip"}, e.Type)
	}
}

func TestService_Search_SingleEntryScenario(t *testing.T) {
	svc := catalog.NewService([]catalog.Entry{
		{Brand: "Acme", Ref: "N123", Type: "Tablet", Price: decimal.RequireFromString("10.00")},
	})

	for _, q := range []string{"acme", "ACME", "Acme", "cme"} {
		got := svc.Search(catalog.Query{Brand: q})
		require.Len(t, got, 1, "query %q", q)
		assert.Equal(t, "N123", got[0].Ref)
	}
}

func TestService_Find(t *testing.T) {
	svc := catalog.NewService(testEntries())

	e, ok := svc.Find("Acme", "N123")
	require.True(t, ok)
	assert.Equal(t, "Tablet", e.Type)

	// Exact match only: Find is fed from prior search results.
	_, ok = svc.Find("acme", "N123")
	assert.False(t, ok)

	_, ok = svc.Find("Acme", "nope")
	assert.False(t, ok)
}

package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Entry is one row of the price list. Entries are loaded once per session
// and never mutated.
type Entry struct {
	Brand string
	Ref   string // Ref# (NDC)
	Type  string
	Price decimal.Decimal
}

// Query holds the free-text search inputs. An empty field imposes no
// constraint; non-empty fields are matched as case-insensitive substrings
// and combine with AND.
type Query struct {
	Brand string
	Ref   string
	Type  string
}

// Service answers searches against an in-memory price list.
type Service struct {
	entries []Entry
}

func NewService(entries []Entry) *Service {
	return &Service{entries: entries}
}

// Entries returns the full catalog in load order.
func (s *Service) Entries() []Entry {
	return s.entries
}

// Search returns the entries matching all supplied constraints, preserving
// catalog order. An empty result is a valid outcome, not an error.
func (s *Service) Search(q Query) []Entry {
	results := make([]Entry, 0)

	for _, e := range s.entries {
		if matches(e, q) {
			results = append(results, e)
		}
	}

	return results
}

// Find looks up the first entry with the given brand and reference code.
// Used by the add-by-selection path, where both values come from a prior
// search result.
func (s *Service) Find(brand, ref string) (Entry, bool) {
	for _, e := range s.entries {
		if e.Brand == brand && e.Ref == ref {
			return e, true
		}
	}

	return Entry{}, false
}

func matches(e Entry, q Query) bool {
	return containsFold(e.Brand, q.Brand) &&
		containsFold(e.Ref, q.Ref) &&
		containsFold(e.Type, q.Type)
}

// containsFold reports whether s contains substr case-insensitively. An
// empty substr always matches; an empty s never matches a non-empty
// substr, so blank catalog cells fall out of constrained searches.
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}

	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

package statement

import (
	"sort"
	"strings"
	"time"
)

// PageSize is the fixed number of rows per statement page.
const PageSize = 10

// Page is one window of the filtered, sorted statement plus its pagination
// metadata. Page is the clamped 1-based page number actually returned.
type Page struct {
	Rows       []Transaction
	Total      int
	Page       int
	TotalPages int
}

// Apply runs the filter, sort and paginate pipeline. It is a pure function
// of its inputs: the source slice is never mutated, equal sort keys keep
// their input order, and an out-of-range page is clamped rather than
// rejected. Empty input yields an empty page with TotalPages 1.
func Apply(txs []Transaction, filter Filter, field SortField, dir Direction, page int) Page {
	filtered := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if filter == FilterAll || tx.Category == Category(filter) {
			filtered = append(filtered, tx)
		}
	}

	asc := comparator(field)
	sort.SliceStable(filtered, func(i, j int) bool {
		c := asc(filtered[i], filtered[j])
		if dir == Descending {
			c = -c
		}
		return c < 0
	})

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}

	return Page{
		Rows:       filtered[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

// comparator returns the ascending three-way comparison for a sort field.
// Descending is derived by sign flip in Apply.
func comparator(field SortField) func(a, b Transaction) int {
	switch field {
	case SortByAmount:
		return func(a, b Transaction) int {
			switch {
			case a.Amount < b.Amount:
				return -1
			case a.Amount > b.Amount:
				return 1
			default:
				return 0
			}
		}
	case SortByCategory:
		return func(a, b Transaction) int {
			return strings.Compare(string(a.Category), string(b.Category))
		}
	default: // SortByDate
		return func(a, b Transaction) int {
			return instant(a.Date).Compare(instant(b.Date))
		}
	}
}

// instant parses an ISO timestamp for comparison. Unparseable dates collapse
// to the zero instant so they sort together deterministically.
func instant(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Bare dates ("2024-01-15") appear in older ledger rows.
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}
		}
	}
	return t
}

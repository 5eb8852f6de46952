// Package statement is the read-only transaction history view: it projects
// raw ledger rows into signed view models and runs the filter, sort and
// paginate pipeline the dashboard renders from.
package statement

import (
	"fmt"
	"time"
)

// Category is the projected transaction category.
type Category string

const (
	CategoryPurchase Category = "Purchase"
	CategoryTopUp    Category = "Top-up"
)

// Filter narrows the list to one category. FilterAll keeps everything.
type Filter string

const (
	FilterAll      Filter = "All"
	FilterPurchase Filter = Filter(CategoryPurchase)
	FilterTopUp    Filter = Filter(CategoryTopUp)
)

// SortField selects the pipeline's sort key.
type SortField string

const (
	SortByDate     SortField = "date"
	SortByCategory SortField = "category"
	SortByAmount   SortField = "amount"
)

// Direction is the sort direction. Descending is the exact mirror of
// ascending, not a distinct comparator.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// RawTransaction is a row of native_transactions as the ledger produced it.
// Amount arrives either as a number or a numeric string, always an unsigned
// magnitude; Type is the external category tag.
type RawTransaction struct {
	ID        int64
	AccountID int64
	Type      string
	Amount    any
	CreatedAt time.Time
}

// Transaction is the projected view model: signed amount, typed category,
// ISO 8601 date.
type Transaction struct {
	ID       int64
	Date     string
	Amount   float64
	Category Category
}

// ParseFilter maps a query value onto a Filter. Empty means FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case "":
		return FilterAll, nil
	case FilterAll, FilterPurchase, FilterTopUp:
		return Filter(s), nil
	default:
		return "", fmt.Errorf("invalid filter %q", s)
	}
}

// ParseSortField maps a query value onto a SortField. Empty means date.
func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case "":
		return SortByDate, nil
	case SortByDate, SortByCategory, SortByAmount:
		return SortField(s), nil
	default:
		return "", fmt.Errorf("invalid sort field %q", s)
	}
}

// ParseDirection maps a query value onto a Direction. Empty means descending.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "":
		return Descending, nil
	case Ascending, Descending:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("invalid sort direction %q", s)
	}
}

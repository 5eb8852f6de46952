package statement

// ListState is the statement view state: active filter, sort key and
// direction, and the 1-based page. The page resets to 1 on any filter or
// sort change but survives a plain data refresh.
type ListState struct {
	Filter    Filter
	Sort      SortField
	Direction Direction
	Page      int
}

// NewListState returns the dashboard's initial view state: all categories,
// newest first, page 1.
func NewListState() ListState {
	return ListState{
		Filter:    FilterAll,
		Sort:      SortByDate,
		Direction: Descending,
		Page:      1,
	}
}

// Select applies a sort-column click: re-selecting the active field toggles
// the direction, a new field becomes active with direction descending.
// Either way the page resets.
func (s *ListState) Select(field SortField) {
	if s.Sort == field {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
	} else {
		s.Sort = field
		s.Direction = Descending
	}
	s.Page = 1
}

// SetFilter switches the category filter, resetting the page when the
// filter actually changes.
func (s *ListState) SetFilter(f Filter) {
	if s.Filter != f {
		s.Filter = f
		s.Page = 1
	}
}

// SetPage moves to a requested page. Clamping happens in Apply, not here.
func (s *ListState) SetPage(page int) {
	s.Page = page
}

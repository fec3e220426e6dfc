package core

import "time"

// ListFilter narrows a list operation by category and/or an inclusive date
// range. The zero value matches every record of an owner. An inverted range
// (StartDate after EndDate) is not an error, it simply matches nothing.
type ListFilter struct {
	Category  Category
	StartDate time.Time
	EndDate   time.Time
}

// IsZero reports whether no constraint is set.
func (f ListFilter) IsZero() bool {
	return f.Category == "" && f.StartDate.IsZero() && f.EndDate.IsZero()
}

// Validate rejects a filter carrying an unknown category. Date bounds are
// never rejected; an inverted range yields an empty result instead.
func (f ListFilter) Validate() error {
	if f.Category != "" && !f.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// Matches applies the filtering rule: category equality when set, then the
// inclusive date bounds.
func (f ListFilter) Matches(e Expense) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if !f.StartDate.IsZero() && e.Date.Before(f.StartDate) {
		return false
	}
	if !f.EndDate.IsZero() && e.Date.After(f.EndDate) {
		return false
	}
	return true
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a 1-indexed pagination window.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page number to at least 1 and bounds the size:
// non-positive sizes fall back to DefaultPageSize, oversized requests are
// capped at MaxPageSize.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset returns the number of matching records to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// PageCount returns ceil(total/size) for a normalized page size.
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

package core

import "time"

// CategoryTotal represents an amount aggregated by category.
type CategoryTotal struct {
	Category Category `json:"category"`
	Total    Money    `json:"total"`
}

// DayTotal represents an amount aggregated over one calendar day of a month.
type DayTotal struct {
	Day   int   `json:"day"`
	Total Money `json:"total"`
}

// SummarizeByCategory groups expenses by category and sums their amounts.
//
// The filter is applied first; when it carries no constraint at all, only
// expenses dated on now's calendar day (in now's location) are counted.
// Categories with no matching expense are omitted, and groups appear in the
// order their first expense appears in the input. Empty input yields an
// empty series.
func SummarizeByCategory(expenses []Expense, f ListFilter, now time.Time) []CategoryTotal {
	todayOnly := f.IsZero()
	var out []CategoryTotal
	index := make(map[Category]int)
	for _, e := range expenses {
		if todayOnly {
			if !sameDay(e.Date, now) {
				continue
			}
		} else if !f.Matches(e) {
			continue
		}
		if i, ok := index[e.Category]; ok {
			out[i].Total.Cents += e.Amount.Cents
			continue
		}
		index[e.Category] = len(out)
		out = append(out, CategoryTotal{Category: e.Category, Total: e.Amount})
	}
	return out
}

// DailySeries sums expense amounts per calendar day of the given month,
// producing a dense series: exactly daysIn(year, month) entries, days with
// no expense carrying a zero sum. Expenses outside the month are ignored.
func DailySeries(expenses []Expense, year int, month time.Month) []DayTotal {
	days := daysIn(year, month)
	out := make([]DayTotal, days)
	for i := range out {
		out[i].Day = i + 1
	}
	for _, e := range expenses {
		y, m, d := e.Date.Date()
		if y != year || m != month {
			continue
		}
		out[d-1].Total.Cents += e.Amount.Cents
	}
	return out
}

func daysIn(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

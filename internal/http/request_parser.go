package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Abpa007/Expense-Tracker/internal/core"
)

const dateLayout = "2006-01-02"

// parseListFilter reads category/startDate/endDate query parameters.
// Dates accept the plain YYYY-MM-DD form or full RFC 3339.
func parseListFilter(r *http.Request) (core.ListFilter, error) {
	var f core.ListFilter
	q := r.URL.Query()

	if v := strings.TrimSpace(q.Get("category")); v != "" {
		c := core.Category(v)
		if !c.Valid() {
			return f, fmt.Errorf("category %q: %w", v, core.ErrInvalidCategory)
		}
		f.Category = c
	}

	if v := strings.TrimSpace(q.Get("startDate")); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return f, fmt.Errorf("startDate: %w", err)
		}
		f.StartDate = t
	}

	if v := strings.TrimSpace(q.Get("endDate")); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return f, fmt.Errorf("endDate: %w", err)
		}
		// A bare date means the whole day, inclusive.
		if len(v) == len(dateLayout) {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		f.EndDate = t
	}

	return f, nil
}

// parsePage reads page/limit query parameters. Out-of-range values are
// clamped later by Page.Normalize, not rejected here.
func parsePage(r *http.Request) core.Page {
	q := r.URL.Query()
	var p core.Page
	if v := strings.TrimSpace(q.Get("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.Number = n
		}
	}
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.Size = n
		}
	}
	return p
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC 3339", v)
	}
	return t, nil
}

// parseYearMonth reads year/month query parameters, defaulting to now.
func parseYearMonth(r *http.Request, now time.Time) (int, time.Month, error) {
	year := now.Year()
	month := now.Month()
	q := r.URL.Query()

	if v := strings.TrimSpace(q.Get("year")); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1 {
			return 0, 0, fmt.Errorf("invalid year %q", v)
		}
		year = y
	}
	if v := strings.TrimSpace(q.Get("month")); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid month %q, want 1-12", v)
		}
		month = time.Month(m)
	}
	return year, month, nil
}

// sanitizeInput removes control characters and trims whitespace
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

package http

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Abpa007/Expense-Tracker/internal/core"
	"github.com/Abpa007/Expense-Tracker/internal/services"
)

func createExpense(t *testing.T, srv *Server, token string, body map[string]any) core.Expense {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/expenses", token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
	}
	return decode[core.Expense](t, rec)
}

func TestCreateExpense(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ada@example.com")

	created := createExpense(t, srv, token, map[string]any{
		"title":    "Groceries",
		"amount":   4.5,
		"category": "Food",
		"date":     "2025-03-05",
		"notes":    "weekly shop",
	})
	if created.ID == "" || created.Amount.Cents != 450 || created.Category != core.Food {
		t.Fatalf("unexpected expense %+v", created)
	}

	// Category defaults to Other, date defaults to now.
	created = createExpense(t, srv, token, map[string]any{
		"title":  "Misc",
		"amount": 2,
	})
	if created.Category != core.Other || created.Date.IsZero() {
		t.Fatalf("defaults not applied: %+v", created)
	}

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"amount": 5}},
		{"zero amount", map[string]any{"title": "x", "amount": 0}},
		{"negative amount", map[string]any{"title": "x", "amount": -1}},
		{"unknown category", map[string]any{"title": "x", "amount": 5, "category": "Gadgets"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv, http.MethodPost, "/api/expenses", token, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}

	rec := doJSON(t, srv, http.MethodPost, "/api/expenses", "", map[string]any{"title": "x", "amount": 5})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create returned %d", rec.Code)
	}
}

func TestListExpenses(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ada@example.com")
	other := registerUser(t, srv, "eve@example.com")

	for day := 1; day <= 12; day++ {
		createExpense(t, srv, token, map[string]any{
			"title":    fmt.Sprintf("expense %d", day),
			"amount":   1,
			"category": "Food",
			"date":     fmt.Sprintf("2025-03-%02d", day),
		})
	}
	createExpense(t, srv, other, map[string]any{"title": "not mine", "amount": 9, "date": "2025-03-05"})

	rec := doJSON(t, srv, http.MethodGet, "/api/expenses", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}
	result := decode[services.ListResult](t, rec)
	if result.Total != 12 || result.Page != 1 || result.Pages != 2 || len(result.Expenses) != 10 {
		t.Fatalf("unexpected page: total=%d page=%d pages=%d len=%d",
			result.Total, result.Page, result.Pages, len(result.Expenses))
	}
	if result.Expenses[0].Title != "expense 12" {
		t.Fatalf("expected newest first, got %q", result.Expenses[0].Title)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/expenses?page=2&limit=10", token, nil)
	result = decode[services.ListResult](t, rec)
	if len(result.Expenses) != 2 || result.Page != 2 {
		t.Fatalf("unexpected second page: %+v", result)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/expenses?startDate=2025-03-03&endDate=2025-03-05", token, nil)
	result = decode[services.ListResult](t, rec)
	if result.Total != 3 {
		t.Fatalf("expected 3 in range, got %d", result.Total)
	}

	// Inverted range is empty, not an error.
	rec = doJSON(t, srv, http.MethodGet, "/api/expenses?startDate=2025-03-05&endDate=2025-03-03", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("inverted range returned %d", rec.Code)
	}
	if result := decode[services.ListResult](t, rec); result.Total != 0 {
		t.Fatalf("expected empty result, got %d", result.Total)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/expenses?category=Gadgets", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid category filter returned %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/expenses/all", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list all returned %d", rec.Code)
	}
	if all := decode[[]core.Expense](t, rec); len(all) != 12 {
		t.Fatalf("expected 12 records, got %d", len(all))
	}
}

func TestUpdateExpense(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ada@example.com")
	other := registerUser(t, srv, "eve@example.com")

	created := createExpense(t, srv, token, map[string]any{
		"title":    "Groceries",
		"amount":   4.5,
		"category": "Food",
		"date":     "2025-03-05",
	})

	rec := doJSON(t, srv, http.MethodPut, "/api/expenses/"+created.ID, token, map[string]any{
		"title":  "Dinner out",
		"amount": 32,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", rec.Code, rec.Body.String())
	}
	updated := decode[core.Expense](t, rec)
	if updated.Title != "Dinner out" || updated.Amount.Cents != 3200 {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Category != core.Food {
		t.Fatalf("untouched field changed: %+v", updated)
	}

	// Empty body is a no-op.
	rec = doJSON(t, srv, http.MethodPut, "/api/expenses/"+created.ID, token, map[string]any{})
	if rec.Code != http.StatusOK {
		t.Fatalf("empty update returned %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPut, "/api/expenses/"+created.ID, other, map[string]any{"title": "hijacked"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign update returned %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPut, "/api/expenses/no-such-id", token, map[string]any{"title": "x"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing update returned %d", rec.Code)
	}
}

func TestDeleteExpense(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ada@example.com")
	other := registerUser(t, srv, "eve@example.com")

	created := createExpense(t, srv, token, map[string]any{"title": "Bus", "amount": 2})

	rec := doJSON(t, srv, http.MethodDelete, "/api/expenses/"+created.ID, other, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign delete returned %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodDelete, "/api/expenses/"+created.ID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete returned %d", rec.Code)
	}
	if msg := decode[messageResponse](t, rec); msg.Message == "" {
		t.Fatalf("expected message body, got %s", rec.Body.String())
	}

	rec = doJSON(t, srv, http.MethodDelete, "/api/expenses/"+created.ID, token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete returned %d", rec.Code)
	}
}

func TestCategorySummary(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ada@example.com")

	today := time.Now().Format(time.RFC3339)
	createExpense(t, srv, token, map[string]any{"title": "Lunch", "amount": 10, "category": "Food", "date": today})
	createExpense(t, srv, token, map[string]any{"title": "Snack", "amount": 2.5, "category": "Food", "date": today})
	createExpense(t, srv, token, map[string]any{"title": "Old bill", "amount": 99, "category": "Utilities", "date": "2024-01-15"})

	// No filter counts today's expenses only.
	rec := doJSON(t, srv, http.MethodGet, "/api/expenses/summary/categories", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary returned %d", rec.Code)
	}
	totals := decode[[]core.CategoryTotal](t, rec)
	if len(totals) != 1 || totals[0].Category != core.Food || totals[0].Total.Cents != 1250 {
		t.Fatalf("unexpected today summary %+v", totals)
	}

	// Explicit range reaches the older record.
	rec = doJSON(t, srv, http.MethodGet, "/api/expenses/summary/categories?startDate=2024-01-01&endDate=2024-12-31", token, nil)
	totals = decode[[]core.CategoryTotal](t, rec)
	if len(totals) != 1 || totals[0].Category != core.Utilities || totals[0].Total.Cents != 9900 {
		t.Fatalf("unexpected ranged summary %+v", totals)
	}

	// A mutation invalidates the cached summary.
	createExpense(t, srv, token, map[string]any{"title": "Taxi", "amount": 8, "category": "Transport", "date": today})
	rec = doJSON(t, srv, http.MethodGet, "/api/expenses/summary/categories", token, nil)
	totals = decode[[]core.CategoryTotal](t, rec)
	if len(totals) != 2 {
		t.Fatalf("expected refreshed summary with 2 groups, got %+v", totals)
	}
}

func TestDailySummary(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ada@example.com")

	createExpense(t, srv, token, map[string]any{"title": "Rent", "amount": 500, "date": "2025-02-01"})
	createExpense(t, srv, token, map[string]any{"title": "Dinner", "amount": 30, "date": "2025-02-14"})
	createExpense(t, srv, token, map[string]any{"title": "Dessert", "amount": 5, "date": "2025-02-14"})

	rec := doJSON(t, srv, http.MethodGet, "/api/expenses/summary/daily?year=2025&month=2", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("daily summary returned %d", rec.Code)
	}
	series := decode[[]core.DayTotal](t, rec)
	if len(series) != 28 {
		t.Fatalf("expected 28 days, got %d", len(series))
	}
	if series[0].Total.Cents != 50000 || series[13].Total.Cents != 3500 {
		t.Fatalf("unexpected sums: day1=%d day14=%d", series[0].Total.Cents, series[13].Total.Cents)
	}
	if series[1].Total.Cents != 0 {
		t.Fatalf("expected zero-filled day, got %d", series[1].Total.Cents)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/expenses/summary/daily?month=13", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid month returned %d", rec.Code)
	}
}

func TestExport(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ada@example.com")

	createExpense(t, srv, token, map[string]any{
		"title":    "Groceries",
		"amount":   4.5,
		"category": "Food",
		"date":     "2025-03-05",
	})

	rec := doJSON(t, srv, http.MethodGet, "/api/expenses/export", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export returned %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("unexpected disposition %q", cd)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "Title,  Amount,  ") {
		t.Fatalf("unexpected header: %q", body)
	}
	if !strings.Contains(body, "Groceries,  4.5,  Food,  '05/03/2025,  ") {
		t.Fatalf("row missing from export: %q", body)
	}
}

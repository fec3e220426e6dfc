package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abpa007/Expense-Tracker/internal/core"
)

func seed(t *testing.T, s *Store, owner, title string, cat core.Category, cents int64, date time.Time) core.Expense {
	t.Helper()
	e, err := s.Insert(context.Background(), core.Expense{
		Owner:    owner,
		Title:    title,
		Amount:   core.Money{Cents: cents},
		Category: cat,
		Date:     date,
	})
	if err != nil {
		t.Fatalf("insert %s: %v", title, err)
	}
	return e
}

func date(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestInsertAssignsIdentity(t *testing.T) {
	s := New()
	e := seed(t, s, "u1", "Coffee", core.Food, 450, date(1))
	if e.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
		t.Fatalf("expected store-managed timestamps")
	}

	got, err := s.Get(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Coffee" || got.Amount.Cents != 450 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestListFiltersAndPaginates(t *testing.T) {
	s := New()
	for d := 1; d <= 7; d++ {
		seed(t, s, "u1", "e", core.Food, 100, date(d))
	}
	seed(t, s, "u1", "other cat", core.Health, 100, date(4))
	seed(t, s, "u2", "foreign", core.Food, 100, date(4))

	ctx := context.Background()

	// Owner scoping plus category filter.
	page, total, err := s.List(ctx, "u1", core.ListFilter{Category: core.Food}, core.Page{Number: 1, Size: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 7 || len(page) != 7 {
		t.Fatalf("expected 7 food records, got total=%d len=%d", total, len(page))
	}
	for _, e := range page {
		if e.Owner != "u1" {
			t.Fatalf("cross-owner leakage: %+v", e)
		}
	}

	// Descending date order.
	for i := 1; i < len(page); i++ {
		if page[i].Date.After(page[i-1].Date) {
			t.Fatalf("records out of order at %d", i)
		}
	}

	// Pages are exhaustive and non-overlapping.
	seen := map[string]bool{}
	for n := 1; ; n++ {
		p, tot, err := s.List(ctx, "u1", core.ListFilter{Category: core.Food}, core.Page{Number: n, Size: 3})
		if err != nil {
			t.Fatalf("page %d: %v", n, err)
		}
		if len(p) == 0 {
			break
		}
		for _, e := range p {
			if seen[e.ID] {
				t.Fatalf("duplicate record %s on page %d", e.ID, n)
			}
			seen[e.ID] = true
		}
		if n > core.PageCount(tot, 3) {
			t.Fatalf("walked past the last page")
		}
	}
	if len(seen) != 7 {
		t.Fatalf("pages did not cover the filtered set: %d", len(seen))
	}
}

func TestListDateRange(t *testing.T) {
	s := New()
	seed(t, s, "u1", "a", core.Food, 100, date(5))
	seed(t, s, "u1", "b", core.Food, 100, date(10))
	seed(t, s, "u1", "c", core.Food, 100, date(15))

	ctx := context.Background()
	page, total, err := s.List(ctx, "u1", core.ListFilter{StartDate: date(5), EndDate: date(10)}, core.Page{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(page) != 2 {
		t.Fatalf("inclusive bounds should match 2, got %d", total)
	}

	// Inverted range yields empty, not an error.
	page, total, err = s.List(ctx, "u1", core.ListFilter{StartDate: date(10), EndDate: date(5)}, core.Page{})
	if err != nil {
		t.Fatalf("list inverted: %v", err)
	}
	if total != 0 || len(page) != 0 {
		t.Fatalf("inverted range should be empty, got %d", total)
	}
}

func TestListAllNewestCreatedFirst(t *testing.T) {
	s := New()
	first := seed(t, s, "u1", "first", core.Food, 100, date(20))
	time.Sleep(2 * time.Millisecond)
	second := seed(t, s, "u1", "second", core.Food, 100, date(1))

	all, err := s.ListAll(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	// Sorted by creation, not by date.
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatalf("expected creation order, got %v then %v", all[0].Title, all[1].Title)
	}
}

func TestReplaceAndDelete(t *testing.T) {
	s := New()
	ctx := context.Background()
	e := seed(t, s, "u1", "Coffee", core.Food, 450, date(1))

	e.Title = "Espresso"
	updated, err := s.Replace(ctx, e)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if updated.Title != "Espresso" {
		t.Fatalf("replace did not apply: %+v", updated)
	}
	if !updated.CreatedAt.Equal(e.CreatedAt) {
		t.Fatalf("replace must preserve createdAt")
	}

	if err := s.Delete(ctx, e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, e.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, e.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestUserStore(t *testing.T) {
	s := New()
	ctx := context.Background()

	u, err := s.InsertUser(ctx, core.User{Name: "Ada", Email: "Ada@Example.com", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	if u.ID == "" || u.Email != "ada@example.com" {
		t.Fatalf("unexpected user %+v", u)
	}

	if _, err := s.InsertUser(ctx, core.User{Name: "Eve", Email: "ADA@example.com"}); !errors.Is(err, core.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	byEmail, err := s.UserByEmail(ctx, "ada@example.COM")
	if err != nil || byEmail.ID != u.ID {
		t.Fatalf("lookup by email failed: %v", err)
	}
	byID, err := s.UserByID(ctx, u.ID)
	if err != nil || byID.Email != u.Email {
		t.Fatalf("lookup by id failed: %v", err)
	}
	if _, err := s.UserByID(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

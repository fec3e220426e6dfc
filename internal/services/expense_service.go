// Package services implements the operations behind the HTTP handlers:
// validation, ownership checks, and store orchestration.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Abpa007/Expense-Tracker/internal/core"
	"github.com/Abpa007/Expense-Tracker/internal/store"
)

// ExpenseService owns every expense operation. The owner argument always
// comes from the verified identity, never from a request payload.
type ExpenseService struct {
	store store.ExpenseStore
}

func NewExpenseService(st store.ExpenseStore) *ExpenseService {
	return &ExpenseService{store: st}
}

// CreateParams carries the client-supplied fields of an add request.
type CreateParams struct {
	Title    string
	Amount   core.Money
	Category core.Category
	Date     time.Time
	Notes    string
}

// UpdateParams carries a partial update: nil fields keep their prior values.
type UpdateParams struct {
	Title    *string
	Amount   *core.Money
	Category *core.Category
	Date     *time.Time
	Notes    *string
}

// ListResult is the filtered/paginated list contract.
type ListResult struct {
	Expenses []core.Expense `json:"expenses"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	Pages    int            `json:"pages"`
}

// Create validates the fields and inserts a record owned by owner. The date
// defaults to the current instant when the caller omits it.
func (s *ExpenseService) Create(ctx context.Context, owner string, p CreateParams) (core.Expense, error) {
	if owner == "" {
		return core.Expense{}, core.ErrUnauthorized
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	if p.Category == "" {
		p.Category = core.Other
	}

	e := core.Expense{
		Owner:    owner,
		Title:    p.Title,
		Amount:   p.Amount,
		Category: p.Category,
		Date:     p.Date,
		Notes:    p.Notes,
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}

	created, err := s.store.Insert(ctx, e)
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense created",
		"expense_id", created.ID,
		"amount_cents", created.Amount.Cents,
		"category", created.Category,
		"component", "expense_service",
		"operation", "create")

	return created, nil
}

// Update resolves the record, checks ownership, then applies only the fields
// present in params. An all-nil params is a no-op that still returns the
// current record.
func (s *ExpenseService) Update(ctx context.Context, owner, id string, p UpdateParams) (core.Expense, error) {
	if owner == "" {
		return core.Expense{}, core.ErrUnauthorized
	}

	cur, err := s.store.Get(ctx, id)
	if err != nil {
		return core.Expense{}, err
	}
	if cur.Owner != owner {
		return core.Expense{}, core.ErrForbidden
	}

	if p.Title != nil {
		cur.Title = *p.Title
	}
	if p.Amount != nil {
		cur.Amount = *p.Amount
	}
	if p.Category != nil {
		cur.Category = *p.Category
	}
	if p.Date != nil {
		cur.Date = *p.Date
	}
	if p.Notes != nil {
		cur.Notes = *p.Notes
	}
	if err := cur.Validate(); err != nil {
		return core.Expense{}, err
	}

	updated, err := s.store.Replace(ctx, cur)
	if err != nil {
		return core.Expense{}, fmt.Errorf("replace expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense updated",
		"expense_id", updated.ID,
		"component", "expense_service",
		"operation", "update")

	return updated, nil
}

// Remove resolves the record, checks ownership, and deletes it permanently.
func (s *ExpenseService) Remove(ctx context.Context, owner, id string) error {
	if owner == "" {
		return core.ErrUnauthorized
	}

	cur, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if cur.Owner != owner {
		return core.ErrForbidden
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense deleted",
		"expense_id", id,
		"component", "expense_service",
		"operation", "delete")

	return nil
}

// List resolves the filtered, paginated window plus the page bookkeeping.
// An unknown category in the filter is rejected up front.
func (s *ExpenseService) List(ctx context.Context, owner string, f core.ListFilter, p core.Page) (ListResult, error) {
	if owner == "" {
		return ListResult{}, core.ErrUnauthorized
	}
	if err := f.Validate(); err != nil {
		return ListResult{}, err
	}

	p = p.Normalize()
	expenses, total, err := s.store.List(ctx, owner, f, p)
	if err != nil {
		return ListResult{}, fmt.Errorf("list expenses: %w", err)
	}
	if expenses == nil {
		expenses = []core.Expense{}
	}

	return ListResult{
		Expenses: expenses,
		Total:    total,
		Page:     p.Number,
		Pages:    core.PageCount(total, p.Size),
	}, nil
}

// ListAll is the simpler contract: every record of the owner, most recently
// created first.
func (s *ExpenseService) ListAll(ctx context.Context, owner string) ([]core.Expense, error) {
	if owner == "" {
		return nil, core.ErrUnauthorized
	}
	expenses, err := s.store.ListAll(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list all expenses: %w", err)
	}
	if expenses == nil {
		expenses = []core.Expense{}
	}
	return expenses, nil
}

// Package store defines the ports the persistence adapters implement.
package store

import (
	"context"

	"github.com/Abpa007/Expense-Tracker/internal/core"
)

type (
	// ExpenseStore is the durable collection of expense records. Stores
	// assign ids and timestamps on insert and bump updatedAt on replace.
	// Missing ids surface as core.ErrNotFound.
	ExpenseStore interface {
		Insert(ctx context.Context, e core.Expense) (core.Expense, error)
		Get(ctx context.Context, id string) (core.Expense, error)
		Replace(ctx context.Context, e core.Expense) (core.Expense, error)
		Delete(ctx context.Context, id string) error

		// List returns one pagination window of the owner's records
		// matching the filter, newest date first (creation-order ties),
		// plus the total match count ignoring pagination.
		List(ctx context.Context, owner string, f core.ListFilter, p core.Page) ([]core.Expense, int, error)

		// ListAll is the simpler contract: every record of the owner,
		// most recently created first.
		ListAll(ctx context.Context, owner string) ([]core.Expense, error)
	}

	// UserStore persists registered users. Duplicate emails surface as
	// core.ErrEmailTaken, missing users as core.ErrNotFound.
	UserStore interface {
		InsertUser(ctx context.Context, u core.User) (core.User, error)
		UserByEmail(ctx context.Context, email string) (core.User, error)
		UserByID(ctx context.Context, id string) (core.User, error)
	}

	// Store bundles both ports; the backend factory hands one to the server.
	Store interface {
		ExpenseStore
		UserStore
	}
)

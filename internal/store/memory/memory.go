// Package memory provides an in-memory store with the same semantics as the
// SQLite repository, for tests and the memory backend.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Abpa007/Expense-Tracker/internal/core"
)

type Store struct {
	mu       sync.Mutex
	expenses []core.Expense
	users    []core.User
}

func New() *Store {
	return &Store{}
}

func (s *Store) Insert(_ context.Context, e core.Expense) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	s.expenses = append(s.expenses, e)
	return e, nil
}

func (s *Store) Get(_ context.Context, id string) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return core.Expense{}, core.ErrNotFound
}

func (s *Store) Replace(_ context.Context, e core.Expense) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cur := range s.expenses {
		if cur.ID == e.ID {
			e.CreatedAt = cur.CreatedAt
			e.UpdatedAt = time.Now()
			s.expenses[i] = e
			return e, nil
		}
	}
	return core.Expense{}, core.ErrNotFound
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.expenses {
		if e.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return nil
		}
	}
	return core.ErrNotFound
}

func (s *Store) List(_ context.Context, owner string, f core.ListFilter, p core.Page) ([]core.Expense, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []core.Expense
	for _, e := range s.expenses {
		if e.Owner == owner && f.Matches(e) {
			matched = append(matched, e)
		}
	}
	// Newest date first; the stable sort keeps insertion order for ties.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	total := len(matched)
	p = p.Normalize()
	start := p.Offset()
	if start >= total {
		return []core.Expense{}, total, nil
	}
	end := start + p.Size
	if end > total {
		end = total
	}
	page := make([]core.Expense, end-start)
	copy(page, matched[start:end])
	return page, total, nil
}

func (s *Store) ListAll(_ context.Context, owner string) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Expense, 0)
	for _, e := range s.expenses {
		if e.Owner == owner {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) InsertUser(_ context.Context, u core.User) (core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(u.Email)
	for _, cur := range s.users {
		if cur.Email == email {
			return core.User{}, core.ErrEmailTaken
		}
	}
	u.ID = uuid.NewString()
	u.Email = email
	u.CreatedAt = time.Now()
	s.users = append(s.users, u)
	return u, nil
}

func (s *Store) UserByEmail(_ context.Context, email string) (core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(email)
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return core.User{}, core.ErrNotFound
}

func (s *Store) UserByID(_ context.Context, id string) (core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return core.User{}, core.ErrNotFound
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Abpa007/Expense-Tracker/internal/auth"
	"github.com/Abpa007/Expense-Tracker/internal/core"
	"github.com/Abpa007/Expense-Tracker/internal/log"
	"github.com/Abpa007/Expense-Tracker/internal/services"
)

type expenseRequest struct {
	Title    *string     `json:"title"`
	Amount   *core.Money `json:"amount"`
	Category *string     `json:"category"`
	Date     *string     `json:"date"`
	Notes    *string     `json:"notes"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	user, err := auth.UserFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	var p services.CreateParams
	if req.Title != nil {
		p.Title = sanitizeInput(*req.Title)
	}
	if req.Amount != nil {
		p.Amount = *req.Amount
	}
	if req.Category != nil {
		c, err := core.ParseCategory(*req.Category)
		if err != nil {
			writeError(w, r, err)
			return
		}
		p.Category = c
	}
	if req.Date != nil {
		t, err := parseDate(*req.Date)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
		p.Date = t
	}
	if req.Notes != nil {
		p.Notes = sanitizeInput(*req.Notes)
	}

	created, err := s.expenses.Create(r.Context(), user.ID, p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateSummaries(user.ID)
	log.FromContext(r.Context()).InfoContext(r.Context(), "Expense created",
		log.FieldOperation, log.OpCreate,
		log.FieldOwner, user.ID,
		log.FieldExpenseID, created.ID,
		log.FieldAmountCents, created.Amount.Cents,
		log.FieldCategory, created.Category.String())
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	user, err := auth.UserFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	f, err := parseListFilter(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	result, err := s.expenses.List(r.Context(), user.ID, f, parsePage(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListAllExpenses(w http.ResponseWriter, r *http.Request) {
	user, err := auth.UserFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	expenses, err := s.expenses.ListAll(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	user, err := auth.UserFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	var p services.UpdateParams
	if req.Title != nil {
		title := sanitizeInput(*req.Title)
		p.Title = &title
	}
	p.Amount = req.Amount
	if req.Category != nil {
		c, err := core.ParseCategory(*req.Category)
		if err != nil {
			writeError(w, r, err)
			return
		}
		p.Category = &c
	}
	if req.Date != nil {
		t, err := parseDate(*req.Date)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
		p.Date = &t
	}
	if req.Notes != nil {
		notes := sanitizeInput(*req.Notes)
		p.Notes = &notes
	}

	updated, err := s.expenses.Update(r.Context(), user.ID, r.PathValue("id"), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateSummaries(user.ID)
	log.FromContext(r.Context()).InfoContext(r.Context(), "Expense updated",
		log.FieldOperation, log.OpUpdate,
		log.FieldOwner, user.ID,
		log.FieldExpenseID, updated.ID)
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	user, err := auth.UserFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	id := r.PathValue("id")
	if err := s.expenses.Remove(r.Context(), user.ID, id); err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateSummaries(user.ID)
	log.FromContext(r.Context()).InfoContext(r.Context(), "Expense deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldOwner, user.ID,
		log.FieldExpenseID, id)
	writeJSON(w, http.StatusOK, messageResponse{Message: "expense deleted"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	// A cheap list against a reserved owner doubles as a store probe.
	if _, err := s.expenses.ListAll(ctx, "readiness-probe"); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "store unavailable"})
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

package http

import (
	"net/http"
	"time"

	"github.com/Abpa007/Expense-Tracker/internal/auth"
	"github.com/Abpa007/Expense-Tracker/internal/export"
	"github.com/Abpa007/Expense-Tracker/internal/log"
)

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
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

	log.FromContext(r.Context()).InfoContext(r.Context(), "Expenses exported",
		log.FieldOperation, log.OpExport,
		log.FieldOwner, user.ID,
		"count", len(expenses))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(time.Now())+`"`)
	_, _ = w.Write([]byte(export.CSV(expenses)))
}

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Abpa007/Expense-Tracker/internal/auth"
	"github.com/Abpa007/Expense-Tracker/internal/core"
	"github.com/Abpa007/Expense-Tracker/internal/log"
)

func (s *Server) handleCategorySummary(w http.ResponseWriter, r *http.Request) {
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

	key := categoryCacheKey(user.ID, f)
	if data, found := s.categoryCache.Get(key); found {
		log.FromContext(r.Context()).DebugContext(r.Context(), "Category summary cache hit",
			log.FieldOwner, user.ID)
		writeJSON(w, http.StatusOK, data)
		return
	}

	expenses, err := s.expenses.ListAll(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	totals := core.SummarizeByCategory(expenses, f, time.Now())
	if totals == nil {
		totals = []core.CategoryTotal{}
	}

	s.categoryCache.Set(key, totals)
	writeJSON(w, http.StatusOK, totals)
}

func (s *Server) handleDailySummary(w http.ResponseWriter, r *http.Request) {
	user, err := auth.UserFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	year, month, err := parseYearMonth(r, time.Now())
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	key := dailyCacheKey(user.ID, year, month)
	if data, found := s.dailyCache.Get(key); found {
		log.FromContext(r.Context()).DebugContext(r.Context(), "Daily summary cache hit",
			log.FieldOwner, user.ID)
		writeJSON(w, http.StatusOK, data)
		return
	}

	expenses, err := s.expenses.ListAll(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	series := core.DailySeries(expenses, year, month)

	s.dailyCache.Set(key, series)
	writeJSON(w, http.StatusOK, series)
}

func categoryCacheKey(owner string, f core.ListFilter) string {
	key := owner + ":categories:" + f.Category.String()
	if !f.StartDate.IsZero() {
		key += ":" + f.StartDate.Format(time.RFC3339Nano)
	}
	if !f.EndDate.IsZero() {
		key += ":" + f.EndDate.Format(time.RFC3339Nano)
	}
	if f.IsZero() {
		// Today-only summaries roll over at midnight; key them by day.
		key += ":" + time.Now().Format("2006-01-02")
	}
	return key
}

func dailyCacheKey(owner string, year int, month time.Month) string {
	return owner + ":daily:" + strconv.Itoa(year) + "-" + strconv.Itoa(int(month))
}

// invalidateSummaries drops every cached summary of the owner, called on
// each mutation.
func (s *Server) invalidateSummaries(owner string) {
	s.categoryCache.DeletePrefix(owner + ":")
	s.dailyCache.DeletePrefix(owner + ":")
}

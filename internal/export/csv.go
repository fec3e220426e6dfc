// Package export renders expense lists as downloadable CSV.
package export

import (
	"strings"
	"time"

	"github.com/Abpa007/Expense-Tracker/internal/core"
)

// separator keeps the padded form the original exports used, so
// spreadsheets that imported the old files keep parsing the new ones.
const separator = ",  "

var headers = []string{"Title", "Amount", "Category", "Date", "Notes", "Created At", "Updated At"}

// CSV renders the expenses as a CSV document. Every line, header
// included, carries a trailing separator, and date cells are prefixed
// with a quote so spreadsheet apps treat them as text.
func CSV(expenses []core.Expense) string {
	lines := make([]string, 0, len(expenses)+1)
	lines = append(lines, strings.Join(headers, separator)+separator)

	for _, e := range expenses {
		row := []string{
			e.Title,
			e.Amount.String(),
			string(e.Category),
			dateCell(e.Date),
			e.Notes,
			dateCell(e.CreatedAt),
			dateCell(e.UpdatedAt),
		}
		for i, cell := range row {
			row[i] = strings.TrimSpace(cell)
		}
		lines = append(lines, strings.Join(row, separator)+separator)
	}

	return strings.Join(lines, "\n")
}

func dateCell(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return "'" + t.Format("02/01/2006")
}

// Filename returns the attachment name for an export taken at t.
func Filename(t time.Time) string {
	return "expenses-" + t.Format("2006-01-02") + ".csv"
}

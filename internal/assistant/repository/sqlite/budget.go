package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	repo "personal-assistant/internal/assistant/repository"
	"personal-assistant/internal/model"
)

const entryColumns = `id, description, amount, category, type, date, created_at`

// CreateEntry inserts a new budget entry and returns the created entity.
func (r *implRepository) CreateEntry(ctx context.Context, opt repo.CreateEntryOptions) (model.BudgetEntry, error) {
	entry := model.BudgetEntry{
		ID:          uuid.NewString(),
		Description: opt.Description,
		Amount:      opt.Amount,
		Category:    opt.Category,
		Type:        opt.Type,
		Date:        opt.Date,
		CreatedAt:   time.Now().UTC(),
	}

	const query = `
		INSERT INTO budget_entries (id, description, amount, category, type, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.Description, entry.Amount, entry.Category, string(entry.Type), entry.Date, entry.CreatedAt,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEntry"), err)
		return model.BudgetEntry{}, repo.ErrFailedToInsert
	}
	return entry, nil
}

// ListEntries returns budget entries matching the options, newest date first.
func (r *implRepository) ListEntries(ctx context.Context, opt repo.ListEntriesOptions) ([]model.BudgetEntry, error) {
	conds := []string{"1=1"}
	args := []any{}

	if opt.Month != "" {
		conds = append(conds, "date LIKE ?")
		args = append(args, opt.Month+"%")
	}
	if opt.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, string(opt.Type))
	}

	query := fmt.Sprintf(
		`SELECT %s FROM budget_entries WHERE %s ORDER BY date DESC, created_at DESC`,
		entryColumns, strings.Join(conds, " AND "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEntries"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	entries := make([]model.BudgetEntry, 0)
	for rows.Next() {
		var (
			entry     model.BudgetEntry
			category  sql.NullString
			entryType string
		)
		if err := rows.Scan(&entry.ID, &entry.Description, &entry.Amount, &category, &entryType, &entry.Date, &entry.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEntries"), err)
			return nil, repo.ErrFailedToList
		}
		entry.Category = category.String
		entry.Type = model.EntryType(entryType)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEntries"), err)
		return nil, repo.ErrFailedToList
	}
	return entries, nil
}

// SummarizeMonth aggregates income, expenses, and the per-category expense
// breakdown for one "2006-01" month.
func (r *implRepository) SummarizeMonth(ctx context.Context, month string) (model.BudgetSummary, error) {
	summary := model.BudgetSummary{ExpenseCategories: make(map[string]float64)}
	pattern := month + "%"

	const totalsQuery = `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income'  THEN amount END), 0),
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount END), 0)
		FROM budget_entries WHERE date LIKE ?`

	err := r.db.QueryRowContext(ctx, totalsQuery, pattern).Scan(&summary.TotalIncome, &summary.TotalExpenses)
	if err != nil {
		r.l.Errorf(ctx, "%s totals: %v", r.dsn("SummarizeMonth"), err)
		return model.BudgetSummary{}, repo.ErrFailedToGet
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpenses

	const categoriesQuery = `
		SELECT COALESCE(category, ''), SUM(amount)
		FROM budget_entries
		WHERE type = 'expense' AND date LIKE ?
		GROUP BY category`

	rows, err := r.db.QueryContext(ctx, categoriesQuery, pattern)
	if err != nil {
		r.l.Errorf(ctx, "%s categories: %v", r.dsn("SummarizeMonth"), err)
		return model.BudgetSummary{}, repo.ErrFailedToGet
	}
	defer rows.Close()

	for rows.Next() {
		var (
			category string
			total    float64
		)
		if err := rows.Scan(&category, &total); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("SummarizeMonth"), err)
			return model.BudgetSummary{}, repo.ErrFailedToGet
		}
		summary.ExpenseCategories[category] = total
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("SummarizeMonth"), err)
		return model.BudgetSummary{}, repo.ErrFailedToGet
	}
	return summary, nil
}

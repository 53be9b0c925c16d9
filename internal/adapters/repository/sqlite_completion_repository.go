package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
)

type SQLiteCompletionRepository struct {
	db *sqlx.DB
}

func NewSQLiteCompletionRepository(db *sqlx.DB) *SQLiteCompletionRepository {
	return &SQLiteCompletionRepository{db: db}
}

func (r *SQLiteCompletionRepository) Create(ctx context.Context, c *domain.Completion) error {
	query := `
		INSERT INTO completions (id, habit_name, completion_date)
		VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, c.ID, c.HabitName, c.Date)
	if err != nil {
		if isConstraint(err, sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY) {
			return domain.ErrCompletionConflict
		}
		if isConstraint(err, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY) {
			return domain.ErrHabitNotFound
		}
		return fmt.Errorf("failed to insert completion: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepository) Delete(ctx context.Context, habitName, date string) error {
	query := `DELETE FROM completions WHERE habit_name = ? AND completion_date = ?`

	res, err := r.db.ExecContext(ctx, query, habitName, date)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCompletionNotFound
	}
	return nil
}

func (r *SQLiteCompletionRepository) DeleteAllForHabit(ctx context.Context, habitName string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM completions WHERE habit_name = ?`, habitName)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepository) ListDates(ctx context.Context, habitName string) ([]string, error) {
	dates := []string{}
	query := `SELECT completion_date FROM completions WHERE habit_name = ?`

	if err := r.db.SelectContext(ctx, &dates, query, habitName); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return dates, nil
}

func (r *SQLiteCompletionRepository) ListInRange(ctx context.Context, start, end string) ([]*domain.Completion, error) {
	completions := []*domain.Completion{}
	query := `
		SELECT id, habit_name, completion_date FROM completions
		WHERE completion_date >= ? AND completion_date <= ?
		ORDER BY completion_date ASC, habit_name ASC`

	if err := r.db.SelectContext(ctx, &completions, query, start, end); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return completions, nil
}

func (r *SQLiteCompletionRepository) Exists(ctx context.Context, habitName, date string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM completions WHERE habit_name = ? AND completion_date = ?`

	if err := r.db.GetContext(ctx, &count, query, habitName, date); err != nil {
		return false, fmt.Errorf("existence check failed: %w", err)
	}
	return count > 0, nil
}

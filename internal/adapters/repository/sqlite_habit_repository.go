package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
)

// SQLiteHabitRepository backs the tracker with a single local database file,
// the way the original single-user deployments ran it.
type SQLiteHabitRepository struct {
	db *sqlx.DB
}

func NewSQLiteHabitRepository(db *sqlx.DB) *SQLiteHabitRepository {
	return &SQLiteHabitRepository{db: db}
}

func isConstraint(err error, codes ...int) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	for _, code := range codes {
		if sqliteErr.Code() == code {
			return true
		}
	}
	return false
}

func (r *SQLiteHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	query := `
		INSERT INTO habits (name, description, periodicity, created_at)
		VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, h.Name, h.Description, h.Periodicity, h.CreatedAt)
	if err != nil {
		if isConstraint(err, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE) {
			return domain.ErrHabitConflict
		}
		return fmt.Errorf("failed to insert habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepository) GetByName(ctx context.Context, name string) (*domain.Habit, error) {
	var h domain.Habit
	query := `SELECT name, description, periodicity, created_at FROM habits WHERE name = ?`

	if err := r.db.GetContext(ctx, &h, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &h, nil
}

func (r *SQLiteHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	habits := []*domain.Habit{}
	query := `SELECT name, description, periodicity, created_at FROM habits ORDER BY name ASC`

	if err := r.db.SelectContext(ctx, &habits, query); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return habits, nil
}

func (r *SQLiteHabitRepository) ListNames(ctx context.Context) ([]string, error) {
	names := []string{}
	query := `SELECT name FROM habits ORDER BY name ASC`

	if err := r.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return names, nil
}

func (r *SQLiteHabitRepository) ListByPeriodicity(ctx context.Context, p domain.Periodicity) ([]*domain.Habit, error) {
	habits := []*domain.Habit{}
	query := `
		SELECT name, description, periodicity, created_at FROM habits
		WHERE periodicity = ?
		ORDER BY name ASC`

	if err := r.db.SelectContext(ctx, &habits, query, p); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return habits, nil
}

func (r *SQLiteHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	query := `UPDATE habits SET description = ?, periodicity = ? WHERE name = ?`

	res, err := r.db.ExecContext(ctx, query, h.Description, h.Periodicity, h.Name)
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}

func (r *SQLiteHabitRepository) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}

func (r *SQLiteHabitRepository) Exists(ctx context.Context, name string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT count(*) FROM habits WHERE name = ?`, name); err != nil {
		return false, fmt.Errorf("existence check failed: %w", err)
	}
	return count > 0, nil
}

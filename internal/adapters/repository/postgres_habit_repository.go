package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
)

// postgres error codes, https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pgErrorCode extracts the postgres error code from an error returned by the
// pgx stdlib driver. The driver surfaces *pgconn.PgError, possibly wrapped.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

type PostgresHabitRepository struct {
	db *sqlx.DB
}

func NewPostgresHabitRepository(db *sqlx.DB) *PostgresHabitRepository {
	return &PostgresHabitRepository{db: db}
}

func (r *PostgresHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	query := `
		INSERT INTO habits (name, description, periodicity, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, h.Name, h.Description, h.Periodicity, h.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return domain.ErrHabitConflict
		}
		return fmt.Errorf("failed to insert habit: %w", err)
	}
	return nil
}

func (r *PostgresHabitRepository) GetByName(ctx context.Context, name string) (*domain.Habit, error) {
	var h domain.Habit
	query := `SELECT name, description, periodicity, created_at FROM habits WHERE name = $1`

	if err := r.db.GetContext(ctx, &h, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &h, nil
}

func (r *PostgresHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	habits := []*domain.Habit{}
	query := `SELECT name, description, periodicity, created_at FROM habits ORDER BY name ASC`

	if err := r.db.SelectContext(ctx, &habits, query); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return habits, nil
}

func (r *PostgresHabitRepository) ListNames(ctx context.Context) ([]string, error) {
	names := []string{}
	query := `SELECT name FROM habits ORDER BY name ASC`

	if err := r.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return names, nil
}

func (r *PostgresHabitRepository) ListByPeriodicity(ctx context.Context, p domain.Periodicity) ([]*domain.Habit, error) {
	habits := []*domain.Habit{}
	query := `
		SELECT name, description, periodicity, created_at FROM habits
		WHERE periodicity = $1
		ORDER BY name ASC`

	if err := r.db.SelectContext(ctx, &habits, query, p); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return habits, nil
}

func (r *PostgresHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	query := `UPDATE habits SET description = $1, periodicity = $2 WHERE name = $3`

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

func (r *PostgresHabitRepository) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE name = $1`, name)
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

func (r *PostgresHabitRepository) Exists(ctx context.Context, name string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT count(*) FROM habits WHERE name = $1`, name); err != nil {
		return false, fmt.Errorf("existence check failed: %w", err)
	}
	return count > 0, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
)

type PostgresCompletionRepository struct {
	db *sqlx.DB
}

func NewPostgresCompletionRepository(db *sqlx.DB) *PostgresCompletionRepository {
	return &PostgresCompletionRepository{db: db}
}

func (r *PostgresCompletionRepository) Create(ctx context.Context, c *domain.Completion) error {
	query := `
		INSERT INTO completions (id, habit_name, completion_date)
		VALUES (:id, :habit_name, :completion_date)`

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return domain.ErrCompletionConflict
		case pgForeignKeyViolation:
			return domain.ErrHabitNotFound
		}
		return fmt.Errorf("failed to insert completion: %w", err)
	}
	return nil
}

func (r *PostgresCompletionRepository) Delete(ctx context.Context, habitName, date string) error {
	query := `DELETE FROM completions WHERE habit_name = $1 AND completion_date = $2`

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

func (r *PostgresCompletionRepository) DeleteAllForHabit(ctx context.Context, habitName string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM completions WHERE habit_name = $1`, habitName)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}
	return nil
}

func (r *PostgresCompletionRepository) ListDates(ctx context.Context, habitName string) ([]string, error) {
	dates := []string{}
	query := `SELECT completion_date FROM completions WHERE habit_name = $1`

	if err := r.db.SelectContext(ctx, &dates, query, habitName); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return dates, nil
}

func (r *PostgresCompletionRepository) ListInRange(ctx context.Context, start, end string) ([]*domain.Completion, error) {
	completions := []*domain.Completion{}
	query := `
		SELECT id, habit_name, completion_date FROM completions
		WHERE completion_date >= $1 AND completion_date <= $2
		ORDER BY completion_date ASC, habit_name ASC`

	if err := r.db.SelectContext(ctx, &completions, query, start, end); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return completions, nil
}

func (r *PostgresCompletionRepository) Exists(ctx context.Context, habitName, date string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM completions WHERE habit_name = $1 AND completion_date = $2`

	if err := r.db.GetContext(ctx, &count, query, habitName, date); err != nil {
		return false, fmt.Errorf("existence check failed: %w", err)
	}
	return count > 0, nil
}

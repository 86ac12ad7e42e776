package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bensmidt/switchlog/internal/models"
)

// TaskLogRepository handles the weekly task-log sheet: the append-only
// rows produced by the "ts:" command path.
type TaskLogRepository struct {
	db *DB
}

// NewTaskLogRepository creates a new task log repository
func NewTaskLogRepository(db *DB) *TaskLogRepository {
	return &TaskLogRepository{db: db}
}

// AppendRow appends one row to the task log.
func (r *TaskLogRepository) AppendRow(ctx context.Context, row *models.LogRow) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	query := `
		INSERT INTO task_log_rows (id, date, timestamp, task, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		row.ID,
		row.Date,
		row.Timestamp,
		row.Task,
		row.Category,
		time.Now(),
	).Scan(&row.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to append task log row: %w", err)
	}

	return nil
}

// ListByDateRange retrieves rows whose date falls within [from, to],
// ordered by timestamp ascending. Dates are YYYY-MM-DD keys.
func (r *TaskLogRepository) ListByDateRange(ctx context.Context, from, to string) ([]*models.LogRow, error) {
	query := `
		SELECT id, date, timestamp, task, category, created_at
		FROM task_log_rows
		WHERE date >= $1 AND date <= $2
		ORDER BY timestamp ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list task log rows: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []*models.LogRow
	for rows.Next() {
		row := &models.LogRow{}
		if err := rows.Scan(&row.ID, &row.Date, &row.Timestamp, &row.Task, &row.Category, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task log row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task log rows: %w", err)
	}

	return out, nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

const taskColumns = `id, title, description, category, priority, status,
	start_date, due_date, xp_value, created_at, completed_at, updated_at`

func (r *TaskRepo) Insert(ctx context.Context, t Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Title, t.Description, t.Category, t.Priority, t.Status,
		fmtTimePtr(t.StartDate), fmtTimePtr(t.DueDate), t.XPValue,
		fmtTime(t.CreatedAt), fmtTimePtr(t.CompletedAt), fmtTime(t.UpdatedAt))
	if err != nil {
		return fmt.Errorf("task insert: %w", err)
	}
	return nil
}

func (r *TaskRepo) Get(ctx context.Context, id string) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+taskColumns+` FROM tasks WHERE id = ?
	`, id)
	return scanTaskRow(row)
}

func (r *TaskRepo) ListAll(ctx context.Context) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+taskColumns+` FROM tasks ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

// Update rewrites every mutable column. ID and created_at never change.
func (r *TaskRepo) Update(ctx context.Context, t Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, category = ?, priority = ?, status = ?,
			start_date = ?, due_date = ?, xp_value = ?, completed_at = ?, updated_at = ?
		WHERE id = ?
	`, t.Title, t.Description, t.Category, t.Priority, t.Status,
		fmtTimePtr(t.StartDate), fmtTimePtr(t.DueDate), t.XPValue,
		fmtTimePtr(t.CompletedAt), fmtTime(t.UpdatedAt), t.ID)
	if err != nil {
		return fmt.Errorf("task update: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("task %s not found", t.ID)
	}
	return nil
}

func (r *TaskRepo) MarkCompleted(ctx context.Context, id string, completedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET status = 'completed', completed_at = ?, updated_at = ? WHERE id = ?
	`, fmtTime(completedAt), fmtTime(completedAt), id)
	if err != nil {
		return fmt.Errorf("task mark completed: %w", err)
	}
	return nil
}

// Reopen resets a completed task and clears its completion timestamp.
func (r *TaskRepo) Reopen(ctx context.Context, id string, status string, updatedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET status = ?, completed_at = NULL, updated_at = ? WHERE id = ?
	`, status, fmtTime(updatedAt), id)
	if err != nil {
		return fmt.Errorf("task reopen: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("task %s not found", id)
	}
	return nil
}

// DeleteAll clears the collection. Used by the import/restore path.
func (r *TaskRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("task delete all: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTaskRow(row scanner) (*Task, error) {
	var (
		t           Task
		startDate   sql.NullString
		dueDate     sql.NullString
		createdAt   string
		completedAt sql.NullString
		updatedAt   string
	)

	if err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Category, &t.Priority, &t.Status,
		&startDate, &dueDate, &t.XPValue, &createdAt, &completedAt, &updatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}

	var err error
	if t.StartDate, err = parseTimeNull(startDate); err != nil {
		return nil, err
	}
	if t.DueDate, err = parseTimeNull(dueDate); err != nil {
		return nil, err
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if t.CompletedAt, err = parseTimeNull(completedAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

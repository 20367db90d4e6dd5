package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"planner/internal/core/domain"
	"planner/internal/core/ports"
	"planner/pkg/clock"
)

const (
	selectTasksQuery = `
SELECT id, project_id, title, description, due_date, due_time, completed, created_at, updated_at
FROM tasks
`
	insertTaskQuery = `
INSERT INTO tasks (project_id, title, description, due_date, due_time, completed)
VALUES (?, ?, ?, ?, ?, ?);
`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = ?;`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	ProjectID   sql.NullInt64  `db:"project_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	DueDate     sql.NullTime   `db:"due_date"`
	DueTime     sql.NullString `db:"due_time"`
	Completed   bool           `db:"completed"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return getTask(ctx, r.db, id)
}

func (r *TaskRepository) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query := selectTasksQuery
	var args []any
	if filter.ProjectID != nil {
		query += "WHERE project_id = ?\n"
		args = append(args, *filter.ProjectID)
	}
	query += "ORDER BY due_date IS NULL, due_date, due_time, id;"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		nullUint(input.ProjectID),
		input.Title,
		nullString(input.Description),
		nullDate(input.DueDate),
		nullTimeOfDay(input.DueTime),
		input.Completed,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetTask(ctx, uint64(id))
}

func (r *TaskRepository) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			zap.L().Warn("failed to rollback task update", zap.Uint64("task_id", id), zap.Error(err))
		}
	}()

	if _, err := getTask(ctx, tx, id); err != nil {
		return domain.Task{}, err
	}

	sets, args := buildTaskUpdate(input)
	if len(sets) > 0 {
		query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?;"
		args = append(args, id)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return domain.Task{}, err
		}
	}

	task, err := getTask(ctx, tx, id)
	if err != nil {
		return domain.Task{}, err
	}
	return task, tx.Commit()
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func getTask(ctx context.Context, q sqlx.QueryerContext, id uint64) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, q, &row, selectTasksQuery+"WHERE id = ?;", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func buildTaskUpdate(input domain.UpdateTaskInput) ([]string, []any) {
	var sets []string
	var args []any

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, nullString(input.Description))
	}
	if input.ProjectIDSet {
		sets = append(sets, "project_id = ?")
		args = append(args, nullUint(input.ProjectID))
	}
	if input.DueDateSet {
		sets = append(sets, "due_date = ?")
		args = append(args, nullDate(input.DueDate))
	}
	if input.DueTimeSet {
		sets = append(sets, "due_time = ?")
		args = append(args, nullTimeOfDay(input.DueTime))
	}
	if input.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *input.Completed)
	}

	return sets, args
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Completed: row.Completed,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.ProjectID.Valid {
		value := uint64(row.ProjectID.Int64)
		task.ProjectID = &value
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.DueTime.Valid {
		if value, err := clock.ParseTimeOfDay(row.DueTime.String); err == nil {
			task.DueTime = &value
		} else {
			zap.L().Warn("ignoring unparsable due_time", zap.Uint64("task_id", row.ID), zap.Error(err))
		}
	}

	return task
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullUint(value *uint64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}

func nullDate(value *time.Time) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: value.Format(clock.DateLayout), Valid: true}
}

func nullTimeOfDay(value *clock.TimeOfDay) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: value.String(), Valid: true}
}

package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"planner/internal/core/domain"
	"planner/internal/core/ports"
	"planner/pkg/clock"
)

// Editing a task's due date resets any earlier read acknowledgement, hence
// is_read = FALSE on the update branch too.
const upsertNotificationQuery = `
INSERT INTO notifications (task_id, title, message, due_date, due_time, is_read)
VALUES (?, ?, ?, ?, ?, FALSE)
ON DUPLICATE KEY UPDATE
  title = VALUES(title),
  message = VALUES(message),
  due_date = VALUES(due_date),
  due_time = VALUES(due_time),
  is_read = FALSE;
`

const listNotificationsQuery = `
SELECT id, task_id, title, message, due_date, due_time, is_read, created_at, updated_at
FROM notifications
ORDER BY updated_at DESC, id DESC;
`

type NotificationRepository struct {
	db *sqlx.DB
}

type notificationRow struct {
	ID        uint64    `db:"id"`
	TaskID    uint64    `db:"task_id"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	DueDate   time.Time `db:"due_date"`
	DueTime   string    `db:"due_time"`
	Read      bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) UpsertForTask(ctx context.Context, input domain.NotificationInput) error {
	_, err := r.db.ExecContext(ctx, upsertNotificationQuery,
		input.TaskID,
		input.Title,
		input.Message,
		input.DueDate.Format(clock.DateLayout),
		input.DueTime.String(),
	)
	return err
}

func (r *NotificationRepository) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	var rows []notificationRow
	if err := r.db.SelectContext(ctx, &rows, listNotificationsQuery); err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, mapNotificationRow(row))
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uint64) error {
	if err := r.ensureExists(ctx, id); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = ?;`, id)
	return err
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE is_read = FALSE;`)
	return err
}

func (r *NotificationRepository) DeleteNotification(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) ensureExists(ctx context.Context, id uint64) error {
	var found int
	if err := r.db.GetContext(ctx, &found, `SELECT COUNT(*) FROM notifications WHERE id = ?;`, id); err != nil {
		return err
	}
	if found == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func mapNotificationRow(row notificationRow) domain.Notification {
	n := domain.Notification{
		ID:        row.ID,
		TaskID:    row.TaskID,
		Title:     row.Title,
		Message:   row.Message,
		DueDate:   row.DueDate,
		Read:      row.Read,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	tod, err := clock.ParseTimeOfDay(row.DueTime)
	if err != nil {
		zap.L().Warn("ignoring unparsable notification due_time", zap.Uint64("notification_id", row.ID), zap.Error(err))
		return n
	}
	n.DueTime = tod
	return n
}

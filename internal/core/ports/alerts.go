package ports

import (
	"context"
	"time"

	"planner/internal/core/domain"
	"planner/pkg/clock"
)

// AlertPort is the local notification subsystem. Cancelling an id that has no
// live alert must succeed.
type AlertPort interface {
	ScheduleAll(ctx context.Context, alerts []domain.Alert) error
	Cancel(ctx context.Context, ids []int64) error
}

type AlertScheduler interface {
	Reschedule(ctx context.Context, taskID uint64, title string, dueAt time.Time) ([]domain.Alert, error)
	CancelForTask(ctx context.Context, taskID uint64) error
}

type MessageComposer interface {
	Compose(title string, dueDate time.Time, dueTime *clock.TimeOfDay) string
}

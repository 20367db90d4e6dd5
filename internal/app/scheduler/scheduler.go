package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"planner/internal/core/domain"
	"planner/internal/core/ports"
	"planner/pkg/clock"
)

// AlertScheduler keeps at most one live alert pair per task on the AlertPort.
type AlertScheduler struct {
	alerts   ports.AlertPort
	composer ports.MessageComposer
	clock    clock.Clock
	policy   domain.DuePolicy
	locks    *keyedMutex
}

var _ ports.AlertScheduler = (*AlertScheduler)(nil)

func NewAlertScheduler(alerts ports.AlertPort, composer ports.MessageComposer, c clock.Clock, policy domain.DuePolicy) *AlertScheduler {
	return &AlertScheduler{
		alerts:   alerts,
		composer: composer,
		clock:    c,
		policy:   policy,
		locks:    newKeyedMutex(),
	}
}

// Reschedule cancels the task's alerts and registers the ones whose fire time
// is still in the future. It returns the registered alerts, which may be none.
func (s *AlertScheduler) Reschedule(ctx context.Context, taskID uint64, title string, dueAt time.Time) ([]domain.Alert, error) {
	unlock := s.locks.Lock(taskID)
	defer unlock()

	if err := s.alerts.Cancel(ctx, domain.AlertIDs(taskID)); err != nil {
		return nil, fmt.Errorf("cancel alerts for task %d: %w", taskID, err)
	}

	pending := s.Plan(taskID, title, dueAt)
	if len(pending) == 0 {
		zap.L().Debug("no future alerts for task", zap.Uint64("task_id", taskID), zap.Time("due_at", dueAt))
		return nil, nil
	}

	if err := s.alerts.ScheduleAll(ctx, pending); err != nil {
		return nil, fmt.Errorf("schedule alerts for task %d: %w", taskID, err)
	}

	zap.L().Info("alerts scheduled", zap.Uint64("task_id", taskID), zap.Int("count", len(pending)))
	return pending, nil
}

// Plan computes the alerts Reschedule would register right now, without
// touching the AlertPort.
func (s *AlertScheduler) Plan(taskID uint64, title string, dueAt time.Time) []domain.Alert {
	now := s.clock.Now()
	body := s.composer.Compose(title, s.policy.Today(dueAt), dueTimeOf(dueAt, s.policy))

	pending := make([]domain.Alert, 0, len(domain.AlertOffsets))
	for _, offset := range domain.AlertOffsets {
		fireAt := dueAt.Add(-offset.Before)
		if !fireAt.After(now) {
			continue
		}
		pending = append(pending, domain.Alert{
			ID:     domain.AlertID(taskID, offset.Kind),
			TaskID: taskID,
			Kind:   offset.Kind,
			Title:  title,
			Body:   body,
			FireAt: fireAt,
		})
	}
	return pending
}

func (s *AlertScheduler) CancelForTask(ctx context.Context, taskID uint64) error {
	unlock := s.locks.Lock(taskID)
	defer unlock()

	if err := s.alerts.Cancel(ctx, domain.AlertIDs(taskID)); err != nil {
		return fmt.Errorf("cancel alerts for task %d: %w", taskID, err)
	}
	return nil
}

func dueTimeOf(dueAt time.Time, policy domain.DuePolicy) *clock.TimeOfDay {
	local := dueAt
	if policy.Location != nil {
		local = dueAt.In(policy.Location)
	}
	tod := clock.TimeOfDay{Hour: local.Hour(), Minute: local.Minute(), Second: local.Second()}
	return &tod
}

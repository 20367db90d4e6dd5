package alerts

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"planner/internal/core/domain"
	"planner/internal/core/ports"
	"planner/pkg/clock"
)

// Deliverer shows a fired alert to the user.
type Deliverer interface {
	Deliver(ctx context.Context, alert domain.Alert) error
}

type LogDeliverer struct{}

func (LogDeliverer) Deliver(_ context.Context, alert domain.Alert) error {
	zap.L().Info("task reminder",
		zap.Int64("alert_id", alert.ID),
		zap.Uint64("task_id", alert.TaskID),
		zap.Stringer("kind", alert.Kind),
		zap.String("title", alert.Title),
		zap.String("body", alert.Body),
	)
	return nil
}

type pendingAlert struct {
	alert domain.Alert
	timer *time.Timer
}

// LocalAlerter keeps alerts as in-process timers, the way a device keeps
// local notifications: nothing is persisted and ids are the only handle.
type LocalAlerter struct {
	clock     clock.Clock
	deliverer Deliverer
	enabled   bool

	mu      sync.Mutex
	pending map[int64]*pendingAlert
}

var _ ports.AlertPort = (*LocalAlerter)(nil)

func NewLocalAlerter(c clock.Clock, deliverer Deliverer, enabled bool) *LocalAlerter {
	if deliverer == nil {
		deliverer = LogDeliverer{}
	}
	return &LocalAlerter{
		clock:     c,
		deliverer: deliverer,
		enabled:   enabled,
		pending:   make(map[int64]*pendingAlert),
	}
}

// ScheduleAll registers the batch and returns without waiting for any alert to
// fire. Registering an id that is already pending replaces it.
func (a *LocalAlerter) ScheduleAll(_ context.Context, alerts []domain.Alert) error {
	if !a.enabled {
		return domain.ErrAlertsDisabled
	}

	now := a.clock.Now()
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, alert := range alerts {
		if existing, ok := a.pending[alert.ID]; ok {
			existing.timer.Stop()
		}
		p := &pendingAlert{alert: alert}
		p.timer = time.AfterFunc(alert.FireAt.Sub(now), func() { a.fire(p) })
		a.pending[alert.ID] = p
	}
	return nil
}

func (a *LocalAlerter) Cancel(_ context.Context, ids []int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, id := range ids {
		if p, ok := a.pending[id]; ok {
			p.timer.Stop()
			delete(a.pending, id)
		}
	}
	return nil
}

// Pending lists alerts that have not fired yet, ordered by id.
func (a *LocalAlerter) Pending() []domain.Alert {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.Alert, 0, len(a.pending))
	for _, p := range a.pending {
		out = append(out, p.alert)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (a *LocalAlerter) fire(p *pendingAlert) {
	a.mu.Lock()
	current, ok := a.pending[p.alert.ID]
	if !ok || current != p {
		a.mu.Unlock()
		return
	}
	delete(a.pending, p.alert.ID)
	a.mu.Unlock()

	if err := a.deliverer.Deliver(context.Background(), p.alert); err != nil {
		zap.L().Warn("failed to deliver alert", zap.Int64("alert_id", p.alert.ID), zap.Error(err))
	}
}

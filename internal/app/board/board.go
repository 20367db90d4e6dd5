package board

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"planner/internal/app/reload"
	"planner/internal/core/domain"
	"planner/internal/core/ports"
	"planner/pkg/clock"
)

// Snapshot is the board as fetched at RefreshedAt, grouped by filter bucket.
// State and Bucket are derived at DerivedAt, not at fetch time.
type Snapshot struct {
	Buckets     map[domain.FilterBucket][]domain.TaskView
	Marker      string
	RefreshedAt time.Time
	DerivedAt   time.Time
}

// Board is the home screen: it holds the last fetched tasks and re-fetches
// them whenever a task reload signal arrives.
type Board struct {
	tasks  ports.TaskRepository
	clock  clock.Clock
	policy domain.DuePolicy

	mu          sync.RWMutex
	fetched     []domain.Task
	marker      string
	refreshedAt time.Time
}

func New(tasks ports.TaskRepository, c clock.Clock, policy domain.DuePolicy) *Board {
	return &Board{tasks: tasks, clock: c, policy: policy}
}

// Run refreshes once, then on every signal until ctx ends or the
// subscription closes.
func (b *Board) Run(ctx context.Context, bus *reload.Bus) {
	signals, cancel := bus.Subscribe(domain.EntityTask)
	defer cancel()

	if err := b.Refresh(ctx, ""); err != nil {
		zap.L().Warn("initial board refresh failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return
		case signal, ok := <-signals:
			if !ok {
				return
			}
			if err := b.Refresh(ctx, signal.Marker); err != nil {
				zap.L().Warn("board refresh failed", zap.String("marker", signal.Marker), zap.Error(err))
			}
		}
	}
}

// Refresh re-fetches every task. On error the previous fetch is kept.
func (b *Board) Refresh(ctx context.Context, marker string) error {
	tasks, err := b.tasks.ListTasks(ctx, domain.TaskFilter{})
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.fetched = tasks
	b.marker = marker
	b.refreshedAt = b.clock.Now()
	b.mu.Unlock()
	return nil
}

// Snapshot re-runs the deriver on the fetched tasks against the current time,
// so a task that passes its due instant moves to overdue without a refetch.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	tasks := b.fetched
	marker := b.marker
	refreshedAt := b.refreshedAt
	b.mu.RUnlock()

	now := b.clock.Now()
	buckets := make(map[domain.FilterBucket][]domain.TaskView, len(domain.FilterBuckets))
	for _, bucket := range domain.FilterBuckets {
		buckets[bucket] = []domain.TaskView{}
	}
	for _, view := range domain.NewTaskViews(tasks, now, b.policy) {
		buckets[view.Bucket] = append(buckets[view.Bucket], view)
	}

	return Snapshot{Buckets: buckets, Marker: marker, RefreshedAt: refreshedAt, DerivedAt: now}
}

package tests

import (
	"context"

	"planner/internal/app/board"
	"planner/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) GetTask(ctx context.Context, id uint64) (domain.TaskView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TaskView), args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.TaskView, error) {
	args := m.Called(ctx, filter)

	var tasks []domain.TaskView
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.TaskView)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.TaskView, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.TaskView), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.TaskView, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.TaskView), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type notificationServiceMock struct {
	mock.Mock
}

func (m *notificationServiceMock) Inbox(ctx context.Context) (domain.Inbox, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Inbox), args.Error(1)
}

func (m *notificationServiceMock) MarkRead(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *notificationServiceMock) MarkAllRead(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *notificationServiceMock) DeleteNotification(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type staticBoard struct {
	snapshot board.Snapshot
}

func (b staticBoard) Snapshot() board.Snapshot {
	return b.snapshot
}

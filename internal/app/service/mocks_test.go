package service_test

import (
	"context"
	"time"

	"planner/internal/core/domain"
	"planner/pkg/clock"

	"github.com/stretchr/testify/mock"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type notificationRepositoryMock struct {
	mock.Mock
}

func (m *notificationRepositoryMock) UpsertForTask(ctx context.Context, input domain.NotificationInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *notificationRepositoryMock) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	args := m.Called(ctx)
	var notifications []domain.Notification
	if value := args.Get(0); value != nil {
		notifications = value.([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *notificationRepositoryMock) MarkRead(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *notificationRepositoryMock) MarkAllRead(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *notificationRepositoryMock) DeleteNotification(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type schedulerMock struct {
	mock.Mock
}

func (m *schedulerMock) Reschedule(ctx context.Context, taskID uint64, title string, dueAt time.Time) ([]domain.Alert, error) {
	args := m.Called(ctx, taskID, title, dueAt)
	var alerts []domain.Alert
	if value := args.Get(0); value != nil {
		alerts = value.([]domain.Alert)
	}
	return alerts, args.Error(1)
}

func (m *schedulerMock) CancelForTask(ctx context.Context, taskID uint64) error {
	return m.Called(ctx, taskID).Error(0)
}

type fixedComposer string

func (c fixedComposer) Compose(string, time.Time, *clock.TimeOfDay) string {
	return string(c)
}

type published struct {
	Entity domain.Entity
	ID     uint64
}

type recordingPublisher struct {
	events []published
}

func (p *recordingPublisher) Publish(entity domain.Entity, id uint64) {
	p.events = append(p.events, published{Entity: entity, ID: id})
}

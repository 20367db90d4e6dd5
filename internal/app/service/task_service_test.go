package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appservice "planner/internal/app/service"
	"planner/internal/core/domain"
	"planner/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now    = time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)
	policy = domain.DuePolicy{DefaultTime: clock.EndOfDay, Location: time.UTC}
)

type fixture struct {
	tasks         *taskRepositoryMock
	notifications *notificationRepositoryMock
	scheduler     *schedulerMock
	reload        *recordingPublisher
	service       *appservice.TaskService
}

func newFixture() fixture {
	f := fixture{
		tasks:         new(taskRepositoryMock),
		notifications: new(notificationRepositoryMock),
		scheduler:     new(schedulerMock),
		reload:        &recordingPublisher{},
	}
	f.service = appservice.NewTaskService(appservice.TaskServiceDeps{
		Tasks:         f.tasks,
		Notifications: f.notifications,
		Scheduler:     f.scheduler,
		Composer:      fixedComposer("body"),
		Reload:        f.reload,
		Clock:         clock.Fixed(now),
		Policy:        policy,
	})
	return f
}

func (f fixture) assertExpectations(t *testing.T) {
	f.tasks.AssertExpectations(t)
	f.notifications.AssertExpectations(t)
	f.scheduler.AssertExpectations(t)
}

func dueDate(day int) *time.Time {
	value := time.Date(2026, 2, day, 0, 0, 0, 0, time.UTC)
	return &value
}

func dueTime(value string) *clock.TimeOfDay {
	tod := clock.MustParseTimeOfDay(value)
	return &tod
}

func TestTaskService_UpdateTask_SyncsAlertsThenMirror(t *testing.T) {
	f := newFixture()
	task := domain.Task{ID: 7, Title: "Ler apontamentos", DueDate: dueDate(20), DueTime: dueTime("09:00")}
	input := domain.UpdateTaskInput{DueDate: task.DueDate, DueDateSet: true}
	dueAt := time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)

	var order []string
	f.tasks.On("UpdateTask", mock.Anything, uint64(7), input).Return(task, nil).Run(func(mock.Arguments) { order = append(order, "store") }).Once()
	f.scheduler.On("Reschedule", mock.Anything, uint64(7), "Ler apontamentos", dueAt).Return([]domain.Alert{{ID: 71}, {ID: 72}}, nil).Run(func(mock.Arguments) { order = append(order, "alerts") }).Once()
	f.notifications.On("UpsertForTask", mock.Anything, domain.NotificationInput{
		TaskID:  7,
		Title:   "Ler apontamentos",
		Message: "body",
		DueDate: *task.DueDate,
		DueTime: *task.DueTime,
	}).Return(nil).Run(func(mock.Arguments) { order = append(order, "mirror") }).Once()

	view, err := f.service.UpdateTask(context.Background(), 7, input)

	require.NoError(t, err)
	assert.Equal(t, domain.StatePending, view.State)
	assert.Equal(t, domain.BucketUpcoming, view.Bucket)
	assert.Equal(t, []string{"store", "alerts", "mirror"}, order)
	assert.Contains(t, f.reload.events, published{domain.EntityTask, 7})
	assert.Contains(t, f.reload.events, published{domain.EntityNotification, 7})
	f.assertExpectations(t)
}

func TestTaskService_UpdateTask_StoreFailurePropagates(t *testing.T) {
	f := newFixture()
	f.tasks.On("UpdateTask", mock.Anything, uint64(7), mock.Anything).Return(domain.Task{}, errors.New("db is down")).Once()

	_, err := f.service.UpdateTask(context.Background(), 7, domain.UpdateTaskInput{})

	require.EqualError(t, err, "db is down")
	assert.Empty(t, f.reload.events)
	f.scheduler.AssertNotCalled(t, "Reschedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestTaskService_UpdateTask_NotFound(t *testing.T) {
	f := newFixture()
	f.tasks.On("UpdateTask", mock.Anything, uint64(404), mock.Anything).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	_, err := f.service.UpdateTask(context.Background(), 404, domain.UpdateTaskInput{})

	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_CreateTask_AlertFailureDoesNotFailSave(t *testing.T) {
	f := newFixture()
	task := domain.Task{ID: 3, Title: "Mala", DueDate: dueDate(12)}
	input := domain.CreateTaskInput{Title: "Mala", DueDate: task.DueDate}
	dueAt := time.Date(2026, 2, 12, 23, 59, 59, 0, time.UTC)

	f.tasks.On("CreateTask", mock.Anything, input).Return(task, nil).Once()
	f.scheduler.On("Reschedule", mock.Anything, uint64(3), "Mala", dueAt).Return(nil, domain.ErrAlertsDisabled).Once()
	f.notifications.On("UpsertForTask", mock.Anything, mock.MatchedBy(func(in domain.NotificationInput) bool {
		return in.TaskID == 3 && in.DueTime == clock.EndOfDay
	})).Return(nil).Once()

	view, err := f.service.CreateTask(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, uint64(3), view.ID)
	f.assertExpectations(t)
}

func TestTaskService_CreateTask_MirrorFailureDoesNotFailSave(t *testing.T) {
	f := newFixture()
	task := domain.Task{ID: 3, Title: "Mala", DueDate: dueDate(12)}

	f.tasks.On("CreateTask", mock.Anything, mock.Anything).Return(task, nil).Once()
	f.scheduler.On("Reschedule", mock.Anything, uint64(3), "Mala", mock.Anything).Return([]domain.Alert{{ID: 31}}, nil).Once()
	f.notifications.On("UpsertForTask", mock.Anything, mock.Anything).Return(errors.New("mirror down")).Once()

	_, err := f.service.CreateTask(context.Background(), domain.CreateTaskInput{Title: "Mala"})

	require.NoError(t, err)
	assert.Equal(t, []published{{domain.EntityTask, 3}}, f.reload.events)
	f.assertExpectations(t)
}

func TestTaskService_CreateTask_WithoutDueDateCancelsOnly(t *testing.T) {
	f := newFixture()
	task := domain.Task{ID: 11, Title: "Someday"}

	f.tasks.On("CreateTask", mock.Anything, mock.Anything).Return(task, nil).Once()
	f.scheduler.On("CancelForTask", mock.Anything, uint64(11)).Return(nil).Once()

	view, err := f.service.CreateTask(context.Background(), domain.CreateTaskInput{Title: "Someday"})

	require.NoError(t, err)
	assert.Equal(t, domain.BucketUpcoming, view.Bucket)
	f.notifications.AssertNotCalled(t, "UpsertForTask", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestTaskService_UpdateTask_CompletingCancelsAlerts(t *testing.T) {
	f := newFixture()
	completed := true
	task := domain.Task{ID: 8, Title: "Entrega", DueDate: dueDate(11), DueTime: dueTime("18:00"), Completed: true}
	input := domain.UpdateTaskInput{Completed: &completed}

	f.tasks.On("UpdateTask", mock.Anything, uint64(8), input).Return(task, nil).Once()
	f.scheduler.On("CancelForTask", mock.Anything, uint64(8)).Return(nil).Once()

	view, err := f.service.UpdateTask(context.Background(), 8, input)

	require.NoError(t, err)
	assert.Equal(t, domain.StateDone, view.State)
	assert.Equal(t, domain.BucketCompleted, view.Bucket)
	f.scheduler.AssertNotCalled(t, "Reschedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.notifications.AssertNotCalled(t, "UpsertForTask", mock.Anything, mock.Anything)
	assert.Equal(t, []published{{domain.EntityTask, 8}}, f.reload.events)
	f.assertExpectations(t)
}

func TestTaskService_DeleteTask(t *testing.T) {
	f := newFixture()
	f.tasks.On("DeleteTask", mock.Anything, uint64(5)).Return(nil).Once()
	f.scheduler.On("CancelForTask", mock.Anything, uint64(5)).Return(errors.New("platform error")).Once()

	require.NoError(t, f.service.DeleteTask(context.Background(), 5))
	assert.Contains(t, f.reload.events, published{domain.EntityTask, 5})
	f.assertExpectations(t)
}

func TestTaskService_DeleteTask_StoreFailureSkipsCancel(t *testing.T) {
	f := newFixture()
	f.tasks.On("DeleteTask", mock.Anything, uint64(5)).Return(domain.ErrTaskNotFound).Once()

	err := f.service.DeleteTask(context.Background(), 5)

	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	f.scheduler.AssertNotCalled(t, "CancelForTask", mock.Anything, mock.Anything)
}

func TestTaskService_ListTasks_FiltersByBucket(t *testing.T) {
	f := newFixture()
	overdue := domain.BucketOverdue
	filter := domain.TaskFilter{Bucket: &overdue}
	f.tasks.On("ListTasks", mock.Anything, filter).Return([]domain.Task{
		{ID: 1, DueDate: dueDate(9)},
		{ID: 2, DueDate: dueDate(10)},
		{ID: 3, DueDate: dueDate(9), Completed: true},
	}, nil).Once()

	views, err := f.service.ListTasks(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, uint64(1), views[0].ID)
	assert.Equal(t, domain.StateOverdue, views[0].State)
}

func TestTaskService_GetTask(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetTask", mock.Anything, uint64(2)).Return(domain.Task{ID: 2, DueDate: dueDate(10), DueTime: dueTime("08:00")}, nil).Once()

	view, err := f.service.GetTask(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, domain.BucketToday, view.Bucket)
	assert.Equal(t, domain.StateOverdue, view.State)
}

func TestTaskService_RestoreAlerts(t *testing.T) {
	f := newFixture()
	f.tasks.On("ListTasks", mock.Anything, domain.TaskFilter{}).Return([]domain.Task{
		{ID: 1, Title: "open", DueDate: dueDate(20)},
		{ID: 2, Title: "done", DueDate: dueDate(20), Completed: true},
		{ID: 3, Title: "undated"},
		{ID: 4, Title: "broken", DueDate: dueDate(21)},
	}, nil).Once()
	f.scheduler.On("Reschedule", mock.Anything, uint64(1), "open", mock.Anything).Return([]domain.Alert{{ID: 11}, {ID: 12}}, nil).Once()
	f.scheduler.On("Reschedule", mock.Anything, uint64(4), "broken", mock.Anything).Return(nil, errors.New("permission revoked")).Once()

	count, err := f.service.RestoreAlerts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	f.assertExpectations(t)
}

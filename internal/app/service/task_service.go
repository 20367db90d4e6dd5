package service

import (
	"context"

	"go.uber.org/zap"

	"planner/internal/core/domain"
	"planner/internal/core/ports"
	"planner/pkg/clock"
)

type TaskService struct {
	taskRepository         ports.TaskRepository
	notificationRepository ports.NotificationRepository
	scheduler              ports.AlertScheduler
	composer               ports.MessageComposer
	reload                 ports.ReloadPublisher
	clock                  clock.Clock
	policy                 domain.DuePolicy
}

type TaskServiceDeps struct {
	Tasks         ports.TaskRepository
	Notifications ports.NotificationRepository
	Scheduler     ports.AlertScheduler
	Composer      ports.MessageComposer
	Reload        ports.ReloadPublisher
	Clock         clock.Clock
	Policy        domain.DuePolicy
}

func NewTaskService(deps TaskServiceDeps) *TaskService {
	return &TaskService{
		taskRepository:         deps.Tasks,
		notificationRepository: deps.Notifications,
		scheduler:              deps.Scheduler,
		composer:               deps.Composer,
		reload:                 deps.Reload,
		clock:                  deps.Clock,
		policy:                 deps.Policy,
	}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.TaskView, error) {
	task, err := s.taskRepository.GetTask(ctx, id)
	if err != nil {
		return domain.TaskView{}, err
	}
	return domain.NewTaskView(task, s.clock.Now(), s.policy), nil
}

// ListTasks fetches tasks and filters by the date-grain bucket when asked.
func (s *TaskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.TaskView, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := domain.NewTaskViews(tasks, s.clock.Now(), s.policy)
	if filter.Bucket == nil {
		return views, nil
	}

	filtered := make([]domain.TaskView, 0, len(views))
	for _, view := range views {
		if view.Bucket == *filter.Bucket {
			filtered = append(filtered, view)
		}
	}
	return filtered, nil
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.TaskView, error) {
	task, err := s.taskRepository.CreateTask(ctx, input)
	if err != nil {
		return domain.TaskView{}, err
	}

	s.syncAlerts(ctx, task)
	s.reload.Publish(domain.EntityTask, task.ID)
	return domain.NewTaskView(task, s.clock.Now(), s.policy), nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.TaskView, error) {
	task, err := s.taskRepository.UpdateTask(ctx, id, input)
	if err != nil {
		return domain.TaskView{}, err
	}

	s.syncAlerts(ctx, task)
	s.reload.Publish(domain.EntityTask, task.ID)
	return domain.NewTaskView(task, s.clock.Now(), s.policy), nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	if err := s.taskRepository.DeleteTask(ctx, id); err != nil {
		return err
	}

	if err := s.scheduler.CancelForTask(ctx, id); err != nil {
		zap.L().Warn("failed to cancel alerts for deleted task", zap.Uint64("task_id", id), zap.Error(err))
	}
	s.reload.Publish(domain.EntityTask, id)
	s.reload.Publish(domain.EntityNotification, id)
	return nil
}

// RestoreAlerts re-registers alerts for every open task with a due date.
// Local alerts do not survive a restart, so this runs at boot.
func (s *TaskService) RestoreAlerts(ctx context.Context) (int, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, domain.TaskFilter{})
	if err != nil {
		return 0, err
	}

	registered := 0
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		dueAt, ok := s.policy.DueAt(task)
		if !ok {
			continue
		}
		alerts, err := s.scheduler.Reschedule(ctx, task.ID, task.Title, dueAt)
		if err != nil {
			zap.L().Warn("failed to restore alerts", zap.Uint64("task_id", task.ID), zap.Error(err))
			continue
		}
		registered += len(alerts)
	}
	return registered, nil
}

// syncAlerts runs after the task is durably saved. Alert and mirror failures
// are logged and never fail the save. Tasks without a due date or already
// completed keep no live alerts; their mirror row is left as is.
func (s *TaskService) syncAlerts(ctx context.Context, task domain.Task) {
	dueAt, ok := s.policy.DueAt(task)
	if !ok || task.Completed {
		if err := s.scheduler.CancelForTask(ctx, task.ID); err != nil {
			zap.L().Warn("failed to cancel alerts", zap.Uint64("task_id", task.ID), zap.Error(err))
		}
		return
	}

	if _, err := s.scheduler.Reschedule(ctx, task.ID, task.Title, dueAt); err != nil {
		zap.L().Warn("failed to schedule alerts", zap.Uint64("task_id", task.ID), zap.Error(err))
	}

	err := s.notificationRepository.UpsertForTask(ctx, domain.NotificationInput{
		TaskID:  task.ID,
		Title:   task.Title,
		Message: s.composer.Compose(task.Title, *task.DueDate, task.DueTime),
		DueDate: *task.DueDate,
		DueTime: s.policy.TimeFor(task),
	})
	if err != nil {
		zap.L().Warn("failed to upsert notification mirror", zap.Uint64("task_id", task.ID), zap.Error(err))
		return
	}
	s.reload.Publish(domain.EntityNotification, task.ID)
}

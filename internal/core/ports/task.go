package ports

import (
	"context"

	"planner/internal/core/domain"
)

type TaskRepository interface {
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}

type TaskService interface {
	GetTask(ctx context.Context, id uint64) (domain.TaskView, error)
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.TaskView, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.TaskView, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.TaskView, error)
	DeleteTask(ctx context.Context, id uint64) error
}

package domain

import (
	"time"

	"planner/pkg/clock"
)

type Task struct {
	ID          uint64
	ProjectID   *uint64
	Title       string
	Description *string
	DueDate     *time.Time
	DueTime     *clock.TimeOfDay
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskView pairs a task with both derived classifications. State is computed
// at datetime grain and Bucket at date grain, so they can disagree for a task
// due today whose time has already passed.
type TaskView struct {
	Task
	State  LifecycleState
	Bucket FilterBucket
}

type TaskFilter struct {
	ProjectID *uint64
	Bucket    *FilterBucket
}

type CreateTaskInput struct {
	Title       string
	Description *string
	ProjectID   *uint64
	DueDate     *time.Time
	DueTime     *clock.TimeOfDay
	Completed   bool
}

type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	ProjectID      *uint64
	ProjectIDSet   bool
	DueDate        *time.Time
	DueDateSet     bool
	DueTime        *clock.TimeOfDay
	DueTimeSet     bool
	Completed      *bool
}

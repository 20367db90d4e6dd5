package domain

import (
	"time"

	"planner/pkg/clock"
)

type LifecycleState string

const (
	StatePending LifecycleState = "pending"
	StateDone    LifecycleState = "done"
	StateOverdue LifecycleState = "overdue"
)

type FilterBucket string

const (
	BucketToday     FilterBucket = "today"
	BucketUpcoming  FilterBucket = "upcoming"
	BucketCompleted FilterBucket = "completed"
	BucketOverdue   FilterBucket = "overdue"
)

var FilterBuckets = []FilterBucket{BucketToday, BucketUpcoming, BucketOverdue, BucketCompleted}

func ParseFilterBucket(value string) (FilterBucket, bool) {
	for _, bucket := range FilterBuckets {
		if string(bucket) == value {
			return bucket, true
		}
	}
	return "", false
}

// DuePolicy turns a stored due date and optional due time into one instant.
// DefaultTime is used whenever the task has no due time, everywhere.
type DuePolicy struct {
	DefaultTime clock.TimeOfDay
	Location    *time.Location
}

func DefaultDuePolicy() DuePolicy {
	return DuePolicy{DefaultTime: clock.EndOfDay, Location: time.Local}
}

func (p DuePolicy) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

// TimeFor returns the task's due time, or the default when it has none.
func (p DuePolicy) TimeFor(task Task) clock.TimeOfDay {
	if task.DueTime != nil {
		return *task.DueTime
	}
	return p.DefaultTime
}

// DueAt reports the instant a task is due. ok is false when it has no due date.
func (p DuePolicy) DueAt(task Task) (time.Time, bool) {
	if task.DueDate == nil {
		return time.Time{}, false
	}
	return clock.Combine(*task.DueDate, p.TimeFor(task), p.location()), true
}

// Today returns now truncated to midnight in the policy location.
func (p DuePolicy) Today(now time.Time) time.Time {
	return clock.DateOnly(now, p.location())
}

// DeriveLifecycle classifies a task at datetime grain.
func DeriveLifecycle(task Task, now time.Time, policy DuePolicy) LifecycleState {
	if task.Completed {
		return StateDone
	}
	dueAt, ok := policy.DueAt(task)
	if ok && dueAt.Before(now) {
		return StateOverdue
	}
	return StatePending
}

// DeriveBucket classifies a task at date grain against today.
func DeriveBucket(task Task, today time.Time) FilterBucket {
	if task.Completed {
		return BucketCompleted
	}
	if task.DueDate == nil {
		return BucketUpcoming
	}
	switch diff := clock.DaysBetween(today, *task.DueDate); {
	case diff == 0:
		return BucketToday
	case diff < 0:
		return BucketOverdue
	default:
		return BucketUpcoming
	}
}

func NewTaskView(task Task, now time.Time, policy DuePolicy) TaskView {
	return TaskView{
		Task:   task,
		State:  DeriveLifecycle(task, now, policy),
		Bucket: DeriveBucket(task, policy.Today(now)),
	}
}

func NewTaskViews(tasks []Task, now time.Time, policy DuePolicy) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, NewTaskView(task, now, policy))
	}
	return views
}

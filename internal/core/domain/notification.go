package domain

import (
	"time"

	"planner/pkg/clock"
)

// Notification mirrors the last alert set scheduled for a task, one row per task.
type Notification struct {
	ID        uint64
	TaskID    uint64
	Title     string
	Message   string
	DueDate   time.Time
	DueTime   clock.TimeOfDay
	Read      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NotificationInput struct {
	TaskID  uint64
	Title   string
	Message string
	DueDate time.Time
	DueTime clock.TimeOfDay
}

type Inbox struct {
	Notifications []Notification
	Unread        int
}

package ports

import (
	"context"

	"planner/internal/core/domain"
)

type NotificationRepository interface {
	UpsertForTask(ctx context.Context, input domain.NotificationInput) error
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id uint64) error
	MarkAllRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id uint64) error
}

type NotificationService interface {
	Inbox(ctx context.Context) (domain.Inbox, error)
	MarkRead(ctx context.Context, id uint64) error
	MarkAllRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id uint64) error
}

package service

import (
	"context"

	"planner/internal/core/domain"
	"planner/internal/core/ports"
)

type NotificationService struct {
	notificationRepository ports.NotificationRepository
	reload                 ports.ReloadPublisher
}

func NewNotificationService(notificationRepository ports.NotificationRepository, reload ports.ReloadPublisher) *NotificationService {
	return &NotificationService{notificationRepository: notificationRepository, reload: reload}
}

var _ ports.NotificationService = (*NotificationService)(nil)

func (s *NotificationService) Inbox(ctx context.Context) (domain.Inbox, error) {
	notifications, err := s.notificationRepository.ListNotifications(ctx)
	if err != nil {
		return domain.Inbox{}, err
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}
	return domain.Inbox{Notifications: notifications, Unread: unread}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id uint64) error {
	if err := s.notificationRepository.MarkRead(ctx, id); err != nil {
		return err
	}
	s.reload.Publish(domain.EntityNotification, id)
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	if err := s.notificationRepository.MarkAllRead(ctx); err != nil {
		return err
	}
	s.reload.Publish(domain.EntityNotification, 0)
	return nil
}

func (s *NotificationService) DeleteNotification(ctx context.Context, id uint64) error {
	if err := s.notificationRepository.DeleteNotification(ctx, id); err != nil {
		return err
	}
	s.reload.Publish(domain.EntityNotification, id)
	return nil
}

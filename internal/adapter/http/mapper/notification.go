package mapper

import (
	"planner/internal/adapter/http/dto"
	"planner/internal/core/domain"
	"planner/pkg/clock"
	"time"
)

func ToInboxResponse(inbox domain.Inbox) dto.InboxResponse {
	items := make([]dto.NotificationItem, 0, len(inbox.Notifications))
	for _, n := range inbox.Notifications {
		items = append(items, ToNotificationItem(n))
	}
	return dto.InboxResponse{Unread: inbox.Unread, Notifications: items}
}

func ToNotificationItem(n domain.Notification) dto.NotificationItem {
	return dto.NotificationItem{
		ID:        n.ID,
		TaskID:    n.TaskID,
		Title:     n.Title,
		Message:   n.Message,
		DueDate:   n.DueDate.Format(clock.DateLayout),
		DueTime:   n.DueTime.Short(),
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		UpdatedAt: n.UpdatedAt.Format(time.RFC3339),
	}
}

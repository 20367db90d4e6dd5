package domain

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAlertsDisabled       = errors.New("alerts are disabled")
)

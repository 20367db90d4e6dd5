package apierrors

const (
	MsgFailListTask           = "errorListTask"
	MsgInvalidTaskID          = "invalidTaskID"
	MsgInvalidTaskPayload     = "invalidTaskPayload"
	MsgInvalidBucket          = "invalidBucket"
	MsgTaskNotFound           = "taskNotFound"
	MsgFailGetTask            = "failGetTask"
	MsgFailCreateTask         = "failCreateTask"
	MsgFailUpdateTask         = "failUpdateTask"
	MsgFailDeleteTask         = "failDeleteTask"
	MsgInvalidNotificationID  = "invalidNotificationID"
	MsgNotificationNotFound   = "notificationNotFound"
	MsgFailListNotifications  = "failListNotifications"
	MsgFailUpdateNotification = "failUpdateNotification"
	MsgFailDeleteNotification = "failDeleteNotification"
)

package dto

type NotificationItem struct {
	ID        uint64 `json:"id"`
	TaskID    uint64 `json:"task_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	DueDate   string `json:"due_date"`
	DueTime   string `json:"due_time"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type InboxResponse struct {
	Unread        int                `json:"unread"`
	Notifications []NotificationItem `json:"notifications"`
}

package dto

type TaskItem struct {
	ID          uint64  `json:"id"`
	ProjectID   *uint64 `json:"project_id,omitempty"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	DueTime     *string `json:"due_time,omitempty"`
	Completed   bool    `json:"completed"`
	State       string  `json:"state"`
	Bucket      string  `json:"bucket"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	ProjectID   *uint64 `json:"project_id" binding:"omitempty,gt=0"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	DueTime     *string `json:"due_time"`
	Completed   *bool   `json:"completed"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	ProjectID   *uint64 `json:"project_id" binding:"omitempty,gt=0"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	DueTime     *string `json:"due_time"`
	Completed   *bool   `json:"completed"`
}

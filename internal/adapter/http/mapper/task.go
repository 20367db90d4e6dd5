package mapper

import (
	"planner/internal/adapter/http/dto"
	"planner/internal/core/domain"
	"planner/pkg/clock"
	"time"
)

func ToTaskItems(tasks []domain.TaskView) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.TaskView) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		State:     string(task.State),
		Bucket:    string(task.Bucket),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.ProjectID != nil {
		value := *task.ProjectID
		item.ProjectID = &value
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(clock.DateLayout)
		item.DueDate = &value
	}

	if task.DueTime != nil {
		value := task.DueTime.Short()
		item.DueTime = &value
	}

	return item
}

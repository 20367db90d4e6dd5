package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"planner/internal/adapter/http/dto"
	"planner/internal/core/domain"
	"planner/pkg/clock"
	"strings"
	"time"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

var taskUpdateFields = []string{"title", "description", "project_id", "due_date", "due_time", "completed"}

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	dueTime, err := parseDueTime(req.DueTime)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}
	// A time of day means nothing without a date to anchor it.
	if dueTime != nil && dueDate == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		DueDate:     dueDate,
		DueTime:     dueTime,
		Completed:   completed,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	projectIDSet := hasJSONField(raw, "project_id")
	if projectIDSet && !isJSONNull(raw["project_id"]) && req.ProjectID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "due_date")
	if dueDateSet && !isJSONNull(raw["due_date"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := parseDueDate(req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		dueDate = parsed
	}

	var dueTime *clock.TimeOfDay
	dueTimeSet := hasJSONField(raw, "due_time")
	if dueTimeSet && !isJSONNull(raw["due_time"]) {
		if req.DueTime == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := parseDueTime(req.DueTime)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		dueTime = parsed
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		ProjectID:      req.ProjectID,
		ProjectIDSet:   projectIDSet,
		DueDate:        dueDate,
		DueDateSet:     dueDateSet,
		DueTime:        dueTime,
		DueTimeSet:     dueTimeSet,
		Completed:      req.Completed,
	}, nil
}

func parseDueDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(clock.DateLayout, *value)
	if err != nil {
		return nil, ErrInvalidTaskPayload
	}
	return &parsed, nil
}

func parseDueTime(value *string) (*clock.TimeOfDay, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := clock.ParseTimeOfDay(*value)
	if err != nil {
		return nil, ErrInvalidTaskPayload
	}
	return &parsed, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	for _, field := range taskUpdateFields {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

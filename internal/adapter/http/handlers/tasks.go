package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"planner/internal/adapter/http/dto"
	"planner/internal/adapter/http/mapper"
	"planner/internal/adapter/http/middleware"
	"planner/internal/adapter/http/validation"
	"planner/internal/core/domain"
	"planner/internal/core/ports"
	"planner/pkg/apierrors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	var filter domain.TaskFilter
	if value := c.Query("bucket"); value != "" {
		bucket, ok := domain.ParseFilterBucket(value)
		if !ok {
			respondError(c, http.StatusBadRequest, apierrors.MsgInvalidBucket, lang)
			return
		}
		filter.Bucket = &bucket
	}
	if value := c.Query("project_id"); value != "" {
		projectID, err := strconv.ParseUint(value, 10, 64)
		if err != nil || projectID == 0 {
			respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
			return
		}
		filter.ProjectID = &projectID
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListTask, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseID(c, apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound, lang)
			return
		}

		zap.L().Error("failed to get task", zap.Uint64("task_id", taskID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailGetTask, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	var raw map[string]json.RawMessage
	if err := bindTaskBody(c, &req, &raw); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseID(c, apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	var raw map[string]json.RawMessage
	if err := bindTaskBody(c, &req, &raw); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound, lang)
			return
		}

		zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseID(c, apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound, lang)
			return
		}

		zap.L().Error("failed to delete task", zap.Uint64("task_id", taskID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang)
		return
	}

	c.Status(http.StatusNoContent)
}

// bindTaskBody decodes the body twice: once into the typed request and once
// into raw fields, so explicit nulls can be told apart from absent keys.
func bindTaskBody(c *gin.Context, req any, raw *map[string]json.RawMessage) error {
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		return err
	}
	return c.ShouldBindBodyWith(raw, binding.JSON)
}

func parseID(c *gin.Context, msgKey string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, msgKey, middleware.GetLang(c))
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, status int, msgKey, lang string) {
	c.JSON(status, apierrors.CreateError(status, msgKey, lang))
}

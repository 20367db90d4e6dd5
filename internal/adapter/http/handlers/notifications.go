package handlers

import (
	"errors"
	"net/http"
	"planner/internal/adapter/http/mapper"
	"planner/internal/adapter/http/middleware"
	"planner/internal/core/domain"
	"planner/internal/core/ports"
	"planner/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	lang := middleware.GetLang(c)

	inbox, err := h.notificationService.Inbox(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list notifications", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListNotifications, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToInboxResponse(inbox))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := parseID(c, apierrors.MsgInvalidNotificationID)
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgNotificationNotFound, lang)
			return
		}

		zap.L().Error("failed to mark notification as read", zap.Uint64("notification_id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailUpdateNotification, lang)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.notificationService.MarkAllRead(c.Request.Context()); err != nil {
		zap.L().Error("failed to mark all notifications as read", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailUpdateNotification, lang)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := parseID(c, apierrors.MsgInvalidNotificationID)
	if !ok {
		return
	}

	if err := h.notificationService.DeleteNotification(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgNotificationNotFound, lang)
			return
		}

		zap.L().Error("failed to delete notification", zap.Uint64("notification_id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailDeleteNotification, lang)
		return
	}

	c.Status(http.StatusNoContent)
}

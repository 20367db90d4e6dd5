package http

import (
	"planner/internal/adapter/http/handlers"
	"planner/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health        *handlers.HealthHandler
	Tasks         *handlers.TaskHandler
	Notifications *handlers.NotificationHandler
	Board         *handlers.BoardHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/tasks", h.Tasks.ListTasks)
		api.POST("/tasks", h.Tasks.CreateTask)
		api.GET("/tasks/:id", h.Tasks.GetTask)
		api.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		api.DELETE("/tasks/:id", h.Tasks.DeleteTask)

		api.GET("/board", h.Board.GetBoard)

		api.GET("/notifications", h.Notifications.ListNotifications)
		api.POST("/notifications/read-all", h.Notifications.MarkAllRead)
		api.PATCH("/notifications/:id/read", h.Notifications.MarkRead)
		api.DELETE("/notifications/:id", h.Notifications.DeleteNotification)
	}
}

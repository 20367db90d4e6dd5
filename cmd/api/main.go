package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planner/pkg/clock"
	"planner/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planner/internal/adapter/alerts"
	dbadapter "planner/internal/adapter/db"
	httpadapter "planner/internal/adapter/http"
	"planner/internal/adapter/http/handlers"
	httpmiddleware "planner/internal/adapter/http/middleware"
	"planner/internal/app/board"
	"planner/internal/app/message"
	"planner/internal/app/reload"
	"planner/internal/app/scheduler"
	"planner/internal/app/service"
	"planner/internal/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguagePt, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	policy := cfg.DuePolicy()
	systemClock := clock.System{Location: policy.Location}

	taskRepository := dbadapter.NewTaskRepository(db)
	notificationRepository := dbadapter.NewNotificationRepository(db)
	bus := reload.NewBus()
	composer := message.NewComposer(systemClock, policy, cfg.Language)
	alerter := alerts.NewLocalAlerter(systemClock, alerts.LogDeliverer{}, cfg.AlertsEnabled)
	alertScheduler := scheduler.NewAlertScheduler(alerter, composer, systemClock, policy)

	taskService := service.NewTaskService(service.TaskServiceDeps{
		Tasks:         taskRepository,
		Notifications: notificationRepository,
		Scheduler:     alertScheduler,
		Composer:      composer,
		Reload:        bus,
		Clock:         systemClock,
		Policy:        policy,
	})
	notificationService := service.NewNotificationService(notificationRepository, bus)

	restored, err := taskService.RestoreAlerts(ctx)
	if err != nil {
		logger.Warn("failed to restore alerts", zap.Error(err))
	} else {
		logger.Info("alerts restored", zap.Int("count", restored), zap.Bool("alerts_enabled", cfg.AlertsEnabled))
	}

	homeBoard := board.New(taskRepository, systemClock, policy)
	go homeBoard.Run(ctx, bus)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("trusted_proxies", cfg.TrustedProxies), zap.Error(err))
	}
	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:        handlers.NewHealthHandler(db, alerter),
		Tasks:         handlers.NewTaskHandler(taskService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Board:         handlers.NewBoardHandler(homeBoard),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	server := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
}

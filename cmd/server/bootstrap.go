package main

import (
	"context"

	"github.com/abdullah-briah/neuralinker-sub000/internal/config"
	"github.com/abdullah-briah/neuralinker-sub000/internal/handlers"
	"github.com/abdullah-briah/neuralinker-sub000/internal/models"
	"github.com/abdullah-briah/neuralinker-sub000/internal/services"
	"github.com/abdullah-briah/neuralinker-sub000/internal/utils"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	cfg            *config.Config
	cleanupService *services.CleanupService
	taskQueue      services.TaskQueue
	worker         *services.Worker

	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	projectHandler      *handlers.ProjectHandler
	joinRequestHandler  *handlers.JoinRequestHandler
	notificationHandler *handlers.NotificationHandler
	scorerConfigHandler *handlers.ScorerConfigHandler
	healthHandler       *handlers.HealthHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()

	// Start notification retention scheduler
	notificationService := services.NewNotificationService(db)
	cleanupService := services.NewCleanupService(notificationService, cfg.Notifications.RetentionDays)
	cleanupService.StartScheduler()

	// Initialize mail queue (uses Redis if enabled, otherwise sync mode)
	emailService := services.NewEmailService(&cfg.Email)
	mailProcessor := func(ctx context.Context, task *services.MailTask) error {
		return emailService.SendWelcome(task.Name, task.Email)
	}
	taskQueue := services.InitTaskQueue(cfg)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(mailProcessor)
	}

	// Start async worker if Redis is enabled
	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(mailProcessor)
			worker.Start()
		}
	}

	// Create default admin user
	authHandler := handlers.NewAuthHandler(db, cfg)
	if err := authHandler.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	return &appServices{
		cfg:            cfg,
		cleanupService: cleanupService,
		taskQueue:      taskQueue,
		worker:         worker,

		authHandler:         authHandler,
		userHandler:         handlers.NewUserHandler(db),
		projectHandler:      handlers.NewProjectHandler(db),
		joinRequestHandler:  handlers.NewJoinRequestHandler(db, cfg),
		notificationHandler: handlers.NewNotificationHandler(db),
		scorerConfigHandler: handlers.NewScorerConfigHandler(db),
		healthHandler:       handlers.NewHealthHandler(),
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	s.cleanupService.StopScheduler()
	logger.Info().Msg("All schedulers stopped")

	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
}

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/expensemaster/expense_master_app/internal/adapters/database/mongodb"
	"github.com/expensemaster/expense_master_app/internal/adapters/mailer"
	"github.com/expensemaster/expense_master_app/internal/core/ports"
	"github.com/expensemaster/expense_master_app/internal/core/services"
	"github.com/expensemaster/expense_master_app/internal/handlers"
	"github.com/expensemaster/expense_master_app/internal/middleware"
	"github.com/expensemaster/expense_master_app/internal/platform/config"
	"github.com/expensemaster/expense_master_app/pkg/database"
)

// @title			expenseMaster Backend API
// @version		1.0
// @description	Finance-tracking backend with company ledgers, events, budgets and user directory.
// @BasePath		/api/v1
//
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := database.NewMongoClient(connectCtx, cfg.MongoURI)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer database.CloseMongoClient(context.Background(), client)

	db := client.Database(cfg.MongoDatabase)
	if err := mongodb.EnsureIndexes(connectCtx, db); err != nil {
		logger.Error("Failed to create indexes", "error", err)
		os.Exit(1)
	}

	repos := mongodb.NewRepositoryProvider(db, cfg.StoreTimeout)

	var mail ports.Mailer
	if cfg.ResendAPIKey != "" {
		mail = mailer.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom, cfg.DispatchTimeout)
	} else {
		mail = mailer.NewLogMailer(logger)
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, mail, logger)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.ReminderCron, func() {
		if err := serviceContainer.Reminder.RunOnce(context.Background()); err != nil {
			logger.Error("Reminder scan failed", "error", err)
		}
	}); err != nil {
		logger.Error("Invalid reminder schedule", "schedule", cfg.ReminderCron, "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()
	logger.Info("Reminder scheduler started", "schedule", cfg.ReminderCron)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", "error", err)
		os.Exit(1)
	}

	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Starting server", "port", cfg.Port, "production", cfg.IsProduction)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"log"

	"github.com/sirupsen/logrus"

	"job_orchestrator/internal/config"
	"job_orchestrator/internal/database/sqlite"
	"job_orchestrator/internal/models"
	"job_orchestrator/internal/task_service/api"
	"job_orchestrator/internal/task_service/service"
	"job_orchestrator/internal/task_service/store"
	"job_orchestrator/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	level, err := logrus.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.Init(level)
	appLogger := logger.New("task_service")

	appLogger.Info("Logger initialized")

	// Initialize database connection
	db, err := sqlite.GetDB(&cfg.Databases.SQLite)
	if err != nil {
		appLogger.Fatal(err.Error())
	}
	defer sqlite.Close()
	appLogger.WithField("path", cfg.Databases.SQLite.Path).Info("Database connection established")

	// Auto-migrate database schema. This creates the tasks table on
	// first use and adds columns that older database files are missing,
	// without touching existing rows.
	if err := db.AutoMigrate(&models.Task{}); err != nil {
		appLogger.Fatal(err.Error())
	}
	appLogger.Info("Database migration completed")

	// Initialize dependencies (Store -> Service -> Handler)
	taskStore := store.NewStore(db)
	taskService := service.NewService(taskStore)
	apiHandler := api.NewAPI(taskService, appLogger)
	appLogger.Info("Dependencies injected")

	// Setup and start Gin router
	router := api.SetupRouter(apiHandler)
	appLogger.Info("Starting server on " + cfg.Server.Address)

	if err := router.Run(cfg.Server.Address); err != nil {
		appLogger.Fatal(err.Error())
	}
}

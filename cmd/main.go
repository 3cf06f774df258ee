package main

import (
	"fmt"
	"os"
	"time"

	"github.com/contactapp/backend/internal/clients/redis"
	"github.com/contactapp/backend/internal/db"
	"github.com/contactapp/backend/internal/http/handlers"
	"github.com/contactapp/backend/internal/middleware"
	"github.com/contactapp/backend/internal/pkg/env"
	"github.com/contactapp/backend/internal/pkg/logger"
	"github.com/contactapp/backend/internal/server"
	"github.com/contactapp/backend/internal/services"
	"github.com/contactapp/backend/internal/store"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := env.Get("JWT_SECRET_KEY", "", log)
	accessTokenTTL := env.GetAsInt("ACCESS_TOKEN_TTL", 3600, log)
	authUsername := env.Get("AUTH_USERNAME", "admin", log)
	authPasswordHash := env.Get("AUTH_PASSWORD_HASH", "", log)
	port := env.Get("PORT", "8080", log)

	// Database
	dbService, err := db.New(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = dbService.AutoMigrateAll(); err != nil {
		log.Error("Database auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Stores
	log.Info("Setting up Stores from main...")
	contactStore := store.NewGormContactStore(theDB, log)
	taskStore := store.NewGormTaskStore(theDB, log)
	appointmentStore := store.NewGormAppointmentStore(theDB, log)

	// Services
	log.Info("Setting up Services from main...")
	contactService, err := services.NewContactService(contactStore, log)
	if err != nil {
		log.Error("Could not init ContactService", "error", err)
		os.Exit(1)
	}
	taskService, err := services.NewTaskService(taskStore, log)
	if err != nil {
		log.Error("Could not init TaskService", "error", err)
		os.Exit(1)
	}
	appointmentService, err := services.NewAppointmentService(appointmentStore, log)
	if err != nil {
		log.Error("Could not init AppointmentService", "error", err)
		os.Exit(1)
	}

	var fingerprints services.FingerprintStore
	redisFingerprints, err := redis.NewFingerprintStore(log)
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-memory fingerprint store", "error", err)
		fingerprints = services.NewMemoryFingerprintStore()
	} else {
		defer redisFingerprints.Close()
		fingerprints = redisFingerprints
	}
	authService, err := services.NewAuthService(log, fingerprints, authUsername, authPasswordHash, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
	if err != nil {
		log.Error("Could not init AuthService", "error", err)
		os.Exit(1)
	}

	// Handlers
	log.Info("Setting up Handlers from main...")
	authHandler := handlers.NewAuthHandler(log, authService)
	contactHandler := handlers.NewContactHandler(log, contactService)
	taskHandler := handlers.NewTaskHandler(log, taskService)
	appointmentHandler := handlers.NewAppointmentHandler(log, appointmentService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:        authHandler,
		AuthMiddleware:     authMiddleware,
		ContactHandler:     contactHandler,
		TaskHandler:        taskHandler,
		AppointmentHandler: appointmentHandler,
	})

	log.Info("Starting server...", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

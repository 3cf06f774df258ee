package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/contactapp/backend/internal/http/handlers"
	"github.com/contactapp/backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler        *handlers.AuthHandler
	AuthMiddleware     *middleware.AuthMiddleware
	ContactHandler     *handlers.ContactHandler
	TaskHandler        *handlers.TaskHandler
	AppointmentHandler *handlers.AppointmentHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Auth-Fingerprint"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api/v1")
	api.POST("/auth/login", cfg.AuthHandler.Login)

	// ===============
	// || Protected ||
	// ===============
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/auth/logout", cfg.AuthHandler.Logout)
	// Contacts
	protected.POST("/contacts", cfg.ContactHandler.Create)
	protected.GET("/contacts", cfg.ContactHandler.List)
	protected.GET("/contacts/:id", cfg.ContactHandler.Get)
	protected.PUT("/contacts/:id", cfg.ContactHandler.Update)
	protected.DELETE("/contacts/:id", cfg.ContactHandler.Delete)
	// Tasks
	protected.POST("/tasks", cfg.TaskHandler.Create)
	protected.GET("/tasks", cfg.TaskHandler.List)
	protected.GET("/tasks/:id", cfg.TaskHandler.Get)
	protected.PUT("/tasks/:id", cfg.TaskHandler.Update)
	protected.DELETE("/tasks/:id", cfg.TaskHandler.Delete)
	// Appointments
	protected.POST("/appointments", cfg.AppointmentHandler.Create)
	protected.GET("/appointments", cfg.AppointmentHandler.List)
	protected.GET("/appointments/:id", cfg.AppointmentHandler.Get)
	protected.PUT("/appointments/:id", cfg.AppointmentHandler.Update)
	protected.DELETE("/appointments/:id", cfg.AppointmentHandler.Delete)

	return router
}

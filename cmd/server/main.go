package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/config"
	"taskmanager/internal/database"
	"taskmanager/internal/handlers"
	"taskmanager/internal/middleware"
	"taskmanager/internal/repository"
	"taskmanager/internal/services"
	"taskmanager/internal/session"
)

func main() {
	// Load configuration; a missing session secret aborts startup
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize session codec and manager
	codec, err := session.NewCodec(cfg.SessionSecret)
	if err != nil {
		log.Fatalf("Failed to initialize session codec: %v", err)
	}
	sessions := session.NewManager(codec, cfg.IsProduction())

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, sessions)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService, sessions)
	taskHandler := handlers.NewTaskHandler(taskService)
	pageHandler := handlers.NewPageHandler()

	// Initialize Gin router
	r := gin.Default()

	// Session gate over dashboard pages and API routes
	r.Use(middleware.RequireSession(sessions))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Manager is running",
		})
	})

	// Pages
	r.GET("/", pageHandler.Home)
	r.GET("/login", pageHandler.Login)
	r.GET("/register", pageHandler.Register)
	r.GET("/dashboard", pageHandler.Dashboard)
	r.GET("/dashboard/projects", pageHandler.Dashboard)
	r.GET("/dashboard/tasks", pageHandler.Dashboard)
	r.GET("/dashboard/users", pageHandler.Dashboard)

	// API routes
	api := r.Group("/api")
	{
		// Auth
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/session", authHandler.GetSession)
		api.POST("/register", userHandler.Create)

		// Users (public per the allow-list)
		users := api.Group("/users")
		{
			users.GET("", userHandler.List)
			users.POST("", userHandler.Create)
			users.PATCH("", userHandler.Update)
			users.DELETE("", userHandler.Delete)
		}

		// Projects (protected)
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Create)
			projects.PUT("", projectHandler.Update)
			projects.DELETE("", projectHandler.Delete)
		}

		// Tasks (protected)
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.List)
			tasks.POST("", taskHandler.Create)
			tasks.PUT("", taskHandler.Update)
			tasks.DELETE("", taskHandler.Delete)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

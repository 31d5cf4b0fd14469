package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"job-board-backend/internal/config"
	"job-board-backend/internal/database"
	"job-board-backend/internal/handler"
	"job-board-backend/internal/middleware"
	"job-board-backend/internal/repository"
	"job-board-backend/internal/service"
	"job-board-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration (exits if the token signing config is missing)
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Build the token manager from the immutable startup config
	jwtManager, err := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.Algorithm,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	if err != nil {
		log.Fatalf("Invalid JWT configuration: %v", err)
	}

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	jobRepo := repository.NewJobRepo(db)
	revokedRepo := repository.NewRevokedTokenRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, revokedRepo, auditRepo, jwtManager)
	userService := service.NewUserService(userRepo, auditRepo)
	jobService := service.NewJobService(jobRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// Install custom binding rules (password policy)
	handler.RegisterValidations()

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	jobHandler := handler.NewJobHandler(jobService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "job-board-backend",
		})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/token", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/refresh_token", authHandler.Refresh)
	}

	// User routes (listing and registration are public)
	users := r.Group("/users")
	{
		users.POST("/", userHandler.Register)
		users.GET("/", userHandler.List)
		users.GET("/me", middleware.AuthMiddleware(authService), userHandler.Me)
	}

	// Job routes (public job board)
	jobs := r.Group("/jobs")
	{
		jobs.POST("/", jobHandler.Create)
		jobs.GET("/", jobHandler.List)
	}

	// 10. Start server with graceful shutdown on interrupt
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}

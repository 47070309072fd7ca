package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHTTP "hacktheshell/internal/controller/http"
	"hacktheshell/internal/entity"
	"hacktheshell/internal/repo/persistent"
	"hacktheshell/internal/usecase"
	"hacktheshell/pkg/config"
	"hacktheshell/pkg/jwt"
	"hacktheshell/pkg/logger"
	"hacktheshell/pkg/middleware"
	"hacktheshell/pkg/queue"
	"hacktheshell/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "hacktheshell/docs" // Swagger docs
)

// NewRouter wires repositories, use cases and handlers onto a gin engine.
// Redis, S3 and RabbitMQ are optional; nil disables the features that need them.
func NewRouter(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) *gin.Engine {
	jwtService := jwt.NewService(cfg.JWTSecret)

	var publisher usecase.EventPublisher
	if queueClient != nil {
		publisher = queueClient
	}
	var uploader usecase.MediaUploader
	if s3Client != nil {
		uploader = s3Client
	}

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	toolRepo := persistent.NewToolRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	configRepo := persistent.NewSiteConfigRepository(db)
	achievementRepo := persistent.NewAchievementRepository(db)
	activityRepo := persistent.NewActivityRepository(db)
	seoRepo := persistent.NewSeoRepository(db)

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, publisher, log)
	toolUseCase := usecase.NewToolUseCase(toolRepo, uploader, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, achievementRepo, log)
	configUseCase := usecase.NewSiteConfigUseCase(configRepo, redisClient, log)
	seoUseCase := usecase.NewSeoUseCase(seoRepo, activityRepo)
	searchUseCase := usecase.NewSearchUseCase(postRepo, toolRepo)

	// Initialize HTTP handlers
	postHandler := apiHTTP.NewPostHandler(postUseCase, log)
	toolHandler := apiHTTP.NewToolHandler(toolUseCase, log)
	commentHandler := apiHTTP.NewCommentHandler(commentUseCase, log)
	userHandler := apiHTTP.NewUserHandler(userUseCase, log)
	siteHandler := apiHTTP.NewSiteHandler(configUseCase, seoUseCase, searchUseCase, log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.OptionalAuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute))
	api.Use(middleware.MaintenanceMiddleware(configUseCase, string(entity.RoleAdmin), "/api/admin", "/api/maintenance", "/api/auth"))

	// Public
	{
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/:id", postHandler.GetPost)
		api.GET("/posts/slug/:slug", postHandler.GetPostBySlug)
		api.GET("/posts/:id/comments", commentHandler.ListComments)

		api.GET("/github-tools", toolHandler.ListTools)
		api.GET("/github-tools/:id", toolHandler.GetTool)
		api.GET("/github-tools/slug/:slug", toolHandler.GetToolBySlug)

		api.GET("/search", siteHandler.Search)
		api.GET("/maintenance", siteHandler.GetMaintenance)
		api.POST("/seo/track", siteHandler.TrackPageView)
		api.GET("/seo/metrics", siteHandler.GetMetrics)

		api.GET("/users/:userId/achievements", userHandler.ListAchievements)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))
	{
		authed.GET("/auth/user", userHandler.GetCurrentUser)
		authed.POST("/auth/user", userHandler.SyncCurrentUser)

		authed.POST("/posts", postHandler.CreatePost)
		authed.PUT("/posts/:id", postHandler.UpdatePost)
		authed.PUT("/posts/:id/status", postHandler.UpdatePostStatus)
		authed.DELETE("/posts/:id", postHandler.DeletePost)
		authed.POST("/posts/:id/comments", commentHandler.CreateComment)
		authed.DELETE("/comments/:id", commentHandler.DeleteComment)

		authed.POST("/github-tools", toolHandler.CreateTool)
		authed.PUT("/github-tools/:id", toolHandler.UpdateTool)
		authed.PUT("/github-tools/:id/status", toolHandler.UpdateToolStatus)
		authed.DELETE("/github-tools/:id", toolHandler.DeleteTool)
		authed.POST("/github-tools/:id/media", toolHandler.UploadMedia)

		authed.POST("/users/:userId/achievements", userHandler.CreateAchievement)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtService), middleware.RequireRole(string(entity.RoleAdmin)))
	{
		admin.GET("/config", siteHandler.ListConfig)
		admin.GET("/config/:key", siteHandler.GetConfig)
		admin.PUT("/config/:key", siteHandler.SetConfig)
		admin.POST("/maintenance", siteHandler.SetMaintenance)

		admin.GET("/users", userHandler.ListUsers)
		admin.PUT("/users/:id/role", userHandler.SetRole)
		admin.POST("/users/:id/points", userHandler.AwardPoints)

		admin.GET("/activity", siteHandler.ListActivity)
	}

	return r
}

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	gin.SetMode(cfg.GinMode)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: NewRouter(cfg, log, db, s3Client, queueClient, redisClient),
	}

	go func() {
		log.Info("HackTheShell API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down HackTheShell API...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	log.Info("HackTheShell API exited")
}

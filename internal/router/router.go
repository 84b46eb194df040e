package router

import (
	"context"
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/vidshare-app/backend/internal/handlers"
	"github.com/vidshare-app/backend/internal/middleware"
	"github.com/vidshare-app/backend/internal/models"
	"github.com/vidshare-app/backend/internal/repositories"
	"github.com/vidshare-app/backend/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.RequestID())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, logger *logrus.Logger) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Channel{},
		&models.Subscription{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	mongoDB := mgClient.Database("vidshare")
	if err := repositories.EnsureIndexes(context.Background(), mongoDB); err != nil {
		log.Fatalf("Failed to create MongoDB indexes: %v", err)
	}
	log.Println("MongoDB indexes ensured.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	channelRepo := repositories.NewPostgresChannelRepository(pgdb)
	subscriptionRepo := repositories.NewPostgresSubscriptionRepository(pgdb)
	videoRepo := repositories.NewMongoVideoRepository(mongoDB)
	commentRepo := repositories.NewMongoCommentRepository(mongoDB)
	commentLikeRepo := repositories.NewMongoCommentLikeRepository(mongoDB)
	videoLikeRepo := repositories.NewMongoVideoLikeRepository(mongoDB)
	notificationRepo := repositories.NewMongoNotificationRepository(mongoDB, logger)

	// --- Initialize Services ---
	notificationService := services.NewNotificationService(notificationRepo, userRepo, videoRepo, channelRepo, subscriptionRepo, logger)
	commentService := services.NewCommentService(commentRepo, videoRepo, userRepo, notificationService, logger)
	commentLikeService := services.NewCommentLikeService(commentLikeRepo, commentRepo, notificationService, logger)
	videoLikeService := services.NewVideoLikeService(videoLikeRepo, videoRepo, notificationService, logger)

	// --- Public routes (no authentication) ---
	public := e.Group("/api/v1")

	// --- Protected routes (require Firebase authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient))
	log.Println("Firebase authentication middleware applied to /api/v1 group.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentService)
	commentHandler.RegisterCommentRoutes(api)
	commentHandler.RegisterPublicCommentRoutes(public)
	log.Println("Comment routes configured.")

	// Comment like routes
	commentLikeHandler := handlers.NewCommentLikeHandler(commentLikeService)
	commentLikeHandler.RegisterCommentLikeRoutes(api)
	commentLikeHandler.RegisterPublicCommentLikeRoutes(public)
	log.Println("Comment like routes configured.")

	// Video like routes
	videoLikeHandler := handlers.NewVideoLikeHandler(videoLikeService)
	videoLikeHandler.RegisterVideoLikeRoutes(api)
	log.Println("Video like routes configured.")

	// Video publish routes
	videoHandler := handlers.NewVideoHandler(videoRepo, notificationService, logger)
	videoHandler.RegisterVideoRoutes(api)
	log.Println("Video routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}

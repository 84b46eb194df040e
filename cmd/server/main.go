package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vidshare-app/backend/internal/apperrors"
	"github.com/vidshare-app/backend/internal/router"
	"github.com/vidshare-app/backend/pkg/config"
	"github.com/vidshare-app/backend/pkg/firebase"
	"github.com/vidshare-app/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Structured application logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Initialize database connections
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	// Initialize Firebase
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, firebaseApp.AuthClient, logger)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

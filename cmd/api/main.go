package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "github.com/hrplatform/freelancer-api/docs"
	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/server"
)

// @title           Freelancer Contracts API
// @version         1.0
// @description     Contract, payment, and cross-border tax engine for freelancer management.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := helpers.GetStage()
	logger.InitLogger(stage)
	defer logger.Sync()

	if stage == helpers.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server.InitializeHandlers()
	server.InitializeRoutes(router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, router); err != nil {
		logger.Fatal("Server terminated", zap.Error(err))
	}
	logger.Info("Server exiting")
}

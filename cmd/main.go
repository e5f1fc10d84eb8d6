package main

import (
	"os"
	"strings"

	"kanban-api/internal/api"
	"kanban-api/internal/api/routes"
	"kanban-api/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Load environment variables; .env is optional and real deployments
	// set the environment directly.
	_ = godotenv.Load()

	logger := buildLogger()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Connect to database
	if err := config.ConnectDB(); err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer config.CloseDB()

	// Run migrations
	if err := config.MigrateAllModels(); err != nil {
		zap.L().Fatal("Failed to migrate database", zap.Error(err))
	}

	// Create and configure Fiber app
	app := api.NewServer()

	// Register routes
	routes.Register(app, config.DB)

	// Start server
	if err := api.StartServer(app); err != nil {
		zap.L().Fatal("Failed to start server", zap.Error(err))
	}
}

func buildLogger() *zap.Logger {
	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}

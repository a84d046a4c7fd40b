package main

import (
	"github.com/railflow/salesops/internal/adapter/http/routes"
	"github.com/railflow/salesops/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Parse()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	if err := routes.Run(cfg, logger); err != nil {
		logger.Fatal("failed to start the application", zap.Error(err))
	}
}

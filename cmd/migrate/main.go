package main

import (
	"go-tutorcenter/internal/app"
	"go-tutorcenter/internal/config"
	"go-tutorcenter/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger, err := app.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	apperror.Init()

	if err := app.RunMigrations(cfg); err != nil {
		logger.Fatal("run migrate failed", zap.Error(err))
	}
}

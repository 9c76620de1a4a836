package main

import (
	"context"

	"go-leave/internal/app"
	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	newLogger := zap.NewDevelopment
	if cfg.IsProduction() {
		newLogger = zap.NewProduction
		gin.SetMode(gin.ReleaseMode)
	}
	logger, err := newLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	r := gin.Default()

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)

	// build dependency + routes
	stop := app.BuildApp(context.Background(), r, cfg, auditLogger, logger)
	defer stop()

	bootstrap.StartHTTPServer(r, bootstrap.ServerConfigFrom(cfg), auditLogger)
}

package app

import (
	"context"

	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/leave"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires every module onto router and starts the background
// workers. Calling stop ends them.
func BuildApp(
	ctx context.Context,
	router *gin.Engine,
	cfg config.Config,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) (stop func()) {
	var seed []leave.LeaveRecord
	if cfg.SeedDemoData {
		seed = leave.DemoRecords(cfg.ApplicantName)
		logger.Info("demo leave records loaded", zap.Int("count", len(seed)))
	}
	repo := leave.NewMemoryRepository(seed...)

	mods := registerModules(router, repo, cfg, auditLogger, logger)

	ctx, cancel := context.WithCancel(ctx)
	go RunSessionSweeper(ctx, mods.sessions, logger, cfg.SessionSweep)

	return cancel
}

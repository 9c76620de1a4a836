package app

import (
	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/leave"
	"go-leave/internal/middleware"
	"go-leave/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type modules struct {
	leaveService leave.Service
	sessions     *view.Sessions
}

func registerModules(
	router *gin.Engine,
	leaveRepo leave.Repository,
	cfg config.Config,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) modules {
	// --- Services ---
	leaveService := leave.NewService(leaveRepo, leave.ServiceConfig{
		ApplicantName: cfg.ApplicantName,
		Audit:         auditLogger,
	}, logger)
	sessions := view.NewSessions(cfg.SessionIdle, logger)

	// --- Handlers ---
	leaveHandler := leave.NewHandler(leaveService, logger)
	viewHandler := view.NewHandler(leaveService, sessions, view.Options{
		CookieName:    cfg.SessionCookie,
		ApplicantName: cfg.ApplicantName,
	}, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID(), middleware.ContextLogger(logger))

	api := router.Group("/api/v1", middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	{
		leave.RegisterRoutes(api, leaveHandler)
	}

	view.RegisterRoutes(router, viewHandler)

	return modules{leaveService: leaveService, sessions: sessions}
}

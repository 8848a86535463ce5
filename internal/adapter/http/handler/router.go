package handler

import (
	"crypto-order-agent/internal/adapter/http/middleware"
	"crypto-order-agent/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Watcher        ports.PaymentWatcher
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))

	r.GET("/healthz", HealthCheck(deps.HealthCheckers...))

	notify := NewNotifyHandler(deps.Watcher, deps.Logger)
	r.GET("/electrum_notify/:addr", notify.ElectrumNotify)

	return r
}

// Package handler exposes the agent's small inbound HTTP surface: wallet
// deposit notifications and health.
package handler

import (
	"context"
	"net/http"

	"crypto-order-agent/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NotifyHandler receives deposit callbacks from the wallet daemon.
type NotifyHandler struct {
	watcher ports.PaymentWatcher
	log     zerolog.Logger
}

func NewNotifyHandler(watcher ports.PaymentWatcher, log zerolog.Logger) *NotifyHandler {
	return &NotifyHandler{
		watcher: watcher,
		log:     log.With().Str("component", "notify_handler").Logger(),
	}
}

// ElectrumNotify handles GET /electrum_notify/:addr. The callback is a pure
// hint; the balance check it triggers runs detached from the request, and
// the wallet always gets a 200 so it never retries. Unknown addresses are
// the watcher's problem, not the wallet's.
func (h *NotifyHandler) ElectrumNotify(c *gin.Context) {
	address := c.Param("addr")
	h.log.Info().Str("address", address).Msg("deposit notification received")

	go h.watcher.CheckNow(context.WithoutCancel(c.Request.Context()), address)

	c.String(http.StatusOK, "ok")
}

// HealthCheck handles GET /healthz, verifying every registered dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}

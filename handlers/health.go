package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RegisterHealth registers the liveness and readiness probes. ping reports
// store reachability; a nil ping marks the store dependency as down.
func RegisterHealth(r *gin.Engine, startedAt time.Time, ping func(context.Context) error) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Server is running"})
	})

	// readiness — 200 only when the store is reachable
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{"mongodb": false}
		if ping != nil {
			if err := ping(c.Request.Context()); err == nil {
				deps["mongodb"] = true
			}
		}
		status := http.StatusOK
		state := "ready"
		if !deps["mongodb"] {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startedAt).String()})
	})
}

package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Check probes one dependency. A nil Check reports the dependency as
// disabled.
type Check func(ctx context.Context) error

const checkTimeout = 2 * time.Second

// Health reports the service status and each dependency. Any failing check
// turns the response into 503.
func Health(service string, checks map[string]Check) gin.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
		defer cancel()

		status := http.StatusOK
		results := make(gin.H, len(names))
		for _, name := range names {
			check := checks[name]
			if check == nil {
				results[name] = "disabled"
				continue
			}
			if err := check(ctx); err != nil {
				log.WithError(err).WithField("check", name).Warn("Health check failed")
				results[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}
		c.JSON(status, gin.H{
			"status":  overall,
			"message": service,
			"path":    c.Request.URL.Path,
			"checks":  results,
		})
	}
}

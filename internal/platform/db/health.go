package db

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Stats reports database handle statistics for the health endpoint.
type Stats struct {
	OpenConns int  `json:"open_conns"`
	InUse     int  `json:"in_use"`
	Idle      int  `json:"idle"`
	Healthy   bool `json:"healthy"`
}

// GetStats returns connection statistics for the handle.
func GetStats(handle *sql.DB) *Stats {
	s := handle.Stats()
	return &Stats{
		OpenConns: s.OpenConnections,
		InUse:     s.InUse,
		Idle:      s.Idle,
		Healthy:   true,
	}
}

// HealthHandler returns a handler for the database health check endpoint.
func HealthHandler(handle *sql.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		err := handle.PingContext(ctx)
		stats := GetStats(handle)

		if err != nil {
			stats.Healthy = false
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
				"db":     stats,
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "healthy",
			"db":     stats,
		})
	}
}

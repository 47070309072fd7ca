package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type MaintenanceChecker interface {
	IsMaintenanceMode(ctx context.Context) (bool, error)
}

// MaintenanceMiddleware answers 503 while maintenance mode is on. Admins and
// paths under the listed prefixes are always let through. A failed lookup lets the
// request through rather than taking the site down.
func MaintenanceMiddleware(checker MaintenanceChecker, adminRole string, exempt ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) == adminRole {
			c.Next()
			return
		}
		for _, prefix := range exempt {
			if underPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		enabled, err := checker.IsMaintenanceMode(c.Request.Context())
		if err == nil && enabled {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":       "Site is under maintenance",
				"maintenance": true,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// underPrefix reports whether path is prefix itself or one of its subpaths.
func underPrefix(path, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"eventdesk/internal/helpers"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler is the liveness probe: the process is up.
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ReadinessHandler pings the store with a short deadline so load balancers
// can stop routing to an instance whose database went away.
func ReadinessHandler(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "detail": helpers.StoreUnavailableDetail})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := client.Ping(ctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "detail": helpers.StoreUnavailableDetail})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}

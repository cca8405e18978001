package handler

import (
	"net/http"
	"strconv"
	"time"

	"spinwheel-service/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const principalKey = "principal"

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get("requestID")
		requestID, _ := rid.(string)

		log.Info().
			Str("request_id", requestID).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", raw).
			Str("ip", c.ClientIP()).
			Dur("latency", latency).
			Msg("HTTP Request")
	}
}

// PrincipalMiddleware extracts the resolved identity set by the upstream
// auth layer. Credentials are never inspected here; the gateway strips and
// replaces these headers after verifying the caller.
func PrincipalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr := c.GetHeader("X-User-ID")
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "missing or invalid principal",
				Code:  "UNAUTHORIZED",
			})
			return
		}

		c.Set(principalKey, model.Principal{
			UserID: userID,
			Role:   c.GetHeader("X-User-Role"),
		})
		c.Next()
	}
}

func principalFrom(c *gin.Context) model.Principal {
	v, _ := c.Get(principalKey)
	principal, _ := v.(model.Principal)
	return principal
}

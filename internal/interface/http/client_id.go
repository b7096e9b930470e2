package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/weather-planner/internal/domain/profile"
)

const (
	clientIDHeader = "X-Client-ID"
	clientIDKey    = "client_id"
)

func clientIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(clientIDHeader))
		if id == "" {
			badRequest(c, "missing "+clientIDHeader+" header", nil)
			return
		}
		if err := profile.ValidateClientID(id); err != nil {
			abortWithError(c, fromDomainError(err))
			return
		}
		c.Set(clientIDKey, strings.ToLower(id))
		c.Next()
	}
}

func clientID(c *gin.Context) string {
	return c.GetString(clientIDKey)
}

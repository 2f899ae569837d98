package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onrevhq/attribution-graph-service/internal/dto"
)

const apiKeyHeader = "X-Api-Key"

// RequireAPIKey rejects requests whose X-Api-Key header does not match the
// configured shared secret. An empty secret disables the check so local
// setups can run without credentials.
func RequireAPIKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey != "" && c.GetHeader(apiKeyHeader) != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "unauthorized",
				Message: "missing or invalid API key",
			})
			return
		}

		c.Next()
	}
}

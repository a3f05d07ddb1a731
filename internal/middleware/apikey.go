// Package middleware holds gin middleware shared by the gateway routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akylbek/payment-system/payment-gateway/internal/models"
)

// APIKeyHeader is the header clients present their key in.
const APIKeyHeader = "X-API-Key"

// ParseAPIKeys parses a "name:key,name:key" string into key -> client name.
// Malformed pairs are skipped.
func ParseAPIKeys(s string) map[string]string {
	keys := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, key, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		name, key = strings.TrimSpace(name), strings.TrimSpace(key)
		if name != "" && key != "" {
			keys[key] = name
		}
	}
	return keys
}

// APIKeyAuth rejects requests without a configured API key: 401 when the
// header is missing, 403 when the key is unknown. Health and metrics routes
// are registered outside the guarded group, so they bypass this.
func APIKeyAuth(keys map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(APIKeyHeader)
		if provided == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
			return
		}
		if _, ok := keys[provided]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{Error: "Forbidden"})
			return
		}
		c.Next()
	}
}

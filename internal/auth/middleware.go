package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hrplatform/freelancer-api/internal/constants"
	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/logger"
)

const (
	apiKeyHeader = "X-API-Key"

	// ContextKeyAPIKey holds the authenticated db.ApiKey in the gin
	// context.
	ContextKeyAPIKey = "api_key"
)

// HashKey returns the stored form of an API key.
func HashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// APIKeyMiddleware authenticates requests by the X-API-Key header against
// the key store. Last-used timestamps are updated best-effort.
func APIKeyMiddleware(queries db.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(apiKeyHeader))
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
			return
		}

		record, err := queries.GetAPIKeyByHash(c.Request.Context(), HashKey(key))
		if err != nil {
			logger.Warn("Rejected request with unknown API key",
				zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}

		if err := queries.UpdateAPIKeyLastUsed(c.Request.Context(), record.ID); err != nil {
			logger.Warn("Failed to update API key last used", zap.Error(err))
		}

		c.Set(ContextKeyAPIKey, record)
		c.Next()
	}
}

// RequireAccess refuses keys below the given access level. Levels order
// read < write < admin.
func RequireAccess(level string) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, ok := KeyFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		if accessRank(record.AccessLevel) < accessRank(level) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient access level"})
			return
		}
		c.Next()
	}
}

// KeyFromContext returns the authenticated key, if any.
func KeyFromContext(c *gin.Context) (db.ApiKey, bool) {
	value, exists := c.Get(ContextKeyAPIKey)
	if !exists {
		return db.ApiKey{}, false
	}
	record, ok := value.(db.ApiKey)
	return record, ok
}

func accessRank(level string) int {
	switch level {
	case constants.AccessLevelAdmin:
		return 3
	case constants.AccessLevelWrite:
		return 2
	case constants.AccessLevelRead:
		return 1
	default:
		return 0
	}
}

// Authorizer decides payment approval capability from the authenticated
// key.
type Authorizer struct{}

// CanApprovePayments reports whether the key may sign off payments.
// Admin-level keys and finance or admin roles qualify.
func (Authorizer) CanApprovePayments(_ context.Context, record db.ApiKey) bool {
	return record.AccessLevel == constants.AccessLevelAdmin ||
		record.Role == constants.RoleFinance ||
		record.Role == constants.RoleAdmin
}

// Package adminauth gates administrative routes behind a shared secret
// supplied in the X-Admin-Key request header.
package adminauth

import (
	"crypto/subtle"
	"net/http"

	"github.com/akeren/launchlist/internal/log"
	"github.com/akeren/launchlist/pkg/constants"
	"github.com/gin-gonic/gin"
)

// Middleware rejects every request whose admin key header does not match
// adminKey exactly. The comparison is constant-time so the response latency
// does not depend on how much of the secret matched. An empty server-side
// key fails closed: no request is ever authorized.
func Middleware(logger *log.Logger, adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader(constants.AdminKeyHeader)

		if adminKey == "" || !equalConstantTime(supplied, adminKey) {
			correlatedLogger := logger.WithCorrelationID(c.Request.Context())
			correlatedLogger.Warn("Rejected admin request",
				"path", c.Request.URL.Path,
				"remote_addr", c.ClientIP(),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			return
		}

		c.Next()
	}
}

func equalConstantTime(a, b string) bool {
	// ConstantTimeCompare short-circuits on length mismatch; the length of
	// the configured key is not considered secret here.
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunnytraders/inventory_pro_app/internal/utils"
)

// DashboardPassphraseHeader carries the shared passphrase gating the
// financial dashboard view.
const DashboardPassphraseHeader = "X-Dashboard-Passphrase"

// DashboardGate creates a Gin middleware handler that checks the shared
// dashboard passphrase against its bcrypt hash. This is a view gate for a
// single-operator deployment, not an authentication system.
func DashboardGate(passphraseHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		supplied := c.GetHeader(DashboardPassphraseHeader)
		if supplied == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Dashboard passphrase required"})
			return
		}

		if !utils.CheckPassphraseHash(supplied, passphraseHash) {
			logger.Warn("Incorrect dashboard passphrase")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Incorrect passphrase"})
			return
		}

		c.Next()
	}
}

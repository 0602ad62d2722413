package middleware

import (
	"net/http"
	"time"

	"membership-app/internal/domain/membership"

	"github.com/gin-gonic/gin"
)

// RequireActiveMembership blocks routes that only paying members may
// reach. Tier state comes from the membership service, never from raw
// order rows.
func RequireActiveMembership(memberships *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		m, err := memberships.GetMembership(userID, time.Now())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve membership"})
			return
		}

		if m.Status == membership.StatusExpired {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{"error": "Your membership has expired"})
			return
		}
		if !m.Active() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Membership not found or expired"})
			return
		}

		c.Next()
	}
}

package middleware

import (
	"chef_brigade_backend/internal/model"
	"chef_brigade_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ClaimsTier resolves the caller's tier from JWT claims; guests and claims
// without a tier count as free.
func ClaimsTier(c *gin.Context) model.Tier {
	claims := util.GetUserFromContext(c)
	if claims == nil || claims.Tier == "" {
		return model.TierFree
	}
	return claims.Tier
}

// RequireTier denies with 403 unless the caller's tier passes the gate.
// Admins always pass; an unknown tier in the claims fails closed.
func RequireTier(required model.Tier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if claims.Role == model.Admin {
			c.Next()
			return
		}

		if !model.HasAccess(claims.Tier, required) {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

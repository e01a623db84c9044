package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"chef_brigade_backend/internal/model"
	"chef_brigade_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(claims *util.Claims) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if claims != nil {
		c.Set("user", claims)
	}
	return c, w
}

func TestClaimsTier(t *testing.T) {
	guest, _ := testContext(nil)
	assert.Equal(t, model.TierFree, ClaimsTier(guest))

	noTier, _ := testContext(&util.Claims{UserID: 1})
	assert.Equal(t, model.TierFree, ClaimsTier(noTier))

	guild, _ := testContext(&util.Claims{UserID: 1, Tier: model.TierGuild})
	assert.Equal(t, model.TierGuild, ClaimsTier(guild))
}

func TestRequireTierDeniesGuests(t *testing.T) {
	c, w := testContext(nil)
	RequireTier(model.TierFree)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireTierGate(t *testing.T) {
	c, w := testContext(&util.Claims{UserID: 1, Role: model.Member, Tier: model.TierFree})
	RequireTier(model.TierBrigade)(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)

	c, _ = testContext(&util.Claims{UserID: 1, Role: model.Member, Tier: model.TierBrigade})
	RequireTier(model.TierBrigade)(c)
	assert.False(t, c.IsAborted())

	c, _ = testContext(&util.Claims{UserID: 1, Role: model.Member, Tier: model.TierGuild})
	RequireTier(model.TierBrigade)(c)
	assert.False(t, c.IsAborted())
}

func TestRequireTierUnknownTierFailsClosed(t *testing.T) {
	c, w := testContext(&util.Claims{UserID: 1, Role: model.Member, Tier: "sous-chef"})
	RequireTier(model.TierFree)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireTierAdminBypass(t *testing.T) {
	c, _ := testContext(&util.Claims{UserID: 1, Role: model.Admin, Tier: model.TierFree})
	RequireTier(model.TierGuild)(c)

	assert.False(t, c.IsAborted())
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierIndexOrdering(t *testing.T) {
	assert.Equal(t, 0, TierFree.Index())
	assert.Equal(t, 1, TierBrigade.Index())
	assert.Equal(t, 2, TierFraternity.Index())
	assert.Equal(t, 3, TierGuild.Index())
	assert.Equal(t, -1, Tier("sous-chef").Index())
	assert.Equal(t, -1, Tier("").Index())
}

func TestTierValid(t *testing.T) {
	for _, tier := range AllTiers() {
		assert.True(t, tier.Valid(), "tier %s should be valid", tier)
	}
	assert.False(t, Tier("platinum").Valid())
}

func TestHasAccess(t *testing.T) {
	// A member always reaches their own tier and everything below it.
	assert.True(t, HasAccess(TierGuild, TierFree))
	assert.True(t, HasAccess(TierGuild, TierGuild))
	assert.True(t, HasAccess(TierBrigade, TierBrigade))
	assert.True(t, HasAccess(TierFraternity, TierBrigade))

	// Never anything above.
	assert.False(t, HasAccess(TierFree, TierBrigade))
	assert.False(t, HasAccess(TierBrigade, TierFraternity))
	assert.False(t, HasAccess(TierFraternity, TierGuild))
}

func TestHasAccessEmptyTierIsFree(t *testing.T) {
	assert.True(t, HasAccess("", TierFree))
	assert.False(t, HasAccess("", TierBrigade))
}

func TestHasAccessUnknownTierFailsClosed(t *testing.T) {
	assert.False(t, HasAccess("sous-chef", TierFree))
	assert.False(t, HasAccess("sous-chef", TierGuild))
}

func TestTiersAtOrAbove(t *testing.T) {
	assert.Equal(t, []Tier{TierFree, TierBrigade, TierFraternity, TierGuild}, TiersAtOrAbove(TierFree))
	assert.Equal(t, []Tier{TierFraternity, TierGuild}, TiersAtOrAbove(TierFraternity))
	assert.Equal(t, []Tier{TierGuild}, TiersAtOrAbove(TierGuild))
	assert.Nil(t, TiersAtOrAbove("sous-chef"))
}

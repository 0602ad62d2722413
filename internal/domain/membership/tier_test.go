package membership_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership-app/internal/domain/membership"
)

func TestParseTierLenient(t *testing.T) {
	assert.Equal(t, membership.TierExplorer, membership.ParseTier("explorer"))
	assert.Equal(t, membership.TierTraveler, membership.ParseTier(" Traveler "))
	assert.Equal(t, membership.TierPro, membership.ParseTier("PRO"))

	// Legacy rows without a tier fall back to the unprivileged level.
	assert.Equal(t, membership.TierNone, membership.ParseTier(""))
	assert.Equal(t, membership.TierNone, membership.ParseTier("gold"))
}

func TestMustParseTierStrict(t *testing.T) {
	tier, err := membership.MustParseTier("pro")
	require.NoError(t, err)
	assert.Equal(t, membership.TierPro, tier)

	_, err = membership.MustParseTier("gold")
	assert.Error(t, err)
}

func TestTierOrdering(t *testing.T) {
	assert.True(t, membership.TierPro.AtLeast(membership.TierTraveler))
	assert.True(t, membership.TierTraveler.AtLeast(membership.TierTraveler))
	assert.False(t, membership.TierExplorer.AtLeast(membership.TierTraveler))
	assert.True(t, membership.TierNone.AtLeast(membership.TierNone))
}

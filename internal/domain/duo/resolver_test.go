package duo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership-app/internal/domain/duo"
)

// June 15th, so months 1..5 of 2025 are in the past.
var refTime = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

type fakePassRepo struct {
	passes []duo.Pass
}

func (f *fakePassRepo) GetPassesForUser(userID uint) ([]duo.Pass, error) {
	var out []duo.Pass
	for _, p := range f.passes {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func resolve(t *testing.T, passes []duo.Pass, year int, tier duo.Tier) duo.PurchaseOptions {
	t.Helper()
	r := duo.NewResolver(&fakePassRepo{passes: passes})
	opts, err := r.Resolve(7, year, tier, refTime)
	require.NoError(t, err)
	return opts
}

func TestResolveReturnsTwelveMonthsAscending(t *testing.T) {
	opts := resolve(t, nil, 2025, duo.TierGo)

	require.Len(t, opts.Options, 12)
	assert.Equal(t, 2025, opts.Year)
	assert.Equal(t, "go", opts.SelectedTier)
	for i, o := range opts.Options {
		assert.Equal(t, i+1, o.Month)
	}
}

func TestResolvePastMonthsDisabled(t *testing.T) {
	opts := resolve(t, nil, 2025, duo.TierGo)

	for _, o := range opts.Options[:5] {
		assert.Equal(t, duo.StateDisabled, o.State, "month %d", o.Month)
		assert.Equal(t, duo.ReasonPastMonth, o.Reason, "month %d", o.Month)
		assert.Zero(t, o.Price, "month %d", o.Month)
	}
}

func TestResolveCurrentAndFutureMonthsAvailable(t *testing.T) {
	opts := resolve(t, nil, 2025, duo.TierGo)

	for _, o := range opts.Options[5:] {
		assert.Equal(t, duo.StateAvailable, o.State, "month %d", o.Month)
		assert.Equal(t, duo.PriceGo, o.Price, "month %d", o.Month)
	}
}

func TestResolvePastYearEntirelyDisabled(t *testing.T) {
	// A December pass in a past year must not resurface as owned.
	passes := []duo.Pass{{UserID: 7, Year: 2024, Month: 12, Tier: "fly"}}
	opts := resolve(t, passes, 2024, duo.TierGo)

	for _, o := range opts.Options {
		assert.Equal(t, duo.StateDisabled, o.State, "month %d", o.Month)
		assert.Equal(t, duo.ReasonPastMonth, o.Reason, "month %d", o.Month)
	}
}

func TestResolveFutureYearEntirelyAvailable(t *testing.T) {
	opts := resolve(t, nil, 2026, duo.TierRun)

	for _, o := range opts.Options {
		assert.Equal(t, duo.StateAvailable, o.State, "month %d", o.Month)
		assert.Equal(t, duo.PriceRun, o.Price, "month %d", o.Month)
	}
}

func TestResolveOwnedSameTier(t *testing.T) {
	passes := []duo.Pass{{UserID: 7, Year: 2025, Month: 8, Tier: "run"}}
	opts := resolve(t, passes, 2025, duo.TierRun)

	aug := opts.Options[7]
	assert.Equal(t, duo.StateOwned, aug.State)
	assert.Zero(t, aug.Price)
	assert.Equal(t, "run", aug.CurrentTier)
}

func TestResolveUpgradePriceIsDifference(t *testing.T) {
	passes := []duo.Pass{{UserID: 7, Year: 2025, Month: 9, Tier: "run"}}
	opts := resolve(t, passes, 2025, duo.TierFly)

	sep := opts.Options[8]
	assert.Equal(t, duo.StateUpgrade, sep.State)
	assert.Equal(t, duo.PriceFly-duo.PriceRun, sep.Price)
	assert.Equal(t, int64(2500), sep.Price)
	assert.Equal(t, "run", sep.CurrentTier)
}

func TestResolveHigherTierOwnedDisablesDowngrade(t *testing.T) {
	passes := []duo.Pass{{UserID: 7, Year: 2025, Month: 10, Tier: "fly"}}
	opts := resolve(t, passes, 2025, duo.TierGo)

	oct := opts.Options[9]
	assert.Equal(t, duo.StateDisabled, oct.State)
	assert.Equal(t, duo.ReasonHigherTierOwned, oct.Reason)
	assert.Equal(t, "fly", oct.CurrentTier)
	assert.Zero(t, oct.Price)
}

func TestResolvePastMonthWinsOverOwnership(t *testing.T) {
	passes := []duo.Pass{{UserID: 7, Year: 2025, Month: 3, Tier: "go"}}
	opts := resolve(t, passes, 2025, duo.TierGo)

	mar := opts.Options[2]
	assert.Equal(t, duo.StateDisabled, mar.State)
	assert.Equal(t, duo.ReasonPastMonth, mar.Reason)
}

func TestResolveOtherYearsPassesIgnored(t *testing.T) {
	passes := []duo.Pass{{UserID: 7, Year: 2026, Month: 7, Tier: "fly"}}
	opts := resolve(t, passes, 2025, duo.TierGo)

	jul := opts.Options[6]
	assert.Equal(t, duo.StateAvailable, jul.State)
	assert.Equal(t, duo.PriceGo, jul.Price)
}

func TestResolveRejectsInvalidTier(t *testing.T) {
	r := duo.NewResolver(&fakePassRepo{})
	_, err := r.Resolve(7, 2025, duo.Tier(99), refTime)
	assert.Error(t, err)
}

func TestResolveIsIdempotent(t *testing.T) {
	passes := []duo.Pass{
		{UserID: 7, Year: 2025, Month: 7, Tier: "go"},
		{UserID: 7, Year: 2025, Month: 8, Tier: "fly"},
	}
	first := resolve(t, passes, 2025, duo.TierRun)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, resolve(t, passes, 2025, duo.TierRun))
	}
}

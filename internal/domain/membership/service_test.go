package membership_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership-app/internal/domain/membership"
	"membership-app/internal/domain/orders"
)

var refTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeOrderRepo struct {
	orders []orders.Order
}

func (f *fakeOrderRepo) GetOrdersForUser(userID uint) ([]orders.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepo) GetTotalPaidAmount() (int64, error) {
	return 0, nil
}

func paid(tier string, paidAt time.Time, months int) orders.Order {
	return orders.Order{
		PlanTier:       tier,
		DurationMonths: months,
		Status:         orders.StatusPaid,
		PaidAt:         &paidAt,
	}
}

func TestGetMembershipAnonymousIsEmpty(t *testing.T) {
	svc := membership.NewService(&fakeOrderRepo{}, nil)

	m, err := svc.GetMembership(0, refTime)
	require.NoError(t, err)

	assert.Equal(t, membership.StatusNone, m.Status)
	assert.Equal(t, membership.TierNone, m.Tier)
	assert.False(t, m.Active())
}

func TestGetMembershipNoOrders(t *testing.T) {
	svc := membership.NewService(&fakeOrderRepo{}, nil)

	m, err := svc.GetMembership(7, refTime)
	require.NoError(t, err)

	assert.Equal(t, membership.StatusNone, m.Status)
	assert.False(t, m.Active())
}

func TestGetMembershipActiveOrder(t *testing.T) {
	repo := &fakeOrderRepo{orders: []orders.Order{
		paid("traveler", refTime.AddDate(0, 0, -10), 1),
	}}
	svc := membership.NewService(repo, nil)

	m, err := svc.GetMembership(7, refTime)
	require.NoError(t, err)

	assert.Equal(t, membership.StatusActive, m.Status)
	assert.Equal(t, membership.TierTraveler, m.Tier)
	assert.True(t, m.Active())
	require.NotNil(t, m.Until)
	assert.Equal(t, refTime.AddDate(0, 1, -10), *m.Until)
}

func TestGetMembershipHighestActiveTierWins(t *testing.T) {
	repo := &fakeOrderRepo{orders: []orders.Order{
		paid("pro", refTime.AddDate(0, 0, -20), 1),
		paid("explorer", refTime.AddDate(0, 0, -5), 1),
	}}
	svc := membership.NewService(repo, nil)

	m, err := svc.GetMembership(7, refTime)
	require.NoError(t, err)

	assert.Equal(t, membership.TierPro, m.Tier)
	assert.True(t, m.Active())
}

func TestGetMembershipExpiredKeepsLastTier(t *testing.T) {
	repo := &fakeOrderRepo{orders: []orders.Order{
		paid("pro", refTime.AddDate(0, -6, 0), 1),
		paid("traveler", refTime.AddDate(0, -3, 0), 1),
	}}
	svc := membership.NewService(repo, nil)

	m, err := svc.GetMembership(7, refTime)
	require.NoError(t, err)

	assert.Equal(t, membership.StatusExpired, m.Status)
	assert.Equal(t, membership.TierTraveler, m.Tier, "most recently lapsed window wins")
	assert.False(t, m.Active())
}

func TestGetMembershipWindowIsHalfOpen(t *testing.T) {
	paidAt := refTime.AddDate(0, -1, 0)
	repo := &fakeOrderRepo{orders: []orders.Order{paid("pro", paidAt, 1)}}
	svc := membership.NewService(repo, nil)

	// Exactly at expiry the membership no longer counts.
	m, err := svc.GetMembership(7, refTime)
	require.NoError(t, err)
	assert.Equal(t, membership.StatusExpired, m.Status)

	m, err = svc.GetMembership(7, refTime.Add(-time.Second))
	require.NoError(t, err)
	assert.Equal(t, membership.StatusActive, m.Status)
}

func TestGetMembershipIgnoresUnpaidOrders(t *testing.T) {
	paidAt := refTime.AddDate(0, 0, -1)
	repo := &fakeOrderRepo{orders: []orders.Order{
		{PlanTier: "pro", DurationMonths: 1, Status: orders.StatusPending, PaidAt: &paidAt},
		{PlanTier: "pro", DurationMonths: 1, Status: orders.StatusRefunded, PaidAt: &paidAt},
		{PlanTier: "pro", DurationMonths: 1, Status: orders.StatusPaid, PaidAt: nil},
	}}
	svc := membership.NewService(repo, nil)

	m, err := svc.GetMembership(7, refTime)
	require.NoError(t, err)

	assert.Equal(t, membership.StatusNone, m.Status)
}

func TestGetMembershipMultiMonthDuration(t *testing.T) {
	repo := &fakeOrderRepo{orders: []orders.Order{
		paid("explorer", refTime.AddDate(0, -5, 0), 12),
	}}
	svc := membership.NewService(repo, nil)

	m, err := svc.GetMembership(7, refTime)
	require.NoError(t, err)

	assert.Equal(t, membership.StatusActive, m.Status)
	assert.Equal(t, membership.TierExplorer, m.Tier)
}

type fixedStrategy struct{}

func (fixedStrategy) Derive(userID uint, history []orders.Order, now time.Time) membership.Membership {
	return membership.Membership{UserID: userID, Tier: membership.TierPro, Status: membership.StatusActive}
}

func TestServiceUsesInjectedStrategy(t *testing.T) {
	svc := membership.NewService(&fakeOrderRepo{}, fixedStrategy{})

	m, err := svc.GetMembership(7, refTime)
	require.NoError(t, err)

	assert.Equal(t, membership.TierPro, m.Tier)
	assert.True(t, m.Active())
}

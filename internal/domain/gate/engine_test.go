package gate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership-app/internal/domain/gate"
	"membership-app/internal/domain/learn"
	"membership-app/internal/domain/membership"
	"membership-app/internal/domain/orders"
)

var refTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// fakeOrderRepo serves canned order history keyed by user.
type fakeOrderRepo struct {
	orders map[uint][]orders.Order
}

func (f *fakeOrderRepo) GetOrdersForUser(userID uint) ([]orders.Order, error) {
	return f.orders[userID], nil
}

func (f *fakeOrderRepo) GetTotalPaidAmount() (int64, error) {
	return 0, nil
}

func paidOrder(tier string, paidAt time.Time, months int) orders.Order {
	return orders.Order{
		PlanTier:       tier,
		DurationMonths: months,
		Status:         orders.StatusPaid,
		PaidAt:         &paidAt,
	}
}

func newEngine(t *testing.T, history map[uint][]orders.Order) *gate.Engine {
	t.Helper()
	svc := membership.NewService(&fakeOrderRepo{orders: history}, nil)
	return gate.NewEngine(svc, gate.DefaultPolicies())
}

func TestEvaluateUnsupportedResourceFailsClosed(t *testing.T) {
	engine := newEngine(t, nil)

	resp, err := engine.Evaluate(1, gate.Resource("playlist"), gate.ActionView, nil, refTime)
	require.NoError(t, err)

	assert.False(t, resp.Allowed)
	assert.Equal(t, gate.ReasonUnsupportedResource, resp.Reason)
	assert.Equal(t, gate.NextNone, resp.NextAction)
}

func TestEvaluateFreeCourseAllowsAnonymous(t *testing.T) {
	engine := newEngine(t, nil)
	course := &learn.Course{Slug: "intro", IsFree: true, RequiredLevel: "pro"}

	resp, err := engine.Evaluate(0, gate.ResourceCourse, gate.ActionView, course, refTime)
	require.NoError(t, err)

	assert.True(t, resp.Allowed)
	assert.Equal(t, gate.ReasonOK, resp.Reason)
	assert.Equal(t, gate.NextNone, resp.NextAction)
}

func TestEvaluatePaidCourseAnonymousGetsLogin(t *testing.T) {
	engine := newEngine(t, nil)
	course := &learn.Course{Slug: "deep-dive", RequiredLevel: "explorer"}

	resp, err := engine.Evaluate(0, gate.ResourceCourse, gate.ActionView, course, refTime)
	require.NoError(t, err)

	assert.False(t, resp.Allowed)
	assert.Equal(t, gate.ReasonNotAuthenticated, resp.Reason)
	assert.Equal(t, gate.NextLogin, resp.NextAction)
}

func TestEvaluateTierTooLowGetsUpgrade(t *testing.T) {
	engine := newEngine(t, map[uint][]orders.Order{
		7: {paidOrder("explorer", refTime.AddDate(0, 0, -10), 1)},
	})
	course := &learn.Course{Slug: "masterclass", RequiredLevel: "pro"}

	resp, err := engine.Evaluate(7, gate.ResourceCourse, gate.ActionView, course, refTime)
	require.NoError(t, err)

	assert.False(t, resp.Allowed)
	assert.Equal(t, gate.ReasonInsufficientTier, resp.Reason)
	assert.Equal(t, gate.NextUpgrade, resp.NextAction)
}

func TestEvaluateSufficientTierAllows(t *testing.T) {
	engine := newEngine(t, map[uint][]orders.Order{
		7: {paidOrder("pro", refTime.AddDate(0, 0, -10), 1)},
	})
	course := &learn.Course{Slug: "masterclass", RequiredLevel: "traveler"}

	resp, err := engine.Evaluate(7, gate.ResourceCourse, gate.ActionView, course, refTime)
	require.NoError(t, err)

	assert.True(t, resp.Allowed)
}

func TestEvaluateExpiredMembershipGrantsNoTier(t *testing.T) {
	engine := newEngine(t, map[uint][]orders.Order{
		7: {paidOrder("pro", refTime.AddDate(0, -3, 0), 1)},
	})
	course := &learn.Course{Slug: "masterclass", RequiredLevel: "explorer"}

	resp, err := engine.Evaluate(7, gate.ResourceCourse, gate.ActionView, course, refTime)
	require.NoError(t, err)

	assert.False(t, resp.Allowed)
	assert.Equal(t, gate.ReasonInsufficientTier, resp.Reason)
	assert.Equal(t, gate.NextUpgrade, resp.NextAction)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	engine := newEngine(t, map[uint][]orders.Order{
		7: {paidOrder("explorer", refTime.AddDate(0, 0, -10), 1)},
	})
	course := &learn.Course{Slug: "masterclass", RequiredLevel: "pro"}

	first, err := engine.Evaluate(7, gate.ResourceCourse, gate.ActionView, course, refTime)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := engine.Evaluate(7, gate.ResourceCourse, gate.ActionView, course, refTime)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDenyDerivesNextAction(t *testing.T) {
	cases := []struct {
		reason gate.Reason
		next   gate.NextAction
	}{
		{gate.ReasonNotAuthenticated, gate.NextLogin},
		{gate.ReasonInsufficientTier, gate.NextUpgrade},
		{gate.ReasonMembershipRequired, gate.NextUpgrade},
		{gate.ReasonBoardLocked, gate.NextNone},
		{gate.ReasonSprintNotActive, gate.NextNone},
		{gate.ReasonSubmissionClosed, gate.NextNone},
		{gate.ReasonUnsupportedResource, gate.NextNone},
	}

	for _, tc := range cases {
		resp := gate.Deny(tc.reason)
		assert.False(t, resp.Allowed)
		assert.Equal(t, tc.next, resp.NextAction, "reason %s", tc.reason)
	}
}

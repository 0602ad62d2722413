package stripe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"membership-app/internal/infra/stripe"
)

func TestNormalizeStripeStatus(t *testing.T) {
	str := func(s string) *string { return &s }

	cases := []struct {
		in   *string
		want string
	}{
		{nil, "none"},
		{str(""), "none"},
		{str("   "), "none"},
		{str("active"), "active"},
		{str("trialing"), "trialing"},
		{str("past_due"), "past_due"},
		{str("unpaid"), "past_due"},
		{str("canceled"), "canceled"},
		{str("incomplete_expired"), "canceled"},
		{str("incomplete"), "incomplete"},
		{str("  active  "), "active"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, stripe.NormalizeStripeStatus(tc.in))
	}
}

package stripewebhooks

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"membership-app/database"
	"membership-app/internal/domain/membership"
	"membership-app/internal/domain/orders"
	"membership-app/internal/domain/plans"
	"membership-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/subscription"
)

func handleCheckoutSessionCompleted(c *gin.Context, session *stripe.CheckoutSession) error {
	// Duo passes are one-time payments tagged in session metadata;
	// everything else is a membership subscription.
	if session.Metadata != nil && session.Metadata["kind"] == "duo_pass" {
		return handleDuoCheckoutCompleted(session)
	}
	return handleMembershipCheckoutCompleted(session)
}

func handleMembershipCheckoutCompleted(session *stripe.CheckoutSession) error {
	// Fetch full session with expansions
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("subscription"),
				stripe.String("customer"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}

	if fullSession.Subscription == nil || fullSession.Subscription.ID == "" {
		return errors.New("checkout session missing subscription")
	}
	subscriptionID := fullSession.Subscription.ID

	subData, err := subscription.Get(subscriptionID, nil)
	if err != nil || subData == nil || subData.Items == nil || len(subData.Items.Data) == 0 || subData.Items.Data[0].Price == nil {
		return fmt.Errorf("failed to fetch subscription items: %w", err)
	}

	// Identify user: metadata.user_id preferred, else ClientReferenceID
	userID, err := userIDFromSubscriptionOrRef(subData, fullSession.ClientReferenceID)
	if err != nil {
		return err
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	// Map Stripe price -> Plan
	priceID := subData.Items.Data[0].Price.ID
	var plan plans.Plan
	if err := database.DB.Where("stripe_price_id = ?", priceID).First(&plan).Error; err != nil {
		return fmt.Errorf("plan not found for stripe price_id=%s: %w", priceID, err)
	}

	now := time.Now()
	periodEnd := time.Unix(subData.CurrentPeriodEnd, 0)
	status := string(subData.Status)

	updates := map[string]interface{}{
		"plan_id":                    plan.ID,
		"subscription_id":            subscriptionID,
		"subscription_start":         now,
		"subscription_end":           periodEnd,
		"current_period_end":         periodEnd,
		"stripe_subscription_status": status,
	}

	if fullSession.Customer != nil && fullSession.Customer.ID != "" {
		updates["stripe_customer_id"] = fullSession.Customer.ID
	}

	// Cancel a superseded subscription so the user is never double-billed
	if user.SubscriptionId != nil && *user.SubscriptionId != "" && *user.SubscriptionId != subscriptionID {
		_, _ = subscription.Cancel(*user.SubscriptionId, nil)
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update user after checkout: %w", err)
	}

	// Record the order; membership tier derivation reads these rows.
	sessionID := fullSession.ID
	paidAt := now
	months := plan.DurationMonths
	if months <= 0 {
		months = 1
	}
	order := orders.Order{
		Reference:       uuid.NewString(),
		UserID:          user.ID,
		PlanID:          &plan.ID,
		PlanTier:        plan.Tier,
		DurationMonths:  months,
		AmountCents:     int64(plan.PriceEUR * 100),
		Currency:        "eur",
		Status:          orders.StatusPaid,
		StripeSessionID: &sessionID,
		PaidAt:          &paidAt,
	}
	if err := database.DB.Create(&order).Error; err != nil {
		return fmt.Errorf("failed to record order: %w", err)
	}

	record := membership.Record{
		UserID:   user.ID,
		Tier:     plan.Tier,
		StartsAt: now,
		EndsAt:   now.AddDate(0, months, 0),
		Source:   "stripe",
	}
	if err := database.DB.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to record membership period: %w", err)
	}

	return nil
}

func userIDFromSubscriptionOrRef(sub *stripe.Subscription, clientRef string) (uint, error) {
	userIDStr := ""
	if sub.Metadata != nil {
		userIDStr = sub.Metadata["user_id"]
	}
	if userIDStr == "" {
		userIDStr = clientRef
	}
	if userIDStr == "" {
		return 0, errors.New("missing user_id (metadata.user_id or client_reference_id)")
	}

	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user_id %q: %w", userIDStr, err)
	}
	return uint(uid64), nil
}

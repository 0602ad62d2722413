package membership

import (
	"fmt"
	"time"

	"membership-app/internal/domain/orders"
)

// TierStrategy turns raw order history into a Membership. The accrual
// rules (stacking, renewal, grace) vary by market, so they stay behind
// this interface instead of being baked into the service.
type TierStrategy interface {
	Derive(userID uint, history []orders.Order, now time.Time) Membership
}

// Service is the single source of truth for a user's current tier.
// Other components must not infer tier from raw order data themselves.
type Service struct {
	orders   orders.Repository
	strategy TierStrategy
}

func NewService(orderRepo orders.Repository, strategy TierStrategy) *Service {
	if strategy == nil {
		strategy = LatestPaidOrderStrategy{}
	}
	return &Service{orders: orderRepo, strategy: strategy}
}

// GetMembership derives the user's membership at the supplied reference
// time. userID 0 means an anonymous caller and yields an empty membership.
func (s *Service) GetMembership(userID uint, now time.Time) (Membership, error) {
	if userID == 0 {
		return Membership{Status: StatusNone, Tier: TierNone}, nil
	}

	history, err := s.orders.GetOrdersForUser(userID)
	if err != nil {
		return Membership{}, fmt.Errorf("load orders for user %d: %w", userID, err)
	}

	return s.strategy.Derive(userID, history, now), nil
}

// LatestPaidOrderStrategy picks the highest tier among paid orders whose
// validity window (paid-at plus plan duration) covers now. When every
// window has lapsed, the most recent one determines the expired tier.
type LatestPaidOrderStrategy struct{}

func (LatestPaidOrderStrategy) Derive(userID uint, history []orders.Order, now time.Time) Membership {
	best := Membership{UserID: userID, Tier: TierNone, Status: StatusNone}
	var lastExpired *Membership

	for i := range history {
		o := history[i]
		if o.Status != orders.StatusPaid || o.PaidAt == nil {
			continue
		}

		months := o.DurationMonths
		if months <= 0 {
			months = 1
		}
		since := *o.PaidAt
		until := since.AddDate(0, months, 0)
		tier := ParseTier(o.PlanTier)

		if !now.Before(since) && now.Before(until) {
			if tier > best.Tier || best.Status != StatusActive {
				s, u := since, until
				best = Membership{UserID: userID, Tier: tier, Status: StatusActive, Since: &s, Until: &u}
			}
			continue
		}

		if !now.Before(until) {
			if lastExpired == nil || until.After(*lastExpired.Until) {
				s, u := since, until
				lastExpired = &Membership{UserID: userID, Tier: tier, Status: StatusExpired, Since: &s, Until: &u}
			}
		}
	}

	if best.Status == StatusActive {
		return best
	}
	if lastExpired != nil {
		return *lastExpired
	}
	return best
}

package users

import "time"

type MeResponse struct {
	User       UserDTO       `json:"user"`
	Membership MembershipDTO `json:"membership"`
	Billing    BillingDTO    `json:"billing"`
	Duo        DuoDTO        `json:"duo"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

/* ---------- MEMBERSHIP ---------- */

type MembershipDTO struct {
	Tier   string     `json:"tier"`   // none|explorer|traveler|pro
	Status string     `json:"status"` // none|active|expired
	Since  *time.Time `json:"since,omitempty"`
	Until  *time.Time `json:"until,omitempty"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Plan         *PlanDTO         `json:"plan"`
	Subscription *SubscriptionDTO `json:"subscription"`
}

type PlanDTO struct {
	ID            uint    `json:"id"`
	Key           string  `json:"key"`
	Interval      string  `json:"interval"`
	PriceEUR      float64 `json:"price_eur"`
	StripePriceID string  `json:"stripe_price_id"`
}

type SubscriptionDTO struct {
	Status               string     `json:"status"`
	StartsAt             *time.Time `json:"starts_at"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id"`
}

/* ---------- DUO ---------- */

type DuoDTO struct {
	PassCount   int           `json:"pass_count"`
	CurrentPass *DuoMonthDTO  `json:"current_pass"`
	Passes      []DuoMonthDTO `json:"passes"`
}

type DuoMonthDTO struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Tier  string `json:"tier"`
}

package users

import (
	"membership-app/internal/domain/duo"
	"membership-app/internal/domain/membership"
	"membership-app/internal/domain/plans"
	"membership-app/internal/domain/users"
	"membership-app/internal/infra/stripe"
	"time"
)

func BuildPlanDTO(p *plans.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:            p.ID,
		Key:           p.Name,
		Interval:      p.Interval,
		PriceEUR:      p.PriceEUR,
		StripePriceID: p.StripePriceID,
	}
}

func BuildSubscriptionDTO(u users.User) *SubscriptionDTO {
	if u.SubscriptionId == nil || *u.SubscriptionId == "" {
		return nil
	}
	return &SubscriptionDTO{
		Status:               stripe.NormalizeStripeStatus(u.StripeSubscriptionStatus),
		StartsAt:             u.SubscriptionStart,
		CurrentPeriodEnd:     u.CurrentPeriodEnd,
		StripeSubscriptionID: u.SubscriptionId,
	}
}

func BuildMembershipDTO(m membership.Membership) MembershipDTO {
	return MembershipDTO{
		Tier:   m.Tier.String(),
		Status: string(m.Status),
		Since:  m.Since,
		Until:  m.Until,
	}
}

func BuildDuoDTO(passes []duo.Pass, now time.Time) DuoDTO {
	dto := DuoDTO{Passes: make([]DuoMonthDTO, 0, len(passes))}
	for _, p := range passes {
		month := DuoMonthDTO{Year: p.Year, Month: p.Month, Tier: p.Tier}
		dto.Passes = append(dto.Passes, month)
		if p.Year == now.Year() && p.Month == int(now.Month()) {
			m := month
			dto.CurrentPass = &m
		}
	}
	dto.PassCount = len(dto.Passes)
	return dto
}

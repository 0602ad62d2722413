package plans

import "membership-app/internal/domain/membership"

// PlanTier returns the membership tier a plan grants.
// Priority:
// 1. Explicit Tier stored in DB
// 2. Fallback inference by price (legacy safety net)
func PlanTier(p *Plan) membership.Tier {
	if p == nil {
		return membership.TierNone
	}

	if t := membership.ParseTier(p.Tier); t != membership.TierNone {
		return t
	}

	return inferTierFromPrice(p.PriceEUR)
}

// inferTierFromPrice exists ONLY as a backward-compatibility fallback
// for plan rows created before the tier column existed.
func inferTierFromPrice(priceEUR float64) membership.Tier {
	switch {
	case priceEUR >= 320:
		return membership.TierPro
	case priceEUR >= 180:
		return membership.TierTraveler
	case priceEUR > 0:
		return membership.TierExplorer
	default:
		return membership.TierNone
	}
}

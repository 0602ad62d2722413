package membership

import (
	"fmt"
	"strings"
)

// Tier is the ordered membership level. Higher tiers carry the
// privileges of every lower tier.
type Tier int

const (
	TierNone Tier = iota
	TierExplorer
	TierTraveler
	TierPro
)

var tierNames = map[Tier]string{
	TierNone:     "none",
	TierExplorer: "explorer",
	TierTraveler: "traveler",
	TierPro:      "pro",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "none"
}

// AtLeast reports whether t satisfies a requirement of level other.
func (t Tier) AtLeast(other Tier) bool {
	return t >= other
}

// ParseTier maps a stored tier string to a Tier. Unknown or empty
// values resolve to TierNone rather than an error so that legacy rows
// without a tier column fall back to the unprivileged level.
func ParseTier(s string) Tier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "explorer":
		return TierExplorer
	case "traveler":
		return TierTraveler
	case "pro":
		return TierPro
	default:
		return TierNone
	}
}

// MustParseTier is ParseTier with strict validation for request input,
// where an unknown tier is a client error rather than a legacy fallback.
func MustParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return TierNone, nil
	case "explorer":
		return TierExplorer, nil
	case "traveler":
		return TierTraveler, nil
	case "pro":
		return TierPro, nil
	default:
		return TierNone, fmt.Errorf("unknown membership tier %q", s)
	}
}

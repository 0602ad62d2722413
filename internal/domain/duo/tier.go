package duo

import (
	"fmt"
	"strings"
)

// Tier is the duo-pass level for one month. Strictly ordered; upgrades
// only run upward (go -> run -> fly) and prices strictly increase with
// rank so upgrade pricing never goes negative.
type Tier int

const (
	TierGo Tier = iota + 1
	TierRun
	TierFly
)

// Prices in minor currency units per month.
const (
	PriceGo  int64 = 990
	PriceRun int64 = 2490
	PriceFly int64 = 4990
)

func (t Tier) String() string {
	switch t {
	case TierGo:
		return "go"
	case TierRun:
		return "run"
	case TierFly:
		return "fly"
	default:
		return "unknown"
	}
}

func (t Tier) Price() int64 {
	switch t {
	case TierGo:
		return PriceGo
	case TierRun:
		return PriceRun
	case TierFly:
		return PriceFly
	default:
		return 0
	}
}

func (t Tier) Valid() bool {
	return t >= TierGo && t <= TierFly
}

// ParseTier validates request input; an unknown tier is a client error.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "go":
		return TierGo, nil
	case "run":
		return TierRun, nil
	case "fly":
		return TierFly, nil
	default:
		return 0, fmt.Errorf("unknown duo tier %q", s)
	}
}

package duo

import (
	"fmt"
	"time"
)

type MonthState string

const (
	StateAvailable MonthState = "available"
	StateOwned     MonthState = "owned"
	StateUpgrade   MonthState = "upgrade"
	StateDisabled  MonthState = "disabled"
)

const (
	ReasonPastMonth       = "PAST_MONTH"
	ReasonHigherTierOwned = "HIGHER_TIER_OWNED"
)

// MonthOption is the computed purchase state of one calendar month.
// Never persisted.
type MonthOption struct {
	Month       int        `json:"month"`
	State       MonthState `json:"state"`
	Price       int64      `json:"price"`
	CurrentTier string     `json:"current_tier,omitempty"`
	Reason      string     `json:"reason,omitempty"`
}

// PurchaseOptions is the resolver output for one year: exactly twelve
// options, months ascending, so the UI can render a stable grid.
type PurchaseOptions struct {
	Year         int           `json:"year"`
	SelectedTier string        `json:"selected_tier"`
	Options      []MonthOption `json:"options"`
}

// Resolver reconciles a user's duo passes into a per-month purchase
// calendar. Pure over the pass snapshot and the supplied reference time.
type Resolver struct {
	passes Repository
}

func NewResolver(passes Repository) *Resolver {
	return &Resolver{passes: passes}
}

// Resolve classifies every month of year for the selected tier. All of
// the user's passes are loaded, not just the requested year's, because
// past-month evaluation depends on absolute calendar time and future
// displays may cross year boundaries.
func (r *Resolver) Resolve(userID uint, year int, selected Tier, now time.Time) (PurchaseOptions, error) {
	if !selected.Valid() {
		return PurchaseOptions{}, fmt.Errorf("invalid duo tier %d", selected)
	}

	all, err := r.passes.GetPassesForUser(userID)
	if err != nil {
		return PurchaseOptions{}, fmt.Errorf("load duo passes for user %d: %w", userID, err)
	}

	owned := make(map[int]Pass, 12)
	for _, p := range all {
		if p.Year == year {
			owned[p.Month] = p
		}
	}

	opts := make([]MonthOption, 0, 12)
	for month := 1; month <= 12; month++ {
		opts = append(opts, resolveMonth(year, month, owned, selected, now))
	}

	return PurchaseOptions{
		Year:         year,
		SelectedTier: selected.String(),
		Options:      opts,
	}, nil
}

// resolveMonth applies the classification rules in order. The past-month
// rule is checked first and wins over ownership: a past month is
// disabled even when a pass exists for it.
func resolveMonth(year, month int, owned map[int]Pass, selected Tier, now time.Time) MonthOption {
	if isPastMonth(year, month, now) {
		return MonthOption{
			Month:  month,
			State:  StateDisabled,
			Price:  0,
			Reason: ReasonPastMonth,
		}
	}

	pass, ok := owned[month]
	if !ok {
		return MonthOption{
			Month: month,
			State: StateAvailable,
			Price: selected.Price(),
		}
	}

	current := pass.PassTier()
	switch {
	case current == selected:
		return MonthOption{
			Month:       month,
			State:       StateOwned,
			Price:       0,
			CurrentTier: current.String(),
		}
	case current < selected:
		return MonthOption{
			Month:       month,
			State:       StateUpgrade,
			Price:       selected.Price() - current.Price(),
			CurrentTier: current.String(),
		}
	default:
		return MonthOption{
			Month:       month,
			State:       StateDisabled,
			Price:       0,
			CurrentTier: current.String(),
			Reason:      ReasonHigherTierOwned,
		}
	}
}

// isPastMonth reports whether (year, month) is strictly before the
// calendar month containing now.
func isPastMonth(year, month int, now time.Time) bool {
	if year != now.Year() {
		return year < now.Year()
	}
	return month < int(now.Month())
}

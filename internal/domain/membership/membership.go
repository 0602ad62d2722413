package membership

import "time"

type Status string

const (
	StatusNone    Status = "none"
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

// Membership is the derived view of a user's current standing. It is
// computed from order history, never stored or mutated directly.
type Membership struct {
	UserID uint
	Tier   Tier
	Status Status
	Since  *time.Time
	Until  *time.Time
}

// Active reports whether the membership grants tier privileges right now.
func (m Membership) Active() bool {
	return m.Status == StatusActive && m.Tier > TierNone
}

// Record is one granted membership period, written by the billing
// webhook when a plan purchase settles. Kept separate from the derived
// Membership so reporting can list historical periods.
type Record struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index"`
	Tier      string
	StartsAt  time.Time
	EndsAt    time.Time
	Source    string // "stripe" | "admin"
	CreatedAt time.Time
}

// Repository is the persistence contract for membership periods.
type Repository interface {
	FindByUser(userID uint) ([]Record, error)
	Count() (int64, error)
}

package duo

import "time"

// Pass is one purchased duo month. The unique index enforces the
// invariant that a user never holds two passes for the same month.
type Pass struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index:idx_duo_passes_user_month,unique"`
	Year   int  `gorm:"index:idx_duo_passes_user_month,unique"`
	Month  int  `gorm:"index:idx_duo_passes_user_month,unique"` // 1..12
	Tier   string

	StripeSessionID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PassTier resolves the stored tier string; zero for corrupt rows.
func (p Pass) PassTier() Tier {
	t, err := ParseTier(p.Tier)
	if err != nil {
		return 0
	}
	return t
}

// Repository is the duo-pass persistence contract. GetPassesForUser
// returns the user's passes across all years.
type Repository interface {
	GetPassesForUser(userID uint) ([]Pass, error)
}

package entitlements

import "time"

// Known entitlement types. These are one-off grants that are not
// derived from membership tier.
const (
	TypeDuoPass       = "duo_pass"
	TypeCourseUnlock  = "course_unlock"
	TypeSprintPartner = "sprint_partner"
)

const (
	StatusActive  = "active"
	StatusExpired = "expired"
	StatusRevoked = "revoked"
)

// Record is one granted entitlement. At most one row per (user, type).
type Record struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index:idx_entitlements_user_type,unique"`
	Type      string `gorm:"index:idx_entitlements_user_type,unique"`
	Status    string
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository is the entitlement persistence contract. Get returns
// (nil, nil) when no record exists for the pair.
type Repository interface {
	Get(userID uint, entitlementType string) (*Record, error)
}

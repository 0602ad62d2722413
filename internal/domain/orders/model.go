package orders

import "time"

const (
	StatusPaid     = "paid"
	StatusPending  = "pending"
	StatusRefunded = "refunded"
)

// Order is one settled (or attempted) plan purchase. Membership tier is
// derived from these rows; nothing mutates them after settlement.
type Order struct {
	ID        uint   `gorm:"primaryKey"`
	Reference string `gorm:"uniqueIndex"` // uuid, shown on receipts
	UserID    uint   `gorm:"index"`

	PlanID         *uint
	PlanTier       string // tier snapshot at purchase time
	DurationMonths int

	AmountCents int64
	Currency    string
	Status      string `gorm:"index"`

	StripeSessionID *string `gorm:"uniqueIndex"`
	PaidAt          *time.Time

	CreatedAt time.Time
}

// Repository is the order persistence contract consumed by the
// membership service and admin reporting.
type Repository interface {
	GetOrdersForUser(userID uint) ([]Order, error)
	GetTotalPaidAmount() (int64, error)
}

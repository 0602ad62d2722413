package store

import (
	"gorm.io/gorm"

	"membership-app/internal/domain/orders"
)

// OrderStore implements orders.Repository backed by gorm/postgres.
type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) GetOrdersForUser(userID uint) ([]orders.Order, error) {
	var out []orders.Order
	err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&out).Error
	return out, err
}

func (s *OrderStore) GetTotalPaidAmount() (int64, error) {
	var total int64
	err := s.db.Model(&orders.Order{}).
		Where("status = ?", orders.StatusPaid).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&total).Error
	return total, err
}

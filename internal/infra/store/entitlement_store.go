package store

import (
	"errors"

	"gorm.io/gorm"

	"membership-app/internal/domain/entitlements"
)

// EntitlementStore implements entitlements.Repository backed by gorm.
type EntitlementStore struct {
	db *gorm.DB
}

func NewEntitlementStore(db *gorm.DB) *EntitlementStore {
	return &EntitlementStore{db: db}
}

// Get returns (nil, nil) when no record exists; absence is a valid
// answer, not a fault.
func (s *EntitlementStore) Get(userID uint, entitlementType string) (*entitlements.Record, error) {
	var rec entitlements.Record
	err := s.db.Where("user_id = ? AND type = ?", userID, entitlementType).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

package store

import (
	"gorm.io/gorm"

	"membership-app/internal/domain/membership"
)

// MembershipStore implements membership.Repository backed by gorm.
type MembershipStore struct {
	db *gorm.DB
}

func NewMembershipStore(db *gorm.DB) *MembershipStore {
	return &MembershipStore{db: db}
}

func (s *MembershipStore) FindByUser(userID uint) ([]membership.Record, error) {
	var out []membership.Record
	err := s.db.Where("user_id = ?", userID).Order("starts_at DESC").Find(&out).Error
	return out, err
}

func (s *MembershipStore) Count() (int64, error) {
	var n int64
	err := s.db.Model(&membership.Record{}).Count(&n).Error
	return n, err
}

package store

import (
	"gorm.io/gorm"

	"membership-app/internal/domain/duo"
)

// DuoPassStore implements duo.Repository backed by gorm.
type DuoPassStore struct {
	db *gorm.DB
}

func NewDuoPassStore(db *gorm.DB) *DuoPassStore {
	return &DuoPassStore{db: db}
}

func (s *DuoPassStore) GetPassesForUser(userID uint) ([]duo.Pass, error) {
	var out []duo.Pass
	err := s.db.Where("user_id = ?", userID).Order("year ASC, month ASC").Find(&out).Error
	return out, err
}

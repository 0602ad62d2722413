package entitlements

import (
	"fmt"
	"time"
)

// EntitlementStatus is the answer to "does this user hold this grant
// right now". A missing record is an inactive status, not an error.
type EntitlementStatus struct {
	Active    bool       `json:"active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Service is a read-through over the entitlement store.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetStatus resolves the entitlement state at the supplied reference
// time. Expiry is evaluated here so callers never compare dates themselves.
func (s *Service) GetStatus(userID uint, entitlementType string, now time.Time) (EntitlementStatus, error) {
	if userID == 0 {
		return EntitlementStatus{}, nil
	}

	rec, err := s.repo.Get(userID, entitlementType)
	if err != nil {
		return EntitlementStatus{}, fmt.Errorf("load entitlement %s for user %d: %w", entitlementType, userID, err)
	}
	if rec == nil || rec.Status != StatusActive {
		return EntitlementStatus{}, nil
	}
	if rec.ExpiresAt != nil && !now.Before(*rec.ExpiresAt) {
		return EntitlementStatus{Active: false, ExpiresAt: rec.ExpiresAt}, nil
	}

	return EntitlementStatus{Active: true, ExpiresAt: rec.ExpiresAt}, nil
}

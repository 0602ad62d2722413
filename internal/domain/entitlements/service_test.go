package entitlements_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership-app/internal/domain/entitlements"
)

var refTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeRepo struct {
	rec *entitlements.Record
}

func (f *fakeRepo) Get(userID uint, entitlementType string) (*entitlements.Record, error) {
	return f.rec, nil
}

func TestGetStatusMissingRecord(t *testing.T) {
	svc := entitlements.NewService(&fakeRepo{})

	st, err := svc.GetStatus(7, entitlements.TypeCourseUnlock, refTime)
	require.NoError(t, err)

	assert.False(t, st.Active)
	assert.Nil(t, st.ExpiresAt)
}

func TestGetStatusAnonymous(t *testing.T) {
	exp := refTime.AddDate(0, 1, 0)
	svc := entitlements.NewService(&fakeRepo{rec: &entitlements.Record{
		UserID: 7, Type: entitlements.TypeCourseUnlock,
		Status: entitlements.StatusActive, ExpiresAt: &exp,
	}})

	st, err := svc.GetStatus(0, entitlements.TypeCourseUnlock, refTime)
	require.NoError(t, err)

	assert.False(t, st.Active)
}

func TestGetStatusActiveWithoutExpiry(t *testing.T) {
	svc := entitlements.NewService(&fakeRepo{rec: &entitlements.Record{
		UserID: 7, Type: entitlements.TypeSprintPartner,
		Status: entitlements.StatusActive,
	}})

	st, err := svc.GetStatus(7, entitlements.TypeSprintPartner, refTime)
	require.NoError(t, err)

	assert.True(t, st.Active)
	assert.Nil(t, st.ExpiresAt)
}

func TestGetStatusExpiryBoundary(t *testing.T) {
	exp := refTime
	svc := entitlements.NewService(&fakeRepo{rec: &entitlements.Record{
		UserID: 7, Type: entitlements.TypeDuoPass,
		Status: entitlements.StatusActive, ExpiresAt: &exp,
	}})

	// Exactly at expiry the grant no longer counts.
	st, err := svc.GetStatus(7, entitlements.TypeDuoPass, refTime)
	require.NoError(t, err)
	assert.False(t, st.Active)

	st, err = svc.GetStatus(7, entitlements.TypeDuoPass, refTime.Add(-time.Second))
	require.NoError(t, err)
	assert.True(t, st.Active)
}

func TestGetStatusRevoked(t *testing.T) {
	svc := entitlements.NewService(&fakeRepo{rec: &entitlements.Record{
		UserID: 7, Type: entitlements.TypeCourseUnlock,
		Status: entitlements.StatusRevoked,
	}})

	st, err := svc.GetStatus(7, entitlements.TypeCourseUnlock, refTime)
	require.NoError(t, err)

	assert.False(t, st.Active)
}

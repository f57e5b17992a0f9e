package services

import (
	"testing"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testValidator() *CheckinValidator {
	return &CheckinValidator{Policy: testPolicy, Loc: testLoc}
}

func TestValidateFinancialStatus(t *testing.T) {
	v := testValidator()

	cases := []struct {
		status  models.PaymentStatus
		blocked bool
	}{
		{models.PaymentActive, false},
		{models.PaymentPending, false},
		{models.PaymentOverdue, true},
		{models.PaymentSuspended, true},
	}

	for _, tc := range cases {
		err := v.ValidateFinancialStatus(&models.Student{PaymentStatus: tc.status})
		if tc.blocked {
			assert.True(t, IsKind(err, KindFinancialBlocked), "status %s", tc.status)
		} else {
			assert.NoError(t, err, "status %s", tc.status)
		}
	}
}

func TestValidateTimeWindow_Boundaries(t *testing.T) {
	f := newFakeStore()
	class := seedClass(f, "class-1", 20) // 19:00-20:00 Monday
	v := testValidator()

	at := func(hour, min int) time.Time {
		return time.Date(2025, 3, 10, hour, min, 0, 0, testLoc)
	}

	// Exactly start - 15min is allowed.
	assert.NoError(t, v.ValidateTimeWindow(class, mondayDate, at(18, 45)))

	// One minute earlier is TooEarly, with the minutes remaining.
	err := v.ValidateTimeWindow(class, mondayDate, at(18, 44))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindTooEarly))
	assert.Contains(t, err.Error(), "1 minute")

	// Mid-class is fine.
	assert.NoError(t, v.ValidateTimeWindow(class, mondayDate, at(19, 30)))

	// Exactly end + 20min is allowed.
	assert.NoError(t, v.ValidateTimeWindow(class, mondayDate, at(20, 20)))

	// One minute later is TooLate.
	err = v.ValidateTimeWindow(class, mondayDate, at(20, 21))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindTooLate))
}

func TestValidateTimeWindow_TooEarlyReportsMinutesRemaining(t *testing.T) {
	f := newFakeStore()
	class := seedClass(f, "class-1", 20)
	v := testValidator()

	morning := time.Date(2025, 3, 10, 17, 45, 0, 0, testLoc) // window opens 18:45
	err := v.ValidateTimeWindow(class, mondayDate, morning)

	require.True(t, IsKind(err, KindTooEarly))
	assert.Contains(t, err.Error(), "60 minute")
}

func TestValidateGeofence_RadiusBoundary(t *testing.T) {
	f := newFakeStore()
	franchise := seedFranchise(f)

	// A point roughly 200m north of the mat.
	lat := franchise.Latitude + 200.0/111194.93
	lng := franchise.Longitude
	computed := haversineMeters(franchise.Latitude, franchise.Longitude, lat, lng)

	// Distance exactly at the radius passes.
	v := &CheckinValidator{Loc: testLoc, Policy: testPolicy}
	v.Policy.GeofenceRadiusMeters = computed
	d, err := v.ValidateGeofence(franchise, lat, lng)
	assert.NoError(t, err)
	assert.InDelta(t, computed, d, 0.001)

	// One meter inside the radius fails and reports the distance.
	v.Policy.GeofenceRadiusMeters = computed - 1
	_, err = v.ValidateGeofence(franchise, lat, lng)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindTooFarAway))
	assert.Contains(t, err.Error(), "meters")
}

func TestValidateGeofence_FarAway(t *testing.T) {
	f := newFakeStore()
	franchise := seedFranchise(f)
	v := testValidator()

	// Roughly 1.1km away.
	_, err := v.ValidateGeofence(franchise, franchise.Latitude+0.01, franchise.Longitude)

	require.Error(t, err)
	assert.True(t, IsKind(err, KindTooFarAway))
}

func TestHaversineMeters_KnownDistance(t *testing.T) {
	// Av. Paulista to Ibirapuera Park gate, about 2.6km.
	d := haversineMeters(-23.561414, -46.655881, -23.581113, -46.665469)

	assert.InDelta(t, 2400, d, 300)
}

func TestHaversineMeters_ZeroForSamePoint(t *testing.T) {
	assert.Zero(t, haversineMeters(-23.5, -46.6, -23.5, -46.6))
}

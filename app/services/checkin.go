package services

import (
	"math"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/config"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
)

// CheckinValidator runs the three gates in front of attendance registration:
// financial standing, check-in time window and geofence.
type CheckinValidator struct {
	Policy config.CheckinPolicy
	Loc    *time.Location
}

// ValidateFinancialStatus blocks students whose payment status is in the
// blocked set.
func (v *CheckinValidator) ValidateFinancialStatus(student *models.Student) error {
	if models.BlockedPaymentStatuses[student.PaymentStatus] {
		return Errf(KindFinancialBlocked,
			"check-in blocked: payment status is %s, please see the front desk", student.PaymentStatus)
	}
	return nil
}

// ValidateTimeWindow accepts check-in inside [start - EarlyWindow, end + LateWindow],
// boundaries included. The early side models "arrive early", the late side
// "mark attendance after class".
func (v *CheckinValidator) ValidateTimeWindow(class *models.ClassDefinition, occurrenceDate, now time.Time) error {
	start, end, err := OccurrenceWindow(class, occurrenceDate, v.Loc)
	if err != nil {
		return err
	}

	earliest := start.Add(-v.Policy.EarlyWindow)
	latest := end.Add(v.Policy.LateWindow)

	if now.Before(earliest) {
		minutes := int(math.Ceil(earliest.Sub(now).Minutes()))
		return Errf(KindTooEarly,
			"check-in opens %d minute(s) from now, at %s", minutes, earliest.In(v.Loc).Format("15:04"))
	}
	if now.After(latest) {
		return Errf(KindTooLate,
			"check-in for this class closed at %s", latest.In(v.Loc).Format("15:04"))
	}
	return nil
}

// ValidateGeofence passes when the student is within the configured radius of
// the franchise mat. Callers skip it entirely for teacher-initiated check-in;
// that bypass is a mode decision, never a missing-location fallback.
func (v *CheckinValidator) ValidateGeofence(franchise *models.Franchise, lat, lng float64) (float64, error) {
	distance := haversineMeters(franchise.Latitude, franchise.Longitude, lat, lng)
	if distance > v.Policy.GeofenceRadiusMeters {
		return distance, Errf(KindTooFarAway,
			"you are %.0f meters from %s; check-in requires being within %.0f meters",
			distance, franchise.Name, v.Policy.GeofenceRadiusMeters)
	}
	return distance, nil
}

const earthRadiusMeters = 6371000.0

// haversineMeters computes the great-circle distance between two coordinates.
func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

package services

import (
	"testing"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classTime is during the Monday 19:00-20:00 class.
var classTime = time.Date(2025, 3, 10, 19, 10, 0, 0, testLoc)

func selfServiceRequest(f *fakeStore, studentID string) CheckinRequest {
	franchise := f.franchises["franchise-1"]
	return CheckinRequest{
		StudentID:         studentID,
		ClassDefinitionID: "class-1",
		Method:            models.CheckInSelfService,
		Latitude:          &franchise.Latitude,
		Longitude:         &franchise.Longitude,
	}
}

func TestRegisterAttendance_SelfService(t *testing.T) {
	f := newFakeStore()
	seedFranchise(f)
	seedClass(f, "class-1", 20)
	seedStudent(f, "s1")
	svc := newAttendanceService(f, classTime)

	attendance, err := svc.RegisterAttendance(selfServiceRequest(f, "s1"))

	require.NoError(t, err)
	assert.Equal(t, models.Present, attendance.Status)
	assert.Equal(t, mondayDate, attendance.OccurrenceDate)
	require.NotNil(t, attendance.DistanceMeters)
	assert.InDelta(t, 0, *attendance.DistanceMeters, 0.01)
}

func TestRegisterAttendance_ConfirmsReservedBooking(t *testing.T) {
	f := newFakeStore()
	seedFranchise(f)
	seedClass(f, "class-1", 20)
	seedStudent(f, "s1")
	booking, err := newBookingService(f, mondayDate.Add(10*time.Hour)).CreateBooking("s1", "class-1", &mondayDate)
	require.NoError(t, err)

	_, err = newAttendanceService(f, classTime).RegisterAttendance(selfServiceRequest(f, "s1"))
	require.NoError(t, err)

	stored, _ := f.GetBookingByID(booking.ID)
	assert.Equal(t, models.BookingConfirmed, stored.Status)
}

func TestRegisterAttendance_Duplicate(t *testing.T) {
	f := newFakeStore()
	seedFranchise(f)
	seedClass(f, "class-1", 20)
	seedStudent(f, "s1")
	booking, err := newBookingService(f, mondayDate.Add(10*time.Hour)).CreateBooking("s1", "class-1", &mondayDate)
	require.NoError(t, err)
	svc := newAttendanceService(f, classTime)

	_, err = svc.RegisterAttendance(selfServiceRequest(f, "s1"))
	require.NoError(t, err)

	_, err = svc.RegisterAttendance(selfServiceRequest(f, "s1"))
	assert.True(t, IsKind(err, KindDuplicateAttendance))

	// The confirmed booking is unaffected by the rejected second call.
	stored, _ := f.GetBookingByID(booking.ID)
	assert.Equal(t, models.BookingConfirmed, stored.Status)
}

func TestRegisterAttendance_WalkInDoesNotResurrectCancelledBooking(t *testing.T) {
	f := newFakeStore()
	seedFranchise(f)
	seedClass(f, "class-1", 20)
	seedStudent(f, "s1")
	bookingSvc := newBookingService(f, mondayDate.Add(10*time.Hour))
	booking, err := bookingSvc.CreateBooking("s1", "class-1", &mondayDate)
	require.NoError(t, err)
	require.NoError(t, bookingSvc.CancelBooking(booking.ID))

	// Attendance is independent of booking existence: the walk-in succeeds.
	_, err = newAttendanceService(f, classTime).RegisterAttendance(selfServiceRequest(f, "s1"))
	require.NoError(t, err)

	stored, _ := f.GetBookingByID(booking.ID)
	assert.Equal(t, models.BookingCancelled, stored.Status)
}

func TestRegisterAttendance_FinancialBlocked(t *testing.T) {
	f := newFakeStore()
	seedFranchise(f)
	seedClass(f, "class-1", 20)
	student := seedStudent(f, "s1")
	student.PaymentStatus = models.PaymentOverdue

	_, err := newAttendanceService(f, classTime).RegisterAttendance(selfServiceRequest(f, "s1"))

	assert.True(t, IsKind(err, KindFinancialBlocked))
}

func TestRegisterAttendance_OutsideWindow(t *testing.T) {
	f := newFakeStore()
	seedFranchise(f)
	seedClass(f, "class-1", 20)
	seedStudent(f, "s1")

	early := time.Date(2025, 3, 10, 17, 0, 0, 0, testLoc)
	_, err := newAttendanceService(f, early).RegisterAttendance(selfServiceRequest(f, "s1"))
	assert.True(t, IsKind(err, KindTooEarly))

	late := time.Date(2025, 3, 10, 21, 0, 0, 0, testLoc)
	_, err = newAttendanceService(f, late).RegisterAttendance(selfServiceRequest(f, "s1"))
	assert.True(t, IsKind(err, KindTooLate))
}

func TestRegisterAttendance_GeofenceEnforcedForSelfService(t *testing.T) {
	f := newFakeStore()
	franchise := seedFranchise(f)
	seedClass(f, "class-1", 20)
	seedStudent(f, "s1")

	farLat := franchise.Latitude + 0.01 // about 1.1km away
	req := CheckinRequest{
		StudentID:         "s1",
		ClassDefinitionID: "class-1",
		Method:            models.CheckInSelfService,
		Latitude:          &farLat,
		Longitude:         &franchise.Longitude,
	}

	_, err := newAttendanceService(f, classTime).RegisterAttendance(req)
	assert.True(t, IsKind(err, KindTooFarAway))
}

func TestRegisterAttendance_TeacherMethodSkipsGeofence(t *testing.T) {
	f := newFakeStore()
	seedFranchise(f)
	seedClass(f, "class-1", 20)
	seedStudent(f, "s1")

	// No coordinates at all: the teacher confirmation path never geofences.
	req := CheckinRequest{
		StudentID:         "s1",
		ClassDefinitionID: "class-1",
		Method:            models.CheckInTeacher,
		TeacherID:         "teacher-1",
	}

	attendance, err := newAttendanceService(f, classTime).RegisterAttendance(req)

	require.NoError(t, err)
	require.NotNil(t, attendance.MarkedBy)
	assert.Equal(t, "teacher-1", *attendance.MarkedBy)
	assert.Nil(t, attendance.DistanceMeters)
}

func TestRegisterAttendance_SelfServiceRequiresCoordinates(t *testing.T) {
	f := newFakeStore()
	seedFranchise(f)
	seedClass(f, "class-1", 20)
	seedStudent(f, "s1")

	req := CheckinRequest{
		StudentID:         "s1",
		ClassDefinitionID: "class-1",
		Method:            models.CheckInSelfService,
	}

	_, err := newAttendanceService(f, classTime).RegisterAttendance(req)
	assert.True(t, IsKind(err, KindValidation))
}

func TestRegisterAttendance_CapacityOverAttendance(t *testing.T) {
	f := newFakeStore()
	seedFranchise(f)
	seedClass(f, "class-1", 1)
	seedStudent(f, "s1")
	seedStudent(f, "s2")
	svc := newAttendanceService(f, classTime)

	_, err := svc.RegisterAttendance(selfServiceRequest(f, "s1"))
	require.NoError(t, err)

	_, err = svc.RegisterAttendance(selfServiceRequest(f, "s2"))
	assert.True(t, IsKind(err, KindCapacityExceeded))
}

func TestRevokeAttendance_RevertsConfirmedBooking(t *testing.T) {
	f := newFakeStore()
	seedFranchise(f)
	seedClass(f, "class-1", 20)
	seedStudent(f, "s1")
	booking, err := newBookingService(f, mondayDate.Add(10*time.Hour)).CreateBooking("s1", "class-1", &mondayDate)
	require.NoError(t, err)
	svc := newAttendanceService(f, classTime)
	_, err = svc.RegisterAttendance(selfServiceRequest(f, "s1"))
	require.NoError(t, err)

	require.NoError(t, svc.RevokeAttendance("s1", "class-1", mondayDate))

	stored, _ := f.GetBookingByID(booking.ID)
	assert.Equal(t, models.BookingReserved, stored.Status)

	_, err = f.GetAttendanceForOccurrence("s1", "class-1", mondayDate)
	assert.Error(t, err)
}

func TestRevokeAttendance_NothingToRevoke(t *testing.T) {
	f := newFakeStore()
	svc := newAttendanceService(f, classTime)

	err := svc.RevokeAttendance("s1", "class-1", mondayDate)
	assert.True(t, IsKind(err, KindNotFound))
}

// Full seat-churn scenario: capacity 2, A and B book, C is rejected, A
// cancels, C takes the freed seat, and A still checks in as a walk-in
// without the cancelled booking coming back.
func TestBookingAttendanceEndToEnd(t *testing.T) {
	f := newFakeStore()
	seedFranchise(f)
	seedClass(f, "class-1", 2)
	for _, id := range []string{"A", "B", "C"} {
		seedStudent(f, id)
	}
	bookingSvc := newBookingService(f, mondayDate.Add(10*time.Hour))

	bookingA, err := bookingSvc.CreateBooking("A", "class-1", &mondayDate)
	require.NoError(t, err)
	_, err = bookingSvc.CreateBooking("B", "class-1", &mondayDate)
	require.NoError(t, err)

	_, err = bookingSvc.CreateBooking("C", "class-1", &mondayDate)
	require.True(t, IsKind(err, KindCapacityExceeded))

	require.NoError(t, bookingSvc.CancelBooking(bookingA.ID))

	bookingC, err := bookingSvc.CreateBooking("C", "class-1", &mondayDate)
	require.NoError(t, err)
	assert.Equal(t, models.BookingReserved, bookingC.Status)

	_, err = newAttendanceService(f, classTime).RegisterAttendance(selfServiceRequest(f, "A"))
	require.NoError(t, err)

	storedA, _ := f.GetBookingByID(bookingA.ID)
	assert.Equal(t, models.BookingCancelled, storedA.Status)

	count, _ := f.CountActiveBookings("class-1", mondayDate)
	assert.Equal(t, 2, count)
}

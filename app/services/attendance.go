package services

import (
	"errors"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/database"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
	"github.com/google/uuid"
)

// AttendanceService records physical check-ins and keeps the matching
// booking in sync.
type AttendanceService struct {
	Classes    ClassStore
	Students   StudentStore
	Franchises FranchiseStore
	Bookings   BookingStore
	Attendance AttendanceStore
	Validator  *CheckinValidator
	Loc        *time.Location
	Now        func() time.Time // overridable in tests
}

func (s *AttendanceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CheckinRequest is one attendance registration attempt. Coordinates are
// required for self-service check-in and ignored for teacher confirmations.
type CheckinRequest struct {
	StudentID         string
	ClassDefinitionID string
	Method            models.CheckInMethod
	TeacherID         string // promoter of a teacher confirmation, empty for self-service
	Latitude          *float64
	Longitude         *float64
}

// RegisterAttendance validates financial standing, time window and geofence,
// then records the attendance exactly once per (student, class, occurrence).
// A reserved booking for the occurrence flips to confirmed; a cancelled one
// stays cancelled — walk-ins are welcome but cancellations are not undone.
func (s *AttendanceService) RegisterAttendance(req CheckinRequest) (*models.Attendance, error) {
	student, err := s.Students.GetStudent(req.StudentID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, Errf(KindNotFound, "student not found")
		}
		return nil, err
	}

	class, err := s.Classes.GetClassDefinition(req.ClassDefinitionID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, Errf(KindNotFound, "class not found")
		}
		return nil, err
	}

	if err := s.Validator.ValidateFinancialStatus(student); err != nil {
		return nil, err
	}

	now := s.now()
	today := now
	occurrence, err := ResolveOccurrence(class, &today, now, s.Loc)
	if err != nil {
		return nil, err
	}

	if err := s.Validator.ValidateTimeWindow(class, occurrence, now); err != nil {
		return nil, err
	}

	var distance *float64
	if req.Method == models.CheckInSelfService {
		if req.Latitude == nil || req.Longitude == nil {
			return nil, Errf(KindValidation, "self-service check-in requires GPS coordinates")
		}
		franchise, err := s.Franchises.GetFranchise(class.FranchiseID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, Errf(KindNotFound, "franchise not found")
			}
			return nil, err
		}
		d, err := s.Validator.ValidateGeofence(franchise, *req.Latitude, *req.Longitude)
		if err != nil {
			return nil, err
		}
		distance = &d
	}

	existing, err := s.Attendance.GetAttendanceForOccurrence(req.StudentID, req.ClassDefinitionID, occurrence)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, Errf(KindDuplicateAttendance,
			"attendance already registered for this class on %s", occurrence.Format("2006-01-02"))
	}

	count, err := s.Attendance.CountAttendance(req.ClassDefinitionID, occurrence)
	if err != nil {
		return nil, err
	}
	if count >= class.Capacity {
		return nil, Errf(KindCapacityExceeded, "class %q is full (%d seats)", class.Name, class.Capacity)
	}

	attendance := &models.Attendance{
		ID:                uuid.NewString(),
		FranchiseID:       class.FranchiseID,
		StudentID:         req.StudentID,
		ClassDefinitionID: req.ClassDefinitionID,
		OccurrenceDate:    occurrence,
		CheckedInAt:       now,
		Status:            models.Present,
		CheckInMethod:     req.Method,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		DistanceMeters:    distance,
	}
	if req.Method == models.CheckInTeacher && req.TeacherID != "" {
		attendance.MarkedBy = &req.TeacherID
	}

	if err := s.Attendance.InsertAttendance(attendance, class.Capacity); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return nil, Errf(KindDuplicateAttendance,
				"attendance already registered for this class on %s", occurrence.Format("2006-01-02"))
		}
		if errors.Is(err, database.ErrCapacityFull) {
			return nil, Errf(KindCapacityExceeded, "class %q is full (%d seats)", class.Name, class.Capacity)
		}
		return nil, err
	}

	s.syncBooking(req.StudentID, req.ClassDefinitionID, occurrence, models.BookingReserved, models.BookingConfirmed)
	return attendance, nil
}

// RevokeAttendance deletes the attendance row and reverts a confirmed booking
// back to reserved.
func (s *AttendanceService) RevokeAttendance(studentID, classDefinitionID string, date time.Time) error {
	occurrence := DayStart(date, s.Loc)

	deleted, err := s.Attendance.DeleteAttendance(studentID, classDefinitionID, occurrence)
	if err != nil {
		return err
	}
	if !deleted {
		return Errf(KindNotFound, "no attendance to revoke for %s", occurrence.Format("2006-01-02"))
	}

	s.syncBooking(studentID, classDefinitionID, occurrence, models.BookingConfirmed, models.BookingReserved)
	return nil
}

// syncBooking moves the matching booking from one status to another, if it
// exists in that status. Absence of a booking is not an error: attendance is
// independent of booking existence.
func (s *AttendanceService) syncBooking(studentID, classDefinitionID string, occurrence time.Time, from, to models.BookingStatus) {
	booking, err := s.Bookings.GetBookingForOccurrence(studentID, classDefinitionID, occurrence)
	if err != nil || booking == nil {
		return
	}
	if booking.Status == from {
		_ = s.Bookings.UpdateBookingStatus(booking.ID, to)
	}
}

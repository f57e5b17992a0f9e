package services

import (
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
)

// The store interfaces below are implemented by database.Store over Postgres
// and by in-memory fakes in tests. Lookups report a missing row with
// database.ErrNotFound; inserts report a unique-key conflict with
// database.ErrDuplicateKey and a rejected capacity guard with
// database.ErrCapacityFull.

type ClassStore interface {
	GetClassDefinition(classDefinitionID string) (*models.ClassDefinition, error)
}

type StudentStore interface {
	GetStudent(studentID string) (*models.Student, error)
}

type FranchiseStore interface {
	GetFranchise(franchiseID string) (*models.Franchise, error)
}

type BookingStore interface {
	GetBookingByID(bookingID string) (*models.Booking, error)
	GetBookingForOccurrence(studentID, classDefinitionID string, occurrenceDate time.Time) (*models.Booking, error)
	CountActiveBookings(classDefinitionID string, occurrenceDate time.Time) (int, error)
	InsertBooking(b *models.Booking, capacity int) error
	UpdateBookingStatus(bookingID string, status models.BookingStatus) error
	ListActiveBookings(classDefinitionID string, occurrenceDate time.Time) ([]*models.BookingSeat, error)
}

type AttendanceStore interface {
	GetAttendanceForOccurrence(studentID, classDefinitionID string, occurrenceDate time.Time) (*models.Attendance, error)
	CountAttendance(classDefinitionID string, occurrenceDate time.Time) (int, error)
	InsertAttendance(a *models.Attendance, capacity int) error
	DeleteAttendance(studentID, classDefinitionID string, occurrenceDate time.Time) (bool, error)
	CountAttendanceSince(studentID string, since time.Time) (int, error)
}

type GraduationStore interface {
	GetGraduationRule(fromBelt models.Belt, fromDegree int) (*models.GraduationRule, error)
	ApplyPromotion(studentID string, rule *models.GraduationRule, historyID, promotedBy string, promotedAt time.Time) error
}

package services

import (
	"errors"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/database"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
	"github.com/google/uuid"
)

// BookingService owns the reservation lifecycle for class occurrences.
type BookingService struct {
	Classes  ClassStore
	Bookings BookingStore
	Loc      *time.Location
	Now      func() time.Time // overridable in tests
}

func (s *BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateBooking reserves a seat for one student in one occurrence. A
// cancelled booking for the same occurrence is reactivated in place; a live
// one is rejected as AlreadyBooked. The insert itself is a single atomic
// statement guarded by the unique (student, class, occurrence) key, so two
// concurrent requests for the same seat produce one row and one AlreadyBooked.
func (s *BookingService) CreateBooking(studentID, classDefinitionID string, requestedDate *time.Time) (*models.Booking, error) {
	class, err := s.Classes.GetClassDefinition(classDefinitionID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, Errf(KindNotFound, "class not found")
		}
		return nil, err
	}

	occurrence, err := ResolveOccurrence(class, requestedDate, s.now(), s.Loc)
	if err != nil {
		return nil, err
	}

	existing, err := s.Bookings.GetBookingForOccurrence(studentID, classDefinitionID, occurrence)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.Status != models.BookingCancelled {
			return nil, Errf(KindAlreadyBooked,
				"you already have a booking for this class on %s", occurrence.Format("2006-01-02"))
		}
		// Reactivate in place, never a second row. The freed seat may have
		// been taken since the cancellation, so capacity is re-checked.
		if err := s.checkCapacity(class, occurrence); err != nil {
			return nil, err
		}
		if err := s.Bookings.UpdateBookingStatus(existing.ID, models.BookingReserved); err != nil {
			return nil, err
		}
		existing.Status = models.BookingReserved
		return existing, nil
	}

	if err := s.checkCapacity(class, occurrence); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:                uuid.NewString(),
		FranchiseID:       class.FranchiseID,
		ClassDefinitionID: classDefinitionID,
		StudentID:         studentID,
		OccurrenceDate:    occurrence,
		Status:            models.BookingReserved,
	}

	if err := s.Bookings.InsertBooking(booking, class.Capacity); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return nil, Errf(KindAlreadyBooked,
				"you already have a booking for this class on %s", occurrence.Format("2006-01-02"))
		}
		if errors.Is(err, database.ErrCapacityFull) {
			return nil, Errf(KindCapacityExceeded,
				"class %q is full (%d seats)", class.Name, class.Capacity)
		}
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) checkCapacity(class *models.ClassDefinition, occurrence time.Time) error {
	count, err := s.Bookings.CountActiveBookings(class.ID, occurrence)
	if err != nil {
		return err
	}
	if count >= class.Capacity {
		return Errf(KindCapacityExceeded, "class %q is full (%d seats)", class.Name, class.Capacity)
	}
	return nil
}

// CancelBooking sets the booking to cancelled. Cancelling twice is a no-op
// success; a confirmed booking has attendance behind it and must be revoked
// there first.
func (s *BookingService) CancelBooking(bookingID string) error {
	booking, err := s.Bookings.GetBookingByID(bookingID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return Errf(KindNotFound, "booking not found")
		}
		return err
	}

	switch booking.Status {
	case models.BookingCancelled:
		return nil
	case models.BookingConfirmed:
		return Errf(KindValidation, "cannot cancel a confirmed booking; revoke the attendance first")
	}
	return s.Bookings.UpdateBookingStatus(bookingID, models.BookingCancelled)
}

// ListBookings returns the active roster for one occurrence, oldest first.
func (s *BookingService) ListBookings(classDefinitionID string, date time.Time) ([]*models.BookingSeat, error) {
	class, err := s.Classes.GetClassDefinition(classDefinitionID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, Errf(KindNotFound, "class not found")
		}
		return nil, err
	}

	occurrence, err := ResolveOccurrence(class, &date, s.now(), s.Loc)
	if err != nil {
		return nil, err
	}
	return s.Bookings.ListActiveBookings(classDefinitionID, occurrence)
}

package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
)

const bookingColumns = `id, franchise_id, class_definition_id, student_id, occurrence_date, status, created_at, updated_at`

func scanBooking(row *sql.Row) (*models.Booking, error) {
	b := &models.Booking{}
	err := row.Scan(
		&b.ID, &b.FranchiseID, &b.ClassDefinitionID, &b.StudentID,
		&b.OccurrenceDate, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) GetBookingByID(bookingID string) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return scanBooking(s.DB.QueryRow(query, bookingID))
}

// GetBookingForOccurrence looks up the single booking row for one student in
// one occurrence, whatever its status.
func (s *Store) GetBookingForOccurrence(studentID, classDefinitionID string, occurrenceDate time.Time) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE student_id = $1 AND class_definition_id = $2 AND occurrence_date = $3`
	return scanBooking(s.DB.QueryRow(query, studentID, classDefinitionID, occurrenceDate))
}

// CountActiveBookings counts reserved and confirmed bookings for one
// occurrence. Capacity is computed, never stored.
func (s *Store) CountActiveBookings(classDefinitionID string, occurrenceDate time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM bookings
			  WHERE class_definition_id = $1 AND occurrence_date = $2
			  AND status IN ('reserved', 'confirmed')`
	err := s.DB.QueryRow(query, classDefinitionID, occurrenceDate).Scan(&count)
	return count, err
}

// InsertBooking inserts a reserved booking as a single atomic statement: the
// row only lands if the active count for the occurrence is still below
// capacity at commit time. A duplicate (student, class, occurrence) key comes
// back as ErrDuplicateKey, a filtered insert as ErrCapacityFull.
func (s *Store) InsertBooking(b *models.Booking, capacity int) error {
	query := `
		INSERT INTO bookings (id, franchise_id, class_definition_id, student_id, occurrence_date, status, created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, $6, NOW(), NOW()
		WHERE (
			SELECT COUNT(*) FROM bookings
			WHERE class_definition_id = $3 AND occurrence_date = $5
			AND status IN ('reserved', 'confirmed')
		) < $7
		RETURNING created_at, updated_at`

	err := s.DB.QueryRow(query,
		b.ID, b.FranchiseID, b.ClassDefinitionID, b.StudentID,
		b.OccurrenceDate, b.Status, capacity,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	return translateInsertErr(err)
}

func (s *Store) UpdateBookingStatus(bookingID string, status models.BookingStatus) error {
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`
	result, err := s.DB.Exec(query, status, bookingID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListActiveBookings returns the roster for one occurrence, oldest booking
// first (seats are first-come-first-served at insert time).
func (s *Store) ListActiveBookings(classDefinitionID string, occurrenceDate time.Time) ([]*models.BookingSeat, error) {
	query := `
		SELECT b.id, b.student_id, s.first_name, s.last_name, s.belt, b.status, b.created_at
		FROM bookings b
		JOIN students s ON s.id = b.student_id
		WHERE b.class_definition_id = $1 AND b.occurrence_date = $2
		AND b.status IN ('reserved', 'confirmed')
		ORDER BY b.created_at ASC`

	rows, err := s.DB.Query(query, classDefinitionID, occurrenceDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []*models.BookingSeat
	for rows.Next() {
		seat := &models.BookingSeat{}
		if err := rows.Scan(
			&seat.BookingID, &seat.StudentID, &seat.StudentFirstName,
			&seat.StudentLastName, &seat.Belt, &seat.Status, &seat.CreatedAt,
		); err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}
	return seats, rows.Err()
}

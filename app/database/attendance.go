package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
)

const attendanceColumns = `id, franchise_id, student_id, class_definition_id, occurrence_date,
		checked_in_at, status, check_in_method, marked_by, latitude, longitude, distance_meters, created_at`

func scanAttendance(row *sql.Row) (*models.Attendance, error) {
	a := &models.Attendance{}
	err := row.Scan(
		&a.ID, &a.FranchiseID, &a.StudentID, &a.ClassDefinitionID, &a.OccurrenceDate,
		&a.CheckedInAt, &a.Status, &a.CheckInMethod, &a.MarkedBy,
		&a.Latitude, &a.Longitude, &a.DistanceMeters, &a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) GetAttendanceForOccurrence(studentID, classDefinitionID string, occurrenceDate time.Time) (*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance
			  WHERE student_id = $1 AND class_definition_id = $2 AND occurrence_date = $3`
	return scanAttendance(s.DB.QueryRow(query, studentID, classDefinitionID, occurrenceDate))
}

func (s *Store) CountAttendance(classDefinitionID string, occurrenceDate time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM attendance
			  WHERE class_definition_id = $1 AND occurrence_date = $2`
	err := s.DB.QueryRow(query, classDefinitionID, occurrenceDate).Scan(&count)
	return count, err
}

// InsertAttendance mirrors InsertBooking: one atomic conditional insert with
// the attendance count as capacity guard and the unique key as duplicate guard.
func (s *Store) InsertAttendance(a *models.Attendance, capacity int) error {
	query := `
		INSERT INTO attendance (id, franchise_id, student_id, class_definition_id, occurrence_date,
			checked_in_at, status, check_in_method, marked_by, latitude, longitude, distance_meters, created_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW()
		WHERE (
			SELECT COUNT(*) FROM attendance
			WHERE class_definition_id = $4 AND occurrence_date = $5
		) < $13
		RETURNING created_at`

	err := s.DB.QueryRow(query,
		a.ID, a.FranchiseID, a.StudentID, a.ClassDefinitionID, a.OccurrenceDate,
		a.CheckedInAt, a.Status, a.CheckInMethod, a.MarkedBy,
		a.Latitude, a.Longitude, a.DistanceMeters, capacity,
	).Scan(&a.CreatedAt)
	return translateInsertErr(err)
}

// DeleteAttendance removes one attendance row; reports whether a row existed.
func (s *Store) DeleteAttendance(studentID, classDefinitionID string, occurrenceDate time.Time) (bool, error) {
	query := `DELETE FROM attendance
			  WHERE student_id = $1 AND class_definition_id = $2 AND occurrence_date = $3`
	result, err := s.DB.Exec(query, studentID, classDefinitionID, occurrenceDate)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountAttendanceSince counts a student's attendance on or after a reference
// date, across all classes. Used by the graduation engine.
func (s *Store) CountAttendanceSince(studentID string, since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM attendance
			  WHERE student_id = $1 AND occurrence_date >= $2`
	err := s.DB.QueryRow(query, studentID, since).Scan(&count)
	return count, err
}

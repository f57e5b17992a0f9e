package database

import (
	"database/sql"
	"errors"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
)

const studentColumns = `id, franchise_id, first_name, last_name, belt, degree, payment_status,
		enrolled_at, last_graduation_date, is_active, created_at, updated_at`

func (s *Store) GetStudent(studentID string) (*models.Student, error) {
	st := &models.Student{}
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1 AND is_active = true`

	err := s.DB.QueryRow(query, studentID).Scan(
		&st.ID, &st.FranchiseID, &st.FirstName, &st.LastName, &st.Belt, &st.Degree,
		&st.PaymentStatus, &st.EnrolledAt, &st.LastGraduationDate,
		&st.IsActive, &st.CreatedAt, &st.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// ListGraduationHistory returns a student's promotion log, oldest first.
func (s *Store) ListGraduationHistory(studentID string) ([]*models.GraduationHistory, error) {
	query := `SELECT id, student_id, belt, degree, promoted_by, promoted_at
			  FROM graduation_history WHERE student_id = $1 ORDER BY promoted_at ASC`

	rows, err := s.DB.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []*models.GraduationHistory
	for rows.Next() {
		h := &models.GraduationHistory{}
		if err := rows.Scan(&h.ID, &h.StudentID, &h.Belt, &h.Degree, &h.PromotedBy, &h.PromotedAt); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

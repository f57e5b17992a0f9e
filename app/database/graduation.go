package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
)

const ruleColumns = `id, from_belt, from_degree, to_belt, to_degree, classes_required, min_days_required, fee, created_at, updated_at`

func scanRule(row *sql.Row) (*models.GraduationRule, error) {
	r := &models.GraduationRule{}
	err := row.Scan(
		&r.ID, &r.FromBelt, &r.FromDegree, &r.ToBelt, &r.ToDegree,
		&r.ClassesRequired, &r.MinDaysRequired, &r.Fee, &r.CreatedAt, &r.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// GetGraduationRule looks up the single rule for a (belt, degree) rung.
func (s *Store) GetGraduationRule(fromBelt models.Belt, fromDegree int) (*models.GraduationRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM graduation_rules
			  WHERE from_belt = $1 AND from_degree = $2`
	return scanRule(s.DB.QueryRow(query, fromBelt, fromDegree))
}

func (s *Store) ListGraduationRules() ([]*models.GraduationRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM graduation_rules
			  ORDER BY from_belt, from_degree`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []*models.GraduationRule
	for rows.Next() {
		r := &models.GraduationRule{}
		if err := rows.Scan(
			&r.ID, &r.FromBelt, &r.FromDegree, &r.ToBelt, &r.ToDegree,
			&r.ClassesRequired, &r.MinDaysRequired, &r.Fee, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

// CreateGraduationRule inserts one ladder rung; the (from_belt, from_degree)
// unique key makes a second rule for the same rung an ErrDuplicateKey.
func (s *Store) CreateGraduationRule(r *models.GraduationRule) error {
	query := `INSERT INTO graduation_rules (from_belt, from_degree, to_belt, to_degree, classes_required, min_days_required, fee, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := s.DB.QueryRow(query,
		r.FromBelt, r.FromDegree, r.ToBelt, r.ToDegree,
		r.ClassesRequired, r.MinDaysRequired, r.Fee,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateKey
	}
	return err
}

// ApplyPromotion performs a promotion as one transaction: belt/degree move to
// the rule target, exactly one history row is appended and the graduation
// reference date resets. Either all of it lands or none of it does.
func (s *Store) ApplyPromotion(studentID string, rule *models.GraduationRule, historyID, promotedBy string, promotedAt time.Time) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`UPDATE students SET belt = $1, degree = $2, last_graduation_date = $3, updated_at = NOW() WHERE id = $4`,
		rule.ToBelt, rule.ToDegree, promotedAt, studentID,
	)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	_, err = tx.Exec(
		`INSERT INTO graduation_history (id, student_id, belt, degree, promoted_by, promoted_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		historyID, studentID, rule.ToBelt, rule.ToDegree, promotedBy, promotedAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

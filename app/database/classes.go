package database

import (
	"database/sql"
	"errors"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
)

const classColumns = `id, franchise_id, name, category, day_of_week, start_time, end_time, capacity, is_active, created_at, updated_at`

func scanClass(row *sql.Row) (*models.ClassDefinition, error) {
	c := &models.ClassDefinition{}
	err := row.Scan(
		&c.ID, &c.FranchiseID, &c.Name, &c.Category, &c.DayOfWeek,
		&c.StartTime, &c.EndTime, &c.Capacity, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) GetClassDefinition(classDefinitionID string) (*models.ClassDefinition, error) {
	query := `SELECT ` + classColumns + ` FROM class_definitions WHERE id = $1 AND is_active = true`
	return scanClass(s.DB.QueryRow(query, classDefinitionID))
}

func (s *Store) ListClassDefinitions(franchiseID string) ([]*models.ClassDefinition, error) {
	query := `SELECT ` + classColumns + ` FROM class_definitions
			  WHERE franchise_id = $1 AND is_active = true
			  ORDER BY day_of_week, start_time`

	rows, err := s.DB.Query(query, franchiseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.ClassDefinition
	for rows.Next() {
		c := &models.ClassDefinition{}
		if err := rows.Scan(
			&c.ID, &c.FranchiseID, &c.Name, &c.Category, &c.DayOfWeek,
			&c.StartTime, &c.EndTime, &c.Capacity, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// CreateClassDefinition inserts a recurring weekly class template.
// A duplicate (franchise, day, start) slot comes back as ErrDuplicateKey.
func (s *Store) CreateClassDefinition(c *models.ClassDefinition) error {
	query := `INSERT INTO class_definitions (franchise_id, name, category, day_of_week, start_time, end_time, capacity, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := s.DB.QueryRow(query,
		c.FranchiseID, c.Name, c.Category, c.DayOfWeek,
		c.StartTime, c.EndTime, c.Capacity,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateKey
	}
	return err
}

func (s *Store) DeactivateClassDefinition(classDefinitionID string) error {
	query := `UPDATE class_definitions SET is_active = false, updated_at = NOW() WHERE id = $1`
	result, err := s.DB.Exec(query, classDefinitionID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetFranchise(franchiseID string) (*models.Franchise, error) {
	f := &models.Franchise{}
	query := `SELECT id, name, latitude, longitude, is_active, created_at, updated_at
			  FROM franchises WHERE id = $1`

	err := s.DB.QueryRow(query, franchiseID).Scan(
		&f.ID, &f.Name, &f.Latitude, &f.Longitude, &f.IsActive, &f.CreatedAt, &f.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

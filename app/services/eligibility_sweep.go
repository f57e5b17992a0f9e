package services

import (
	"database/sql"
	"log"
)

// SweepGraduationEligibility finds students whose attendance and elapsed time
// both cross their rule's thresholds and records one graduation notice per
// student per sweep day. The NOT EXISTS guard keeps reruns idempotent.
func SweepGraduationEligibility(db *sql.DB) error {
	log.Println("Starting graduation eligibility sweep...")

	query := `
		SELECT
			s.id,
			s.first_name || ' ' || s.last_name as name,
			r.to_belt,
			r.to_degree
		FROM students s
		JOIN graduation_rules r ON r.from_belt = s.belt AND r.from_degree = s.degree
		WHERE s.is_active = true
		AND COALESCE(s.last_graduation_date, s.enrolled_at) <= NOW() - (r.min_days_required || ' days')::interval
		AND (
			SELECT COUNT(*) FROM attendance a
			WHERE a.student_id = s.id
			AND a.occurrence_date >= COALESCE(s.last_graduation_date, s.enrolled_at)
		) >= r.classes_required
		AND NOT EXISTS (
			SELECT 1 FROM graduation_notices n
			WHERE n.student_id = s.id
			AND n.notice_date = CURRENT_DATE
		)
	`

	rows, err := db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var studentID, studentName, toBelt string
		var toDegree int
		if err := rows.Scan(&studentID, &studentName, &toBelt, &toDegree); err != nil {
			log.Printf("Error scanning row: %v", err)
			continue
		}

		_, err := db.Exec(`
			INSERT INTO graduation_notices (student_id, notice_date, to_belt, to_degree)
			VALUES ($1, CURRENT_DATE, $2, $3)
		`, studentID, toBelt, toDegree)
		if err != nil {
			log.Printf("Error recording notice for %s: %v", studentName, err)
			continue
		}

		log.Printf("Eligible for graduation: %s -> %s %d", studentName, toBelt, toDegree)
		count++
	}

	log.Printf("Graduation eligibility sweep completed: %d notice(s)", count)
	return rows.Err()
}

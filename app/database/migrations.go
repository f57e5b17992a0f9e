package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates. The base schema
// lives in schema.sql; these guards repair deployments that predate it.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	// 1. Unique booking key — the constraint the concurrent create path
	// relies on. Older databases only had a plain index.
	if err := ensureBookingUniqueKey(db); err != nil {
		return err
	}

	// 2. Unique attendance key, same mechanism.
	if err := ensureAttendanceUniqueKey(db); err != nil {
		return err
	}

	// 3. Geofence metadata columns on attendance if not exists
	if err := addGeofenceColumns(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func ensureBookingUniqueKey(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM pg_indexes
				WHERE tablename = 'bookings'
				AND indexname = 'bookings_student_class_occurrence_key'
			) THEN
				CREATE UNIQUE INDEX bookings_student_class_occurrence_key
					ON bookings (student_id, class_definition_id, occurrence_date);
				RAISE NOTICE 'Added unique booking key';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for booking unique key: %v", err)
		return err
	}
	return nil
}

func ensureAttendanceUniqueKey(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM pg_indexes
				WHERE tablename = 'attendance'
				AND indexname = 'attendance_student_class_occurrence_key'
			) THEN
				CREATE UNIQUE INDEX attendance_student_class_occurrence_key
					ON attendance (student_id, class_definition_id, occurrence_date);
				RAISE NOTICE 'Added unique attendance key';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for attendance unique key: %v", err)
		return err
	}
	return nil
}

func addGeofenceColumns(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'attendance'
				AND column_name = 'distance_meters'
			) THEN
				ALTER TABLE attendance ADD COLUMN latitude DOUBLE PRECISION;
				ALTER TABLE attendance ADD COLUMN longitude DOUBLE PRECISION;
				ALTER TABLE attendance ADD COLUMN distance_meters DOUBLE PRECISION;
				RAISE NOTICE 'Added geofence columns to attendance';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for geofence columns: %v", err)
		return err
	}
	return nil
}

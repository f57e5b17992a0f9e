package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB, loc *time.Location) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now().In(loc)

			// Trigger at 9:30 PM (21:30), after the last evening class
			if now.Hour() == 21 && now.Minute() == 30 {
				log.Println("Triggering scheduled tasks [21:30]...")

				// Graduation eligibility sweep
				if err := SweepGraduationEligibility(db); err != nil {
					log.Printf("Error sweeping graduation eligibility: %v", err)
				}
			}
		}
	}()
}

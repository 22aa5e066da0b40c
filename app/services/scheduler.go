package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/apra1107-crypto/erp-sub002/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Publish monthly fees on the 1st at 06:00
			if now.Day() == 1 && now.Hour() == 6 && now.Minute() == 0 {
				log.Println("Triggering monthly fee publish [06:00]...")

				monthLabel := now.Format("January 2006")
				created, err := database.PublishMonthlyFees(db, monthLabel)
				if err != nil {
					log.Printf("Error publishing monthly fees: %v", err)
					continue
				}
				log.Printf("Published %d monthly fees for %s", created, monthLabel)
			}
		}
	}()
}

package main

import (
	"fmt"
	"log"

	"github.com/apra1107-crypto/erp-sub002/app/config"
	"github.com/apra1107-crypto/erp-sub002/app/database"
)

// Quick connectivity and data sanity check against the configured database.
func main() {
	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	var students, fees, unpaid int
	if err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE deleted_at IS NULL`).Scan(&students); err != nil {
		log.Fatal("students query failed:", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM fees WHERE deleted_at IS NULL`).Scan(&fees); err != nil {
		log.Fatal("fees query failed:", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM fees WHERE status = 'unpaid' AND deleted_at IS NULL`).Scan(&unpaid); err != nil {
		log.Fatal("unpaid fees query failed:", err)
	}

	fmt.Printf("students: %d\n", students)
	fmt.Printf("fees:     %d (%d unpaid)\n", fees, unpaid)

	stats, err := database.GetFeeStats(db, "")
	if err != nil {
		log.Fatal("fee stats query failed:", err)
	}
	fmt.Printf("collected: %.2f, pending: %.2f\n", stats.TotalPaid, stats.TotalUnpaid)
}

package task

import (
	"log"
	"os"
	"strconv"
	"time"

	"junket/database"
	"junket/models"
)

const defaultRetentionDays = 30

// CleanupDeletedRecords hard-deletes soft-deleted gaming records once they
// fall out of the retention window.
func CleanupDeletedRecords() {
	days, err := strconv.Atoi(os.Getenv("RECORD_RETENTION_DAYS"))
	if err != nil || days <= 0 {
		days = defaultRetentionDays
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	result := database.DB.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.RollingRecord{})
	if result.Error != nil {
		log.Println("❌ Failed to purge rolling records:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Purged %d rolling records older than %d days\n", result.RowsAffected, days)
	}

	result = database.DB.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.BuyInOutRecord{})
	if result.Error != nil {
		log.Println("❌ Failed to purge buy-in/out records:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Purged %d buy-in/out records older than %d days\n", result.RowsAffected, days)
	}
}

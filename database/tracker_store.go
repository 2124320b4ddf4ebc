// database/tracker_store.go
package database

import (
	"fmt"

	"github.com/sansadwatch/loksabha-backend/models"
)

// GetScrapeTrackerEntries retrieves the per-table scrape bookkeeping rows,
// most recent run first. The table is written only by the scraping pipeline;
// this is a read-only dump.
func GetScrapeTrackerEntries() ([]models.ScrapeTrackerEntry, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	rows, err := DB.Query(`
		SELECT table_name, last_max_id, last_scrape_time, new_records_count, total_records, scrape_status
		FROM scrape_tracker
		ORDER BY last_scrape_time DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query scrape_tracker: %w", err)
	}
	defer rows.Close()

	var entries []models.ScrapeTrackerEntry
	for rows.Next() {
		var e models.ScrapeTrackerEntry
		err := rows.Scan(&e.TableName, &e.LastMaxID, &e.LastScrapeTime, &e.NewRecordsCount, &e.TotalRecords, &e.ScrapeStatus)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scrape_tracker row: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scrape_tracker rows: %w", err)
	}
	return entries, nil
}

// models/tracker.go
package models

import "time"

// ScrapeTrackerEntry is one row of scrape_tracker: per-table bookkeeping
// written by the scraping pipeline after each run. This service only reads
// it; the scrape_status values are whatever the scraper wrote.
type ScrapeTrackerEntry struct {
	TableName       string     `db:"table_name" json:"table_name"`
	LastMaxID       *int64     `db:"last_max_id" json:"last_max_id"`
	LastScrapeTime  *time.Time `db:"last_scrape_time" json:"last_scrape_time"`
	NewRecordsCount *int64     `db:"new_records_count" json:"new_records_count"`
	TotalRecords    *int64     `db:"total_records" json:"total_records"`
	ScrapeStatus    *string    `db:"scrape_status" json:"scrape_status"`
}

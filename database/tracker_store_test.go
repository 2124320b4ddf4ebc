// database/tracker_store_test.go
package database

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetScrapeTrackerEntries(t *testing.T) {
	mock := newMockDB(t)

	ran := time.Date(2026, 8, 30, 2, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"table_name", "last_max_id", "last_scrape_time", "new_records_count", "total_records", "scrape_status"}).
		AddRow("member_questions", 120045, ran, 12, 120045, "success").
		AddRow("member_debates", 8810, ran.Add(-time.Hour), 0, 8810, "success").
		AddRow("mp_tour", nil, nil, nil, nil, "failure")

	mock.ExpectQuery(regexp.QuoteMeta("FROM scrape_tracker")).WillReturnRows(rows)

	entries, err := GetScrapeTrackerEntries()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "member_questions", entries[0].TableName)
	require.NotNil(t, entries[0].LastMaxID)
	assert.Equal(t, int64(120045), *entries[0].LastMaxID)
	require.NotNil(t, entries[0].ScrapeStatus)
	assert.Equal(t, "success", *entries[0].ScrapeStatus)

	// A failed run can leave everything but table_name and status NULL.
	assert.Nil(t, entries[2].LastMaxID)
	assert.Nil(t, entries[2].LastScrapeTime)
	require.NotNil(t, entries[2].ScrapeStatus)
	assert.Equal(t, "failure", *entries[2].ScrapeStatus)

	assert.NoError(t, mock.ExpectationsWereMet())
}

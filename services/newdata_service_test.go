// services/newdata_service_test.go
package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sansadwatch/loksabha-backend/database"
	"github.com/sansadwatch/loksabha-backend/models"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	old := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = old
		db.Close()
	})
	return mock
}

func expectUnseenCount(mock sqlmock.Sqlmock, table string, count int) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM "+table+" WHERE is_new = TRUE")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func TestGetNewDataSummaryOmitsZeroCountTables(t *testing.T) {
	mock := newMockDB(t)

	counts := map[string]int{
		"government_bills": 5,
		"member_questions": 2,
	}
	for _, table := range models.TrackedTables {
		expectUnseenCount(mock, table.Name, counts[table.Name])
	}

	summary, err := GetNewDataSummary()
	require.NoError(t, err)
	assert.Equal(t, 7, summary.TotalNewRecords)
	assert.Equal(t, []models.TableNewCount{
		{Table: "government_bills", NewCount: 5},
		{Table: "member_questions", NewCount: 2},
	}, summary.Tables)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNewDataSummaryAllSeen(t *testing.T) {
	mock := newMockDB(t)
	for _, table := range models.TrackedTables {
		expectUnseenCount(mock, table.Name, 0)
	}

	summary, err := GetNewDataSummary()
	require.NoError(t, err)
	assert.Zero(t, summary.TotalNewRecords)
	assert.Empty(t, summary.Tables)
}

func TestGetMemberNewActivitiesSumsKinds(t *testing.T) {
	mock := newMockDB(t)

	// Counts run in MemberActivityKinds order; note member_bills keys the
	// member as mp_code while the rest use srno.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM member_questions WHERE srno = ? AND is_new = TRUE")).
		WithArgs(int64(344)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM member_debates WHERE srno = ? AND is_new = TRUE")).
		WithArgs(int64(344)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM member_bills WHERE mp_code = ? AND is_new = TRUE")).
		WithArgs(int64(344)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM member_special_mentions WHERE srno = ? AND is_new = TRUE")).
		WithArgs(int64(344)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	result, err := GetMemberNewActivities(344)
	require.NoError(t, err)
	assert.Equal(t, 344, result.MpCode)
	assert.Equal(t, map[string]int{
		"new_questions": 3,
		"new_debates":   1,
		"new_bills":     0,
		"new_mentions":  2,
	}, result.Activities)

	sum := 0
	for _, c := range result.Activities {
		sum += c
	}
	assert.Equal(t, sum, result.TotalNew)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMemberNewActivitiesUnknownMemberYieldsZeros(t *testing.T) {
	mock := newMockDB(t)
	for range models.MemberActivityKinds {
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(int64(424242)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	}

	result, err := GetMemberNewActivities(424242)
	require.NoError(t, err)
	assert.Zero(t, result.TotalNew)
	for label, count := range result.Activities {
		assert.Zero(t, count, label)
	}
}

func TestGetNewQuestionsPageEnvelope(t *testing.T) {
	mock := newMockDB(t)
	expectUnseenCount(mock, "member_questions", 3)

	scraped := time.Date(2026, 8, 29, 6, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"questionId", "srno", "questionNo", "questionType", "questionDate", "ministry", "subject", "is_new", "scraped_at"}).
		AddRow(3, 1, "Q3", "STARRED", scraped, "Health", "Hospital beds", true, scraped).
		AddRow(2, 1, "Q2", "STARRED", scraped, "Health", "Vaccine stocks", true, scraped.Add(-time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY scraped_at DESC LIMIT ? OFFSET ?")).
		WithArgs(2, 0).
		WillReturnRows(rows)

	page, err := GetNewQuestionsPage(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalNew)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Size)
	assert.Equal(t, 2, page.Pages)

	questions, ok := page.Data.([]models.Question)
	require.True(t, ok)
	assert.Len(t, questions, 2)
}

func TestMarkQuestionReadIdempotentSecondCall(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE member_questions SET is_new = FALSE WHERE questionId = ?")).
		WithArgs(int64(101)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE member_questions SET is_new = FALSE WHERE questionId = ?")).
		WithArgs(int64(101)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	found, err := MarkQuestionRead(101)
	require.NoError(t, err)
	assert.True(t, found)

	// Second acknowledgment matches nothing and reports not-found.
	found, err = MarkQuestionRead(101)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMarkAllReadResult(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE member_questions SET is_new = FALSE WHERE is_new = TRUE")).
		WillReturnResult(sqlmock.NewResult(0, 3))

	result, err := MarkAllRead("member_questions")
	require.NoError(t, err)
	assert.Equal(t, models.MarkAllReadResult{Status: "success", Table: "member_questions", RecordsMarked: 3}, result)
}

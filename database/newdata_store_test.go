// database/newdata_store_test.go
package database

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockDB swaps the package-level DB for a mock for the duration of one
// test.
func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	old := DB
	DB = db
	t.Cleanup(func() {
		DB = old
		db.Close()
	})
	return mock
}

func TestCountUnseen(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM member_questions WHERE is_new = TRUE")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := CountUnseen("member_questions")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUnseenRejectsUntrackedTable(t *testing.T) {
	newMockDB(t)

	_, err := CountUnseen("lok_sabha_members; DROP TABLE lok_sabha_members")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not tracked")
}

func TestCountUnseenForMemberUsesOwnerColumn(t *testing.T) {
	tests := []struct {
		table       string
		ownerColumn string
	}{
		{"member_questions", "srno"},
		{"member_debates", "srno"},
		{"member_bills", "mp_code"},
		{"member_special_mentions", "srno"},
		{"assurance", "mp_code"},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			mock := newMockDB(t)
			query := "SELECT COUNT(*) FROM " + tt.table + " WHERE " + tt.ownerColumn + " = ? AND is_new = TRUE"
			mock.ExpectQuery(regexp.QuoteMeta(query)).
				WithArgs(int64(344)).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

			count, err := CountUnseenForMember(tt.table, 344)
			require.NoError(t, err)
			assert.Equal(t, 2, count)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetNewQuestionsPagination(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM member_questions WHERE is_new = TRUE")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	scraped := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"questionId", "srno", "questionNo", "questionType", "questionDate", "ministry", "subject", "is_new", "scraped_at"}).
		AddRow(103, 12, "Q103", "STARRED", scraped, "Finance", "Budget allocation", true, scraped)

	// page 2, size 2 of 3 unseen rows: one row back
	mock.ExpectQuery(regexp.QuoteMeta("FROM member_questions WHERE is_new = TRUE ORDER BY scraped_at DESC LIMIT ? OFFSET ?")).
		WithArgs(2, 2).
		WillReturnRows(rows)

	questions, total, err := GetNewQuestions(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, questions, 1)
	assert.Equal(t, int64(103), questions[0].QuestionID)
	assert.True(t, questions[0].IsNew)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkQuestionReadReportsAffectedRows(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE member_questions SET is_new = FALSE WHERE questionId = ?")).
		WithArgs(int64(101)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := MarkQuestionRead(101)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkQuestionReadMissingRow(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE member_questions SET is_new = FALSE WHERE questionId = ?")).
		WithArgs(int64(9999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := MarkQuestionRead(9999)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestMarkDebateRead(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE member_debates SET is_new = FALSE WHERE debateId = ?")).
		WithArgs(int64(55)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := MarkDebateRead(55)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestMarkAllRead(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE member_questions SET is_new = FALSE WHERE is_new = TRUE")).
		WillReturnResult(sqlmock.NewResult(0, 3))

	affected, err := MarkAllRead("member_questions")
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAllReadNothingToAcknowledge(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE gallery SET is_new = FALSE WHERE is_new = TRUE")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := MarkAllRead("gallery")
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestMarkAllReadRejectsUnknownTable(t *testing.T) {
	mock := newMockDB(t)

	_, err := MarkAllRead("not_a_real_table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not bulk-acknowledgeable")
	// The store must be rejected before any statement runs.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAllReadRejectsTrackedButNotAcknowledgeableTable(t *testing.T) {
	newMockDB(t)

	// mp_tour is tracked (it appears in the summary) but deliberately absent
	// from the bulk allow-list.
	_, err := MarkAllRead("mp_tour")
	require.Error(t, err)
}

// database/member_store_test.go
package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memberRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"mp_code", "name", "party", "state", "constituency",
		"email", "phone", "terms", "status", "profile_link", "image_url",
	})
}

func TestGetMembersWithFilters(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM lok_sabha_members WHERE 1=1 AND party LIKE ? AND state LIKE ?")).
		WithArgs("%BJP%", "%Kerala%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY name LIMIT ? OFFSET ?")).
		WithArgs("%BJP%", "%Kerala%", 50, 0).
		WillReturnRows(memberRows().AddRow(344, "A Member", "BJP", "Kerala", "Thrissur", nil, nil, "17,18", "Active", nil, nil))

	members, total, err := GetMembers("BJP", "Kerala", nil, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, members, 1)
	assert.Equal(t, int64(344), members[0].MpCode)
	require.NotNil(t, members[0].Party)
	assert.Equal(t, "BJP", *members[0].Party)
	assert.Nil(t, members[0].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMemberByCodeNotFound(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM lok_sabha_members WHERE mp_code = ?")).
		WithArgs(int64(9999)).
		WillReturnRows(memberRows())

	member, err := GetMemberByCode(9999)
	require.NoError(t, err)
	assert.Nil(t, member)
}

func TestGetMemberActivityCounts(t *testing.T) {
	mock := newMockDB(t)

	// Profile statistics span both owner-column conventions: mp_code on the
	// older tables, srno on questions and debates.
	expects := []struct {
		query string
		count int
	}{
		{"SELECT COUNT(*) FROM assurance WHERE mp_code = ?", 4},
		{"SELECT COUNT(*) FROM gallery WHERE mp_code = ?", 2},
		{"SELECT COUNT(*) FROM member_bills WHERE mp_code = ?", 1},
		{"SELECT COUNT(*) FROM member_committees WHERE mp_code = ?", 3},
		{"SELECT COUNT(*) FROM member_questions WHERE srno = ?", 40},
		{"SELECT COUNT(*) FROM member_debates WHERE srno = ?", 9},
	}
	for _, e := range expects {
		mock.ExpectQuery(regexp.QuoteMeta(e.query)).
			WithArgs(int64(344)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(e.count))
	}

	counts, err := GetMemberActivityCounts(344)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"assurances":     4,
		"gallery_videos": 2,
		"private_bills":  1,
		"committees":     3,
		"questions":      40,
		"debates":        9,
	}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPersonalDetailsNotFound(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM member_personal_details")).
		WithArgs(int64(9999)).
		WillReturnRows(sqlmock.NewRows([]string{"srno", "fatherName", "motherName", "dateBirth", "spouseName", "qualification", "is_new", "scraped_at"}))

	details, err := GetPersonalDetails(9999)
	require.NoError(t, err)
	assert.Nil(t, details)
}

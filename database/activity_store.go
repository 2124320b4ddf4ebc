// database/activity_store.go
package database

import (
	"database/sql"
	"fmt"

	"github.com/sansadwatch/loksabha-backend/models"
)

// Column lists are explicit so scans stay stable when the scraper grows the
// tables.
const (
	assuranceColumns      = `id, mp_code, member, assu_no, loksabha, session, ministry, status, is_new, scraped_at`
	galleryColumns        = `id, mp_code, mp_name, loksabha, session, subject_title, videoUrl, eventDate, is_new, scraped_at`
	committeeColumns      = `id, mp_code, loksabha, committeeName, status, date_from, date_to, is_new, scraped_at`
	privateBillColumns    = `id, mp_code, loksabha, session, billName, debate_date, is_new, scraped_at`
	governmentBillColumns = `id, srno, loksabha, session, bill_title, debate_date, is_new, scraped_at`
	questionColumns       = `questionId, srno, questionNo, questionType, questionDate, ministry, subject, is_new, scraped_at`
	debateColumns         = `debateId, srno, loksabha, session, title, debateDate, is_new, scraped_at`
	specialMentionColumns = `id, srno, mentionNo, madeDate, subject, is_new, scraped_at`
	tourColumns           = `id, srno, purpose, tour_place, tour_date, is_new, scraped_at`
	attendanceColumns     = `id, mp_code, loksabha, session, attendance, is_new, scraped_at`
)

// activityFilter appends the optional member/loksabha conditions that every
// activity listing shares. base must be a valid boolean expression ("1=1"
// when there is no standing condition).
func activityFilter(base, ownerColumn string, mpCode, loksabha *int64) (string, []interface{}) {
	where := base
	var params []interface{}
	if mpCode != nil {
		where += " AND " + ownerColumn + " = ?"
		params = append(params, *mpCode)
	}
	if loksabha != nil {
		where += " AND loksabha = ?"
		params = append(params, *loksabha)
	}
	return where, params
}

func countWhere(table, where string, params []interface{}) (int, error) {
	var total int
	err := DB.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE "+where, params...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return total, nil
}

// --- scan helpers, shared with the new-data store ---

func scanAssurances(rows *sql.Rows) ([]models.Assurance, error) {
	var items []models.Assurance
	for rows.Next() {
		var a models.Assurance
		err := rows.Scan(&a.ID, &a.MpCode, &a.Member, &a.AssuNo, &a.Loksabha, &a.Session, &a.Ministry, &a.Status, &a.IsNew, &a.ScrapedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assurance row: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func scanGallery(rows *sql.Rows) ([]models.Gallery, error) {
	var items []models.Gallery
	for rows.Next() {
		var g models.Gallery
		err := rows.Scan(&g.ID, &g.MpCode, &g.MpName, &g.Loksabha, &g.Session, &g.SubjectTitle, &g.VideoURL, &g.EventDate, &g.IsNew, &g.ScrapedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gallery row: %w", err)
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

func scanCommittees(rows *sql.Rows) ([]models.Committee, error) {
	var items []models.Committee
	for rows.Next() {
		var c models.Committee
		err := rows.Scan(&c.ID, &c.MpCode, &c.Loksabha, &c.CommitteeName, &c.Status, &c.DateFrom, &c.DateTo, &c.IsNew, &c.ScrapedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan committee row: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func scanPrivateBills(rows *sql.Rows) ([]models.PrivateBill, error) {
	var items []models.PrivateBill
	for rows.Next() {
		var b models.PrivateBill
		err := rows.Scan(&b.ID, &b.MpCode, &b.Loksabha, &b.Session, &b.BillName, &b.DebateDate, &b.IsNew, &b.ScrapedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan private bill row: %w", err)
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func scanGovernmentBills(rows *sql.Rows) ([]models.GovernmentBill, error) {
	var items []models.GovernmentBill
	for rows.Next() {
		var b models.GovernmentBill
		err := rows.Scan(&b.ID, &b.Srno, &b.Loksabha, &b.Session, &b.BillTitle, &b.DebateDate, &b.IsNew, &b.ScrapedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan government bill row: %w", err)
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func scanQuestions(rows *sql.Rows) ([]models.Question, error) {
	var items []models.Question
	for rows.Next() {
		var q models.Question
		err := rows.Scan(&q.QuestionID, &q.Srno, &q.QuestionNo, &q.QuestionType, &q.QuestionDate, &q.Ministry, &q.Subject, &q.IsNew, &q.ScrapedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question row: %w", err)
		}
		items = append(items, q)
	}
	return items, rows.Err()
}

func scanDebates(rows *sql.Rows) ([]models.Debate, error) {
	var items []models.Debate
	for rows.Next() {
		var d models.Debate
		err := rows.Scan(&d.DebateID, &d.Srno, &d.Loksabha, &d.Session, &d.Title, &d.DebateDate, &d.IsNew, &d.ScrapedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debate row: %w", err)
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func scanSpecialMentions(rows *sql.Rows) ([]models.SpecialMention, error) {
	var items []models.SpecialMention
	for rows.Next() {
		var m models.SpecialMention
		err := rows.Scan(&m.ID, &m.Srno, &m.MentionNo, &m.MadeDate, &m.Subject, &m.IsNew, &m.ScrapedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan special mention row: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func scanTours(rows *sql.Rows) ([]models.Tour, error) {
	var items []models.Tour
	for rows.Next() {
		var t models.Tour
		err := rows.Scan(&t.ID, &t.Srno, &t.Purpose, &t.TourPlace, &t.TourDate, &t.IsNew, &t.ScrapedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tour row: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func scanAttendance(rows *sql.Rows) ([]models.Attendance, error) {
	var items []models.Attendance
	for rows.Next() {
		var a models.Attendance
		err := rows.Scan(&a.ID, &a.MpCode, &a.Loksabha, &a.Session, &a.Attendance, &a.IsNew, &a.ScrapedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// --- paginated listings ---

// GetAssurances retrieves a page of government assurances.
func GetAssurances(mpCode, loksabha *int64, page, size int) ([]models.Assurance, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}
	where, params := activityFilter("1=1", "mp_code", mpCode, loksabha)
	total, err := countWhere("assurance", where, params)
	if err != nil {
		return nil, 0, err
	}
	rows, err := DB.Query(
		"SELECT "+assuranceColumns+" FROM assurance WHERE "+where+" ORDER BY loksabha DESC, session DESC LIMIT ? OFFSET ?",
		append(params, size, (page-1)*size)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query assurances: %w", err)
	}
	defer rows.Close()
	items, err := scanAssurances(rows)
	return items, total, err
}

// GetGallery retrieves a page of gallery videos.
func GetGallery(mpCode, loksabha *int64, page, size int) ([]models.Gallery, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}
	where, params := activityFilter("1=1", "mp_code", mpCode, loksabha)
	total, err := countWhere("gallery", where, params)
	if err != nil {
		return nil, 0, err
	}
	rows, err := DB.Query(
		"SELECT "+galleryColumns+" FROM gallery WHERE "+where+" ORDER BY eventDate DESC LIMIT ? OFFSET ?",
		append(params, size, (page-1)*size)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query gallery: %w", err)
	}
	defer rows.Close()
	items, err := scanGallery(rows)
	return items, total, err
}

// GetCommittees retrieves a page of committee memberships. Rows without an
// mp_code are orphans from the scraper and are excluded.
func GetCommittees(mpCode, loksabha *int64, page, size int) ([]models.Committee, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}
	where, params := activityFilter("mp_code IS NOT NULL", "mp_code", mpCode, loksabha)
	total, err := countWhere("member_committees", where, params)
	if err != nil {
		return nil, 0, err
	}
	rows, err := DB.Query(
		"SELECT "+committeeColumns+" FROM member_committees WHERE "+where+" ORDER BY loksabha DESC LIMIT ? OFFSET ?",
		append(params, size, (page-1)*size)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query committees: %w", err)
	}
	defer rows.Close()
	items, err := scanCommittees(rows)
	return items, total, err
}

// GetPrivateBills retrieves a page of private member bills.
func GetPrivateBills(mpCode, loksabha *int64, page, size int) ([]models.PrivateBill, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}
	where, params := activityFilter("mp_code IS NOT NULL", "mp_code", mpCode, loksabha)
	total, err := countWhere("member_bills", where, params)
	if err != nil {
		return nil, 0, err
	}
	rows, err := DB.Query(
		"SELECT "+privateBillColumns+" FROM member_bills WHERE "+where+" ORDER BY loksabha DESC LIMIT ? OFFSET ?",
		append(params, size, (page-1)*size)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query private bills: %w", err)
	}
	defer rows.Close()
	items, err := scanPrivateBills(rows)
	return items, total, err
}

// GetGovernmentBills retrieves a page of government bills.
func GetGovernmentBills(mpCode, loksabha *int64, page, size int) ([]models.GovernmentBill, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}
	where, params := activityFilter("srno IS NOT NULL", "srno", mpCode, loksabha)
	total, err := countWhere("government_bills", where, params)
	if err != nil {
		return nil, 0, err
	}
	rows, err := DB.Query(
		"SELECT "+governmentBillColumns+" FROM government_bills WHERE "+where+" ORDER BY loksabha DESC LIMIT ? OFFSET ?",
		append(params, size, (page-1)*size)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query government bills: %w", err)
	}
	defer rows.Close()
	items, err := scanGovernmentBills(rows)
	return items, total, err
}

// GetQuestions retrieves a page of parliamentary questions.
func GetQuestions(mpCode *int64, page, size int) ([]models.Question, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}
	where, params := activityFilter("srno IS NOT NULL", "srno", mpCode, nil)
	total, err := countWhere("member_questions", where, params)
	if err != nil {
		return nil, 0, err
	}
	rows, err := DB.Query(
		"SELECT "+questionColumns+" FROM member_questions WHERE "+where+" ORDER BY questionDate DESC LIMIT ? OFFSET ?",
		append(params, size, (page-1)*size)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()
	items, err := scanQuestions(rows)
	return items, total, err
}

// GetDebates retrieves a page of parliamentary debates.
func GetDebates(mpCode, loksabha *int64, page, size int) ([]models.Debate, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}
	where, params := activityFilter("srno IS NOT NULL", "srno", mpCode, loksabha)
	total, err := countWhere("member_debates", where, params)
	if err != nil {
		return nil, 0, err
	}
	rows, err := DB.Query(
		"SELECT "+debateColumns+" FROM member_debates WHERE "+where+" ORDER BY loksabha DESC LIMIT ? OFFSET ?",
		append(params, size, (page-1)*size)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query debates: %w", err)
	}
	defer rows.Close()
	items, err := scanDebates(rows)
	return items, total, err
}

// GetSpecialMentions retrieves a page of Zero Hour special mentions.
func GetSpecialMentions(mpCode *int64, page, size int) ([]models.SpecialMention, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}
	where, params := activityFilter("srno IS NOT NULL", "srno", mpCode, nil)
	total, err := countWhere("member_special_mentions", where, params)
	if err != nil {
		return nil, 0, err
	}
	rows, err := DB.Query(
		"SELECT "+specialMentionColumns+" FROM member_special_mentions WHERE "+where+" ORDER BY madeDate DESC LIMIT ? OFFSET ?",
		append(params, size, (page-1)*size)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query special mentions: %w", err)
	}
	defer rows.Close()
	items, err := scanSpecialMentions(rows)
	return items, total, err
}

// GetTours retrieves a page of MP tours.
func GetTours(mpCode *int64, page, size int) ([]models.Tour, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}
	where, params := activityFilter("srno IS NOT NULL", "srno", mpCode, nil)
	total, err := countWhere("mp_tour", where, params)
	if err != nil {
		return nil, 0, err
	}
	rows, err := DB.Query(
		"SELECT "+tourColumns+" FROM mp_tour WHERE "+where+" ORDER BY tour_date DESC LIMIT ? OFFSET ?",
		append(params, size, (page-1)*size)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query tours: %w", err)
	}
	defer rows.Close()
	items, err := scanTours(rows)
	return items, total, err
}

// GetAttendance retrieves a page of attendance records.
func GetAttendance(mpCode, loksabha *int64, page, size int) ([]models.Attendance, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}
	where, params := activityFilter("mp_code IS NOT NULL", "mp_code", mpCode, loksabha)
	total, err := countWhere("member_attendance", where, params)
	if err != nil {
		return nil, 0, err
	}
	rows, err := DB.Query(
		"SELECT "+attendanceColumns+" FROM member_attendance WHERE "+where+" LIMIT ? OFFSET ?",
		append(params, size, (page-1)*size)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()
	items, err := scanAttendance(rows)
	return items, total, err
}

// database/member_store.go
package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/sansadwatch/loksabha-backend/models"
)

const memberColumns = `mp_code, name, party, state, constituency, email, phone, terms, status, profile_link, image_url`

// GetMembers retrieves a page of lok_sabha_members with optional filters.
// party and state match with LIKE; loksabha matches against the terms list.
// Returns the page of members plus the total count for the filter.
func GetMembers(party, state string, loksabha *int64, page, size int) ([]models.Member, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}

	where := "1=1"
	var params []interface{}
	if party != "" {
		where += " AND party LIKE ?"
		params = append(params, "%"+party+"%")
	}
	if state != "" {
		where += " AND state LIKE ?"
		params = append(params, "%"+state+"%")
	}
	if loksabha != nil {
		where += " AND terms LIKE ?"
		params = append(params, fmt.Sprintf("%%%d%%", *loksabha))
	}

	var total int
	err := DB.QueryRow("SELECT COUNT(*) FROM lok_sabha_members WHERE "+where, params...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	offset := (page - 1) * size
	rows, err := DB.Query(
		"SELECT "+memberColumns+" FROM lok_sabha_members WHERE "+where+" ORDER BY name LIMIT ? OFFSET ?",
		append(params, size, offset)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		err := rows.Scan(
			&m.MpCode, &m.Name, &m.Party, &m.State, &m.Constituency,
			&m.Email, &m.Phone, &m.Terms, &m.Status, &m.ProfileLink, &m.ImageURL,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, m)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating member rows: %w", err)
	}
	return members, total, nil
}

// GetMemberByCode retrieves a single member by mp_code.
// Returns (nil, nil) when no such member exists.
func GetMemberByCode(mpCode int64) (*models.Member, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	var m models.Member
	row := DB.QueryRow("SELECT "+memberColumns+" FROM lok_sabha_members WHERE mp_code = ?", mpCode)
	err := row.Scan(
		&m.MpCode, &m.Name, &m.Party, &m.State, &m.Constituency,
		&m.Email, &m.Phone, &m.Terms, &m.Status, &m.ProfileLink, &m.ImageURL,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query member %d: %w", mpCode, err)
	}
	return &m, nil
}

// GetMemberActivityCounts gathers the per-table totals shown on the member
// profile. member_questions and member_debates key the member as srno, the
// rest as mp_code.
func GetMemberActivityCounts(mpCode int64) (map[string]int, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	counts := map[string]int{}
	queries := []struct {
		label  string
		table  string
		column string
	}{
		{"assurances", "assurance", "mp_code"},
		{"gallery_videos", "gallery", "mp_code"},
		{"private_bills", "member_bills", "mp_code"},
		{"committees", "member_committees", "mp_code"},
		{"questions", "member_questions", "srno"},
		{"debates", "member_debates", "srno"},
	}

	for _, q := range queries {
		var count int
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", q.table, q.column)
		if err := DB.QueryRow(query, mpCode).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s for member %d: %w", q.label, mpCode, err)
		}
		counts[q.label] = count
	}

	log.Printf("Database: Gathered profile statistics for member %d.\n", mpCode)
	return counts, nil
}

// GetPersonalDetails retrieves member_personal_details by srno.
// Returns (nil, nil) when absent.
func GetPersonalDetails(srno int64) (*models.PersonalDetails, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	var d models.PersonalDetails
	row := DB.QueryRow(`
		SELECT srno, fatherName, motherName, dateBirth, spouseName, qualification, is_new, scraped_at
		FROM member_personal_details
		WHERE srno = ?
	`, srno)
	err := row.Scan(&d.Srno, &d.FatherName, &d.MotherName, &d.DateBirth, &d.SpouseName, &d.Qualification, &d.IsNew, &d.ScrapedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query personal details for %d: %w", srno, err)
	}
	return &d, nil
}

// GetOtherDetails retrieves member_other_details by srno.
// Returns (nil, nil) when absent.
func GetOtherDetails(srno int64) (*models.OtherDetails, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	var d models.OtherDetails
	row := DB.QueryRow(`
		SELECT srno, freedomFighter, countriesVisited, booksPublished, sportsInterests, is_new, scraped_at
		FROM member_other_details
		WHERE srno = ?
	`, srno)
	err := row.Scan(&d.Srno, &d.FreedomFighter, &d.CountriesVisited, &d.BooksPublished, &d.SportsInterests, &d.IsNew, &d.ScrapedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query other details for %d: %w", srno, err)
	}
	return &d, nil
}

// GetDashboard retrieves member_dashboard by srno.
// Returns (nil, nil) when absent.
func GetDashboard(srno int64) (*models.Dashboard, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	var d models.Dashboard
	row := DB.QueryRow(`
		SELECT srno, questionsCount, billsCount, committeeCount, debatesCount, is_new, scraped_at
		FROM member_dashboard
		WHERE srno = ?
	`, srno)
	err := row.Scan(&d.Srno, &d.QuestionsCount, &d.BillsCount, &d.CommitteeCount, &d.DebatesCount, &d.IsNew, &d.ScrapedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query dashboard for %d: %w", srno, err)
	}
	return &d, nil
}

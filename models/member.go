// models/member.go
package models

import "time"

// Member is one row of lok_sabha_members. Most columns are nullable in the
// scraped data, hence the pointers.
type Member struct {
	MpCode       int64   `db:"mp_code" json:"mp_code"`
	Name         *string `db:"name" json:"name"`
	Party        *string `db:"party" json:"party"`
	State        *string `db:"state" json:"state"`
	Constituency *string `db:"constituency" json:"constituency"`
	Email        *string `db:"email" json:"email"`
	Phone        *string `db:"phone" json:"phone"`
	Terms        *string `db:"terms" json:"terms"`
	Status       *string `db:"status" json:"status"`
	ProfileLink  *string `db:"profile_link" json:"profile_link"`
	ImageURL     *string `db:"image_url" json:"image_url"`
}

// PersonalDetails is one row of member_personal_details, keyed by srno.
type PersonalDetails struct {
	Srno          int64      `db:"srno" json:"srno"`
	FatherName    *string    `db:"fatherName" json:"fatherName"`
	MotherName    *string    `db:"motherName" json:"motherName"`
	DateBirth     *time.Time `db:"dateBirth" json:"dateBirth"`
	SpouseName    *string    `db:"spouseName" json:"spouseName"`
	Qualification *string    `db:"qualification" json:"qualification"`
	IsNew         bool       `db:"is_new" json:"is_new"`
	ScrapedAt     *time.Time `db:"scraped_at" json:"scraped_at"`
}

// OtherDetails is one row of member_other_details, keyed by srno.
type OtherDetails struct {
	Srno             int64      `db:"srno" json:"srno"`
	FreedomFighter   *string    `db:"freedomFighter" json:"freedomFighter"`
	CountriesVisited *string    `db:"countriesVisited" json:"countriesVisited"`
	BooksPublished   *string    `db:"booksPublished" json:"booksPublished"`
	SportsInterests  *string    `db:"sportsInterests" json:"sportsInterests"`
	IsNew            bool       `db:"is_new" json:"is_new"`
	ScrapedAt        *time.Time `db:"scraped_at" json:"scraped_at"`
}

// Dashboard is one row of member_dashboard, keyed by srno.
type Dashboard struct {
	Srno           int64      `db:"srno" json:"srno"`
	QuestionsCount *int64     `db:"questionsCount" json:"questionsCount"`
	BillsCount     *int64     `db:"billsCount" json:"billsCount"`
	CommitteeCount *int64     `db:"committeeCount" json:"committeeCount"`
	DebatesCount   *int64     `db:"debatesCount" json:"debatesCount"`
	IsNew          bool       `db:"is_new" json:"is_new"`
	ScrapedAt      *time.Time `db:"scraped_at" json:"scraped_at"`
}

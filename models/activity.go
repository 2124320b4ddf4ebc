// models/activity.go
package models

import "time"

// Column names with camelCase come straight from the scraped schema; the
// JSON tags mirror them so API output matches what the frontend already
// consumes.

// Assurance is a government assurance given to a member.
type Assurance struct {
	ID        int64      `db:"id" json:"id"`
	MpCode    *int64     `db:"mp_code" json:"mp_code"`
	Member    *string    `db:"member" json:"member"`
	AssuNo    *string    `db:"assu_no" json:"assu_no"`
	Loksabha  *int64     `db:"loksabha" json:"loksabha"`
	Session   *int64     `db:"session" json:"session"`
	Ministry  *string    `db:"ministry" json:"ministry"`
	Status    *string    `db:"status" json:"status"`
	IsNew     bool       `db:"is_new" json:"is_new"`
	ScrapedAt *time.Time `db:"scraped_at" json:"scraped_at"`
}

// Gallery is one Sansad TV video entry.
type Gallery struct {
	ID           int64      `db:"id" json:"id"`
	MpCode       *int64     `db:"mp_code" json:"mp_code"`
	MpName       *string    `db:"mp_name" json:"mp_name"`
	Loksabha     *int64     `db:"loksabha" json:"loksabha"`
	Session      *int64     `db:"session" json:"session"`
	SubjectTitle *string    `db:"subject_title" json:"subject_title"`
	VideoURL     *string    `db:"videoUrl" json:"videoUrl"`
	EventDate    *time.Time `db:"eventDate" json:"eventDate"`
	IsNew        bool       `db:"is_new" json:"is_new"`
	ScrapedAt    *time.Time `db:"scraped_at" json:"scraped_at"`
}

// Committee is a committee membership record.
type Committee struct {
	ID            int64      `db:"id" json:"id"`
	MpCode        *int64     `db:"mp_code" json:"mp_code"`
	Loksabha      *int64     `db:"loksabha" json:"loksabha"`
	CommitteeName *string    `db:"committeeName" json:"committeeName"`
	Status        *string    `db:"status" json:"status"`
	DateFrom      *time.Time `db:"date_from" json:"date_from"`
	DateTo        *time.Time `db:"date_to" json:"date_to"`
	IsNew         bool       `db:"is_new" json:"is_new"`
	ScrapedAt     *time.Time `db:"scraped_at" json:"scraped_at"`
}

// PrivateBill is a private member bill (member_bills).
type PrivateBill struct {
	ID         int64      `db:"id" json:"id"`
	MpCode     *int64     `db:"mp_code" json:"mp_code"`
	Loksabha   *int64     `db:"loksabha" json:"loksabha"`
	Session    *int64     `db:"session" json:"session"`
	BillName   *string    `db:"billName" json:"billName"`
	DebateDate *string    `db:"debate_date" json:"debate_date"`
	IsNew      bool       `db:"is_new" json:"is_new"`
	ScrapedAt  *time.Time `db:"scraped_at" json:"scraped_at"`
}

// GovernmentBill is a government bill (government_bills). Member reference
// is srno here, not mp_code.
type GovernmentBill struct {
	ID         int64      `db:"id" json:"id"`
	Srno       *int64     `db:"srno" json:"srno"`
	Loksabha   *int64     `db:"loksabha" json:"loksabha"`
	Session    *int64     `db:"session" json:"session"`
	BillTitle  *string    `db:"bill_title" json:"bill_title"`
	DebateDate *string    `db:"debate_date" json:"debate_date"`
	IsNew      bool       `db:"is_new" json:"is_new"`
	ScrapedAt  *time.Time `db:"scraped_at" json:"scraped_at"`
}

// Question is a parliamentary question (member_questions).
type Question struct {
	QuestionID   int64      `db:"questionId" json:"questionId"`
	Srno         *int64     `db:"srno" json:"srno"`
	QuestionNo   *string    `db:"questionNo" json:"questionNo"`
	QuestionType *string    `db:"questionType" json:"questionType"`
	QuestionDate *time.Time `db:"questionDate" json:"questionDate"`
	Ministry     *string    `db:"ministry" json:"ministry"`
	Subject      *string    `db:"subject" json:"subject"`
	IsNew        bool       `db:"is_new" json:"is_new"`
	ScrapedAt    *time.Time `db:"scraped_at" json:"scraped_at"`
}

// Debate is a parliamentary debate (member_debates).
type Debate struct {
	DebateID   int64      `db:"debateId" json:"debateId"`
	Srno       *int64     `db:"srno" json:"srno"`
	Loksabha   *int64     `db:"loksabha" json:"loksabha"`
	Session    *int64     `db:"session" json:"session"`
	Title      *string    `db:"title" json:"title"`
	DebateDate *time.Time `db:"debateDate" json:"debateDate"`
	IsNew      bool       `db:"is_new" json:"is_new"`
	ScrapedAt  *time.Time `db:"scraped_at" json:"scraped_at"`
}

// SpecialMention is a Zero Hour special mention.
type SpecialMention struct {
	ID        int64      `db:"id" json:"id"`
	Srno      *int64     `db:"srno" json:"srno"`
	MentionNo *int64     `db:"mentionNo" json:"mentionNo"`
	MadeDate  *time.Time `db:"madeDate" json:"madeDate"`
	Subject   *string    `db:"subject" json:"subject"`
	IsNew     bool       `db:"is_new" json:"is_new"`
	ScrapedAt *time.Time `db:"scraped_at" json:"scraped_at"`
}

// Tour is an MP tour record (mp_tour).
type Tour struct {
	ID        int64      `db:"id" json:"id"`
	Srno      *int64     `db:"srno" json:"srno"`
	Purpose   *string    `db:"purpose" json:"purpose"`
	TourPlace *string    `db:"tour_place" json:"tour_place"`
	TourDate  *time.Time `db:"tour_date" json:"tour_date"`
	IsNew     bool       `db:"is_new" json:"is_new"`
	ScrapedAt *time.Time `db:"scraped_at" json:"scraped_at"`
}

// Attendance is a session attendance record (member_attendance).
type Attendance struct {
	ID         int64      `db:"id" json:"id"`
	MpCode     *int64     `db:"mp_code" json:"mp_code"`
	Loksabha   *int64     `db:"loksabha" json:"loksabha"`
	Session    *int64     `db:"session" json:"session"`
	Attendance *string    `db:"attendance" json:"attendance"`
	IsNew      bool       `db:"is_new" json:"is_new"`
	ScrapedAt  *time.Time `db:"scraped_at" json:"scraped_at"`
}

// services/newdata_service.go
package services

import (
	"log"

	"github.com/sansadwatch/loksabha-backend/database"
	"github.com/sansadwatch/loksabha-backend/models"
)

// GetNewDataSummary counts unseen rows across every tracked table. Tables
// with nothing unseen are omitted from the result, so an empty Tables slice
// means the client has seen everything.
func GetNewDataSummary() (models.NewDataSummary, error) {
	summary := models.NewDataSummary{Tables: []models.TableNewCount{}}

	for _, table := range models.TrackedTables {
		count, err := database.CountUnseen(table.Name)
		if err != nil {
			return models.NewDataSummary{}, err
		}
		if count > 0 {
			summary.Tables = append(summary.Tables, models.TableNewCount{Table: table.Name, NewCount: count})
			summary.TotalNewRecords += count
		}
	}

	log.Printf("Service: New-data summary: %d unseen records across %d tables.\n",
		summary.TotalNewRecords, len(summary.Tables))
	return summary, nil
}

// GetMemberNewActivities counts a member's unseen rows per activity kind.
// A nonexistent mp_code simply yields all-zero counts; there is no
// existence check.
func GetMemberNewActivities(mpCode int64) (models.MemberNewActivities, error) {
	result := models.MemberNewActivities{
		MpCode:     int(mpCode),
		Activities: make(map[string]int, len(models.MemberActivityKinds)),
	}

	for _, kind := range models.MemberActivityKinds {
		count, err := database.CountUnseenForMember(kind.Table, mpCode)
		if err != nil {
			return models.MemberNewActivities{}, err
		}
		result.Activities[kind.Label] = count
		result.TotalNew += count
	}
	return result, nil
}

// GetNewQuestionsPage lists unseen questions, most recently scraped first.
func GetNewQuestionsPage(page, size int) (models.NewDataPage, error) {
	items, total, err := database.GetNewQuestions(page, size)
	if err != nil {
		return models.NewDataPage{}, err
	}
	if items == nil {
		items = []models.Question{}
	}
	return models.NewDataPage{TotalNew: total, Page: page, Size: size, Pages: PageCount(total, size), Data: items}, nil
}

// GetNewDebatesPage lists unseen debates.
func GetNewDebatesPage(page, size int) (models.NewDataPage, error) {
	items, total, err := database.GetNewDebates(page, size)
	if err != nil {
		return models.NewDataPage{}, err
	}
	if items == nil {
		items = []models.Debate{}
	}
	return models.NewDataPage{TotalNew: total, Page: page, Size: size, Pages: PageCount(total, size), Data: items}, nil
}

// GetNewGovernmentBillsPage lists unseen government bills.
func GetNewGovernmentBillsPage(page, size int) (models.NewDataPage, error) {
	items, total, err := database.GetNewGovernmentBills(page, size)
	if err != nil {
		return models.NewDataPage{}, err
	}
	if items == nil {
		items = []models.GovernmentBill{}
	}
	return models.NewDataPage{TotalNew: total, Page: page, Size: size, Pages: PageCount(total, size), Data: items}, nil
}

// GetNewSpecialMentionsPage lists unseen special mentions.
func GetNewSpecialMentionsPage(page, size int) (models.NewDataPage, error) {
	items, total, err := database.GetNewSpecialMentions(page, size)
	if err != nil {
		return models.NewDataPage{}, err
	}
	if items == nil {
		items = []models.SpecialMention{}
	}
	return models.NewDataPage{TotalNew: total, Page: page, Size: size, Pages: PageCount(total, size), Data: items}, nil
}

// MarkQuestionRead acknowledges one question. found is false when no row
// matched, which covers both "never existed" and "already read".
func MarkQuestionRead(questionID int64) (found bool, err error) {
	affected, err := database.MarkQuestionRead(questionID)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// MarkDebateRead acknowledges one debate.
func MarkDebateRead(debateID int64) (found bool, err error) {
	affected, err := database.MarkDebateRead(debateID)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// MarkAllRead acknowledges every unseen row of a bulk-acknowledgeable table.
// The caller validates the table name against the allow-list before calling.
func MarkAllRead(tableName string) (models.MarkAllReadResult, error) {
	affected, err := database.MarkAllRead(tableName)
	if err != nil {
		return models.MarkAllReadResult{}, err
	}
	return models.MarkAllReadResult{Status: "success", Table: tableName, RecordsMarked: affected}, nil
}

// GetScrapeTracker returns the raw per-table scrape bookkeeping.
func GetScrapeTracker() ([]models.ScrapeTrackerEntry, error) {
	entries, err := database.GetScrapeTrackerEntries()
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.ScrapeTrackerEntry{}
	}
	return entries, nil
}

// services/activity_service.go
package services

import (
	"github.com/sansadwatch/loksabha-backend/database"
	"github.com/sansadwatch/loksabha-backend/models"
)

// The activity listings all share the same shape: fetch one page from the
// store, wrap it in the standard envelope. Filters that a table does not
// support simply do not appear in its signature.

func paginated(items interface{}, total, page, size int) models.PaginatedResponse {
	return models.PaginatedResponse{Total: total, Page: page, Size: size, Pages: PageCount(total, size), Data: items}
}

func GetAssurancesPage(mpCode, loksabha *int64, page, size int) (models.PaginatedResponse, error) {
	items, total, err := database.GetAssurances(mpCode, loksabha, page, size)
	if err != nil {
		return models.PaginatedResponse{}, err
	}
	if items == nil {
		items = []models.Assurance{}
	}
	return paginated(items, total, page, size), nil
}

func GetGalleryPage(mpCode, loksabha *int64, page, size int) (models.PaginatedResponse, error) {
	items, total, err := database.GetGallery(mpCode, loksabha, page, size)
	if err != nil {
		return models.PaginatedResponse{}, err
	}
	if items == nil {
		items = []models.Gallery{}
	}
	return paginated(items, total, page, size), nil
}

func GetCommitteesPage(mpCode, loksabha *int64, page, size int) (models.PaginatedResponse, error) {
	items, total, err := database.GetCommittees(mpCode, loksabha, page, size)
	if err != nil {
		return models.PaginatedResponse{}, err
	}
	if items == nil {
		items = []models.Committee{}
	}
	return paginated(items, total, page, size), nil
}

func GetPrivateBillsPage(mpCode, loksabha *int64, page, size int) (models.PaginatedResponse, error) {
	items, total, err := database.GetPrivateBills(mpCode, loksabha, page, size)
	if err != nil {
		return models.PaginatedResponse{}, err
	}
	if items == nil {
		items = []models.PrivateBill{}
	}
	return paginated(items, total, page, size), nil
}

func GetGovernmentBillsPage(mpCode, loksabha *int64, page, size int) (models.PaginatedResponse, error) {
	items, total, err := database.GetGovernmentBills(mpCode, loksabha, page, size)
	if err != nil {
		return models.PaginatedResponse{}, err
	}
	if items == nil {
		items = []models.GovernmentBill{}
	}
	return paginated(items, total, page, size), nil
}

func GetQuestionsPage(mpCode *int64, page, size int) (models.PaginatedResponse, error) {
	items, total, err := database.GetQuestions(mpCode, page, size)
	if err != nil {
		return models.PaginatedResponse{}, err
	}
	if items == nil {
		items = []models.Question{}
	}
	return paginated(items, total, page, size), nil
}

func GetDebatesPage(mpCode, loksabha *int64, page, size int) (models.PaginatedResponse, error) {
	items, total, err := database.GetDebates(mpCode, loksabha, page, size)
	if err != nil {
		return models.PaginatedResponse{}, err
	}
	if items == nil {
		items = []models.Debate{}
	}
	return paginated(items, total, page, size), nil
}

func GetSpecialMentionsPage(mpCode *int64, page, size int) (models.PaginatedResponse, error) {
	items, total, err := database.GetSpecialMentions(mpCode, page, size)
	if err != nil {
		return models.PaginatedResponse{}, err
	}
	if items == nil {
		items = []models.SpecialMention{}
	}
	return paginated(items, total, page, size), nil
}

func GetToursPage(mpCode *int64, page, size int) (models.PaginatedResponse, error) {
	items, total, err := database.GetTours(mpCode, page, size)
	if err != nil {
		return models.PaginatedResponse{}, err
	}
	if items == nil {
		items = []models.Tour{}
	}
	return paginated(items, total, page, size), nil
}

func GetAttendancePage(mpCode, loksabha *int64, page, size int) (models.PaginatedResponse, error) {
	items, total, err := database.GetAttendance(mpCode, loksabha, page, size)
	if err != nil {
		return models.PaginatedResponse{}, err
	}
	if items == nil {
		items = []models.Attendance{}
	}
	return paginated(items, total, page, size), nil
}

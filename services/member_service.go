// services/member_service.go
package services

import (
	"github.com/sansadwatch/loksabha-backend/database"
	"github.com/sansadwatch/loksabha-backend/models"
)

// GetMembersPage lists members with optional party/state/loksabha filters.
func GetMembersPage(party, state string, loksabha *int64, page, size int) (models.PaginatedResponse, error) {
	members, total, err := database.GetMembers(party, state, loksabha, page, size)
	if err != nil {
		return models.PaginatedResponse{}, err
	}
	if members == nil {
		members = []models.Member{}
	}
	return models.PaginatedResponse{Total: total, Page: page, Size: size, Pages: PageCount(total, size), Data: members}, nil
}

// GetMember retrieves a single member; nil when absent.
func GetMember(mpCode int64) (*models.Member, error) {
	return database.GetMemberByCode(mpCode)
}

// GetMemberProfile assembles the member row plus activity totals.
// Returns nil when the member does not exist.
func GetMemberProfile(mpCode int64) (*models.MemberProfile, error) {
	member, err := database.GetMemberByCode(mpCode)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, nil
	}

	stats, err := database.GetMemberActivityCounts(mpCode)
	if err != nil {
		return nil, err
	}
	return &models.MemberProfile{Member: member, Statistics: stats}, nil
}

// GetPersonalDetails retrieves personal details by srno; nil when absent.
func GetPersonalDetails(srno int64) (*models.PersonalDetails, error) {
	return database.GetPersonalDetails(srno)
}

// GetOtherDetails retrieves other details by srno; nil when absent.
func GetOtherDetails(srno int64) (*models.OtherDetails, error) {
	return database.GetOtherDetails(srno)
}

// GetDashboard retrieves dashboard statistics by srno; nil when absent.
func GetDashboard(srno int64) (*models.Dashboard, error) {
	return database.GetDashboard(srno)
}

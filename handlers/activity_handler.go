// handlers/activity_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/sansadwatch/loksabha-backend/models"
	"github.com/sansadwatch/loksabha-backend/services"
)

// The activity listings share one request shape: pagination plus optional
// mp_code / loksabha filters. listParams gathers them once.
type listParams struct {
	page     int
	size     int
	mpCode   *int64
	loksabha *int64
}

func parseListParams(r *http.Request) (listParams, error) {
	var p listParams
	var err error
	p.page, p.size, err = parsePagination(r)
	if err != nil {
		return p, err
	}
	p.mpCode, err = queryInt64(r, "mp_code")
	if err != nil {
		return p, err
	}
	p.loksabha, err = queryInt64(r, "loksabha")
	if err != nil {
		return p, err
	}
	return p, nil
}

func serveActivityList(w http.ResponseWriter, r *http.Request, what string,
	fetch func(listParams) (models.PaginatedResponse, error)) {
	p, err := parseListParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := fetch(p)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get %s: %v", what, err))
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// GetAssurancesHandler lists government assurances. GET /api/assurances
func GetAssurancesHandler(w http.ResponseWriter, r *http.Request) {
	serveActivityList(w, r, "assurances", func(p listParams) (models.PaginatedResponse, error) {
		return services.GetAssurancesPage(p.mpCode, p.loksabha, p.page, p.size)
	})
}

// GetGalleryHandler lists gallery videos. GET /api/gallery
func GetGalleryHandler(w http.ResponseWriter, r *http.Request) {
	serveActivityList(w, r, "gallery", func(p listParams) (models.PaginatedResponse, error) {
		return services.GetGalleryPage(p.mpCode, p.loksabha, p.page, p.size)
	})
}

// GetCommitteesHandler lists committee memberships. GET /api/committees
func GetCommitteesHandler(w http.ResponseWriter, r *http.Request) {
	serveActivityList(w, r, "committees", func(p listParams) (models.PaginatedResponse, error) {
		return services.GetCommitteesPage(p.mpCode, p.loksabha, p.page, p.size)
	})
}

// GetPrivateBillsHandler lists private member bills. GET /api/bills/private
func GetPrivateBillsHandler(w http.ResponseWriter, r *http.Request) {
	serveActivityList(w, r, "private bills", func(p listParams) (models.PaginatedResponse, error) {
		return services.GetPrivateBillsPage(p.mpCode, p.loksabha, p.page, p.size)
	})
}

// GetGovernmentBillsHandler lists government bills. GET /api/bills/government
func GetGovernmentBillsHandler(w http.ResponseWriter, r *http.Request) {
	serveActivityList(w, r, "government bills", func(p listParams) (models.PaginatedResponse, error) {
		return services.GetGovernmentBillsPage(p.mpCode, p.loksabha, p.page, p.size)
	})
}

// GetQuestionsHandler lists parliamentary questions. GET /api/questions
func GetQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	serveActivityList(w, r, "questions", func(p listParams) (models.PaginatedResponse, error) {
		return services.GetQuestionsPage(p.mpCode, p.page, p.size)
	})
}

// GetDebatesHandler lists parliamentary debates. GET /api/debates
func GetDebatesHandler(w http.ResponseWriter, r *http.Request) {
	serveActivityList(w, r, "debates", func(p listParams) (models.PaginatedResponse, error) {
		return services.GetDebatesPage(p.mpCode, p.loksabha, p.page, p.size)
	})
}

// GetSpecialMentionsHandler lists Zero Hour special mentions.
// GET /api/special-mentions
func GetSpecialMentionsHandler(w http.ResponseWriter, r *http.Request) {
	serveActivityList(w, r, "special mentions", func(p listParams) (models.PaginatedResponse, error) {
		return services.GetSpecialMentionsPage(p.mpCode, p.page, p.size)
	})
}

// GetToursHandler lists MP tours. GET /api/tours
func GetToursHandler(w http.ResponseWriter, r *http.Request) {
	serveActivityList(w, r, "tours", func(p listParams) (models.PaginatedResponse, error) {
		return services.GetToursPage(p.mpCode, p.page, p.size)
	})
}

// GetAttendanceHandler lists attendance records. GET /api/attendance
func GetAttendanceHandler(w http.ResponseWriter, r *http.Request) {
	serveActivityList(w, r, "attendance", func(p listParams) (models.PaginatedResponse, error) {
		return services.GetAttendancePage(p.mpCode, p.loksabha, p.page, p.size)
	})
}

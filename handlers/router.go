// handlers/router.go
package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sansadwatch/loksabha-backend/config"
	"github.com/sansadwatch/loksabha-backend/database"
)

// RootHandler returns basic API metadata. GET /
func RootHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": config.AppConfig.API.Title,
		"version": config.AppConfig.API.Version,
		"health":  "/health",
	})
}

// HealthHandler checks API and database health. GET /health
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := database.DB.Ping(); err != nil {
		respondWithJSON(w, http.StatusInternalServerError, map[string]string{
			"status":   "unhealthy",
			"database": "disconnected",
			"message":  "Database connection failed",
		})
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
		"message":  "API is running",
	})
}

// NewRouter builds the full route table.
func NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", RootHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)

	// Members
	r.HandleFunc("/api/members", GetMembersHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/members/{mp_code:[0-9]+}", GetMemberHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/member-profile/{mp_code:[0-9]+}", GetMemberProfileHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/personal-details/{mp_code:[0-9]+}", GetPersonalDetailsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/other-details/{mp_code:[0-9]+}", GetOtherDetailsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/dashboard/{mp_code:[0-9]+}", GetDashboardHandler).Methods(http.MethodGet)

	// Parliamentary activities
	r.HandleFunc("/api/assurances", GetAssurancesHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/gallery", GetGalleryHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/committees", GetCommitteesHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/bills/private", GetPrivateBillsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/bills/government", GetGovernmentBillsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/questions", GetQuestionsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/debates", GetDebatesHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/special-mentions", GetSpecialMentionsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/tours", GetToursHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/attendance", GetAttendanceHandler).Methods(http.MethodGet)

	// New-data tracking
	r.HandleFunc("/api/new-data/summary", GetNewDataSummaryHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/questions/new", GetNewQuestionsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/debates/new", GetNewDebatesHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/bills/government/new", GetNewGovernmentBillsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/special-mentions/new", GetNewSpecialMentionsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/members/{mp_code:[0-9]+}/new-activities", GetMemberNewActivitiesHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/questions/{id:[0-9]+}/mark-read", MarkQuestionReadHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/debates/{id:[0-9]+}/mark-read", MarkDebateReadHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/new-data/mark-all-read/{table_name}", MarkAllReadHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/scrape-tracker", GetScrapeTrackerHandler).Methods(http.MethodGet)

	return r
}

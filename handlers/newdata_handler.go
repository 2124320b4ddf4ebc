// handlers/newdata_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sansadwatch/loksabha-backend/models"
	"github.com/sansadwatch/loksabha-backend/services"
)

// GetNewDataSummaryHandler returns unseen counts across all tracked tables.
// GET /api/new-data/summary
func GetNewDataSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := services.GetNewDataSummary()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get new-data summary: %v", err))
		return
	}
	respondWithJSON(w, http.StatusOK, summary)
}

func serveNewDataList(w http.ResponseWriter, r *http.Request, what string,
	fetch func(page, size int) (models.NewDataPage, error)) {
	page, size, err := parsePagination(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := fetch(page, size)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get new %s: %v", what, err))
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// GetNewQuestionsHandler lists unseen questions. GET /api/questions/new
func GetNewQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	serveNewDataList(w, r, "questions", services.GetNewQuestionsPage)
}

// GetNewDebatesHandler lists unseen debates. GET /api/debates/new
func GetNewDebatesHandler(w http.ResponseWriter, r *http.Request) {
	serveNewDataList(w, r, "debates", services.GetNewDebatesPage)
}

// GetNewGovernmentBillsHandler lists unseen government bills.
// GET /api/bills/government/new
func GetNewGovernmentBillsHandler(w http.ResponseWriter, r *http.Request) {
	serveNewDataList(w, r, "government bills", services.GetNewGovernmentBillsPage)
}

// GetNewSpecialMentionsHandler lists unseen special mentions.
// GET /api/special-mentions/new
func GetNewSpecialMentionsHandler(w http.ResponseWriter, r *http.Request) {
	serveNewDataList(w, r, "special mentions", services.GetNewSpecialMentionsPage)
}

// GetMemberNewActivitiesHandler returns a member's unseen counts per
// activity kind. GET /api/members/{mp_code}/new-activities
func GetMemberNewActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	mpCode, err := pathInt64(mux.Vars(r), "mp_code")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := services.GetMemberNewActivities(mpCode)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get new activities for member %d: %v", mpCode, err))
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// MarkQuestionReadHandler acknowledges one question.
// POST /api/questions/{id}/mark-read
func MarkQuestionReadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(mux.Vars(r), "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	found, err := services.MarkQuestionRead(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to mark question %d read: %v", id, err))
		return
	}
	if !found {
		respondWithError(w, http.StatusNotFound, "Question not found")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Question marked as read"})
}

// MarkDebateReadHandler acknowledges one debate.
// POST /api/debates/{id}/mark-read
func MarkDebateReadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(mux.Vars(r), "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	found, err := services.MarkDebateRead(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to mark debate %d read: %v", id, err))
		return
	}
	if !found {
		respondWithError(w, http.StatusNotFound, "Debate not found")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Debate marked as read"})
}

// MarkAllReadHandler acknowledges every unseen row in one table. The table
// name is checked against the allow-list before the store is touched.
// POST /api/new-data/mark-all-read/{table_name}
func MarkAllReadHandler(w http.ResponseWriter, r *http.Request) {
	tableName := mux.Vars(r)["table_name"]
	if !models.IsBulkAcknowledgeable(tableName) {
		respondWithError(w, http.StatusBadRequest, "Invalid table name")
		return
	}

	result, err := services.MarkAllRead(tableName)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to mark all read in %s: %v", tableName, err))
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// GetScrapeTrackerHandler dumps the scrape bookkeeping table.
// GET /api/scrape-tracker
func GetScrapeTrackerHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := services.GetScrapeTracker()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get scrape tracker: %v", err))
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"trackers": entries})
}

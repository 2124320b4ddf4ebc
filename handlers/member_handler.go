// handlers/member_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sansadwatch/loksabha-backend/services"
)

// GetMembersHandler lists members with optional party/state/loksabha
// filters. GET /api/members
func GetMembersHandler(w http.ResponseWriter, r *http.Request) {
	page, size, err := parsePagination(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	loksabha, err := queryInt64(r, "loksabha")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	party := r.URL.Query().Get("party")
	state := r.URL.Query().Get("state")

	result, err := services.GetMembersPage(party, state, loksabha, page, size)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get members: %v", err))
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// GetMemberHandler returns a single member. GET /api/members/{mp_code}
func GetMemberHandler(w http.ResponseWriter, r *http.Request) {
	mpCode, err := pathInt64(mux.Vars(r), "mp_code")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := services.GetMember(mpCode)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get member %d: %v", mpCode, err))
		return
	}
	if member == nil {
		respondWithError(w, http.StatusNotFound, "Member not found")
		return
	}
	respondWithJSON(w, http.StatusOK, member)
}

// GetMemberProfileHandler returns a member with activity statistics.
// GET /api/member-profile/{mp_code}
func GetMemberProfileHandler(w http.ResponseWriter, r *http.Request) {
	mpCode, err := pathInt64(mux.Vars(r), "mp_code")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := services.GetMemberProfile(mpCode)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get profile for member %d: %v", mpCode, err))
		return
	}
	if profile == nil {
		respondWithError(w, http.StatusNotFound, "Member not found")
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// GetPersonalDetailsHandler returns member personal details.
// GET /api/personal-details/{mp_code}
func GetPersonalDetailsHandler(w http.ResponseWriter, r *http.Request) {
	mpCode, err := pathInt64(mux.Vars(r), "mp_code")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	details, err := services.GetPersonalDetails(mpCode)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get personal details for %d: %v", mpCode, err))
		return
	}
	if details == nil {
		respondWithError(w, http.StatusNotFound, "Personal details not found")
		return
	}
	respondWithJSON(w, http.StatusOK, details)
}

// GetOtherDetailsHandler returns member other details.
// GET /api/other-details/{mp_code}
func GetOtherDetailsHandler(w http.ResponseWriter, r *http.Request) {
	mpCode, err := pathInt64(mux.Vars(r), "mp_code")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	details, err := services.GetOtherDetails(mpCode)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get other details for %d: %v", mpCode, err))
		return
	}
	if details == nil {
		respondWithError(w, http.StatusNotFound, "Other details not found")
		return
	}
	respondWithJSON(w, http.StatusOK, details)
}

// GetDashboardHandler returns member dashboard statistics.
// GET /api/dashboard/{mp_code}
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	mpCode, err := pathInt64(mux.Vars(r), "mp_code")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	dashboard, err := services.GetDashboard(mpCode)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get dashboard for %d: %v", mpCode, err))
		return
	}
	if dashboard == nil {
		respondWithError(w, http.StatusNotFound, "Dashboard not found")
		return
	}
	respondWithJSON(w, http.StatusOK, dashboard)
}

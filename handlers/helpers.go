// handlers/helpers.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Handler ERROR: Marshalling JSON response: %v", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	log.Printf("Handler API Error %d: %s", code, message)
	respondWithJSON(w, code, map[string]string{"error": message})
}

// parsePagination reads page/size query parameters with the standard
// defaults. page must be >= 1 and size within [1,100]; anything else is
// rejected rather than clamped.
func parsePagination(r *http.Request) (page, size int, err error) {
	page, size = 1, defaultPageSize

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, fmt.Errorf("invalid 'page' parameter %q: must be an integer >= 1", raw)
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil || size < 1 || size > maxPageSize {
			return 0, 0, fmt.Errorf("invalid 'size' parameter %q: must be an integer in [1,%d]", raw, maxPageSize)
		}
	}
	return page, size, nil
}

// queryInt64 reads an optional integer query parameter; nil when absent.
func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid '%s' parameter %q: must be an integer", name, raw)
	}
	return &v, nil
}

// pathInt64 reads a required integer path variable from a mux route.
func pathInt64(vars map[string]string, name string) (int64, error) {
	v, err := strconv.ParseInt(vars[name], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid '%s' path parameter %q: must be an integer", name, vars[name])
	}
	return v, nil
}

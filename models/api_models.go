// models/api_models.go
package models

// PaginatedResponse is the standard envelope for all paginated listings.
// Pages is ceil(Total/Size); Size is clamped to [1,100] at the handler
// boundary so the division is always safe.
type PaginatedResponse struct {
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Size  int         `json:"size"`
	Pages int         `json:"pages"`
	Data  interface{} `json:"data"`
}

// NewDataPage is the envelope for the per-table unseen listings.
type NewDataPage struct {
	TotalNew int         `json:"total_new"`
	Page     int         `json:"page"`
	Size     int         `json:"size"`
	Pages    int         `json:"pages"`
	Data     interface{} `json:"data"`
}

// TableNewCount is one entry in the global new-data summary. Tables with
// zero unseen records never appear.
type TableNewCount struct {
	Table    string `json:"table"`
	NewCount int    `json:"new_count"`
}

// NewDataSummary is the global unseen rollup across all tracked tables.
type NewDataSummary struct {
	TotalNewRecords int             `json:"total_new_records"`
	Tables          []TableNewCount `json:"tables"`
}

// MemberNewActivities holds per-member unseen counts by activity kind.
// TotalNew is always the sum of the Activities values.
type MemberNewActivities struct {
	MpCode     int            `json:"mp_code"`
	Activities map[string]int `json:"activities"`
	TotalNew   int            `json:"total_new"`
}

// MarkAllReadResult reports a bulk acknowledgment. RecordsMarked of 0 means
// there was nothing to acknowledge, which is not an error.
type MarkAllReadResult struct {
	Status        string `json:"status"`
	Table         string `json:"table"`
	RecordsMarked int64  `json:"records_marked"`
}

// MemberProfile is the member row plus activity counts.
type MemberProfile struct {
	Member     *Member        `json:"member"`
	Statistics map[string]int `json:"statistics"`
}

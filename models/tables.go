// models/tables.go
package models

// TrackedTable describes one table participating in the new-data protocol.
// The scraper names the member column inconsistently across tables (mp_code
// on the older tables, srno on the sansad.in ones), so the mapping lives
// here and nowhere else.
type TrackedTable struct {
	Name        string
	PrimaryKey  string // table-specific identifier column
	OwnerColumn string // member reference column: "mp_code" or "srno"
}

// TrackedTables is the fixed set of tables carrying is_new / scraped_at.
// Order matters only for the summary output, which follows this order.
var TrackedTables = []TrackedTable{
	{Name: "assurance", PrimaryKey: "id", OwnerColumn: "mp_code"},
	{Name: "gallery", PrimaryKey: "id", OwnerColumn: "mp_code"},
	{Name: "member_attendance", PrimaryKey: "id", OwnerColumn: "mp_code"},
	{Name: "member_bills", PrimaryKey: "id", OwnerColumn: "mp_code"},
	{Name: "member_committees", PrimaryKey: "id", OwnerColumn: "mp_code"},
	{Name: "member_dashboard", PrimaryKey: "srno", OwnerColumn: "srno"},
	{Name: "government_bills", PrimaryKey: "id", OwnerColumn: "srno"},
	{Name: "member_debates", PrimaryKey: "debateId", OwnerColumn: "srno"},
	{Name: "member_other_details", PrimaryKey: "srno", OwnerColumn: "srno"},
	{Name: "member_personal_details", PrimaryKey: "srno", OwnerColumn: "srno"},
	{Name: "member_questions", PrimaryKey: "questionId", OwnerColumn: "srno"},
	{Name: "member_special_mentions", PrimaryKey: "id", OwnerColumn: "srno"},
	{Name: "mp_tour", PrimaryKey: "id", OwnerColumn: "srno"},
}

// BulkAcknowledgeableTables is the allow-list for mark-all-read. It is a
// deliberate subset of TrackedTables and is NOT the same enumeration as the
// per-table /new listing endpoints; keep the two lists separate.
var BulkAcknowledgeableTables = []string{
	"member_questions",
	"member_debates",
	"member_special_mentions",
	"government_bills",
	"member_bills",
	"assurance",
	"gallery",
}

// MemberActivityKind ties an activity label in the per-member new-activity
// response to the table it is counted from.
type MemberActivityKind struct {
	Label string
	Table string
}

// MemberActivityKinds are the activity tables rolled up per member.
var MemberActivityKinds = []MemberActivityKind{
	{Label: "new_questions", Table: "member_questions"},
	{Label: "new_debates", Table: "member_debates"},
	{Label: "new_bills", Table: "member_bills"},
	{Label: "new_mentions", Table: "member_special_mentions"},
}

// TableByName looks a table up in TrackedTables.
func TableByName(name string) (TrackedTable, bool) {
	for _, t := range TrackedTables {
		if t.Name == name {
			return t, true
		}
	}
	return TrackedTable{}, false
}

// IsBulkAcknowledgeable reports whether mark-all-read accepts the table.
func IsBulkAcknowledgeable(name string) bool {
	for _, t := range BulkAcknowledgeableTables {
		if t == name {
			return true
		}
	}
	return false
}

// models/tables_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryBulkAcknowledgeableTableIsTracked(t *testing.T) {
	for _, name := range BulkAcknowledgeableTables {
		_, ok := TableByName(name)
		assert.True(t, ok, "bulk-acknowledgeable table %q missing from registry", name)
	}
}

func TestBulkAllowListDivergesFromTrackedSet(t *testing.T) {
	// The bulk allow-list is a deliberate subset; detail tables like
	// member_personal_details are tracked but never bulk-acknowledgeable.
	assert.Len(t, BulkAcknowledgeableTables, 7)
	assert.False(t, IsBulkAcknowledgeable("member_personal_details"))
	assert.False(t, IsBulkAcknowledgeable("member_other_details"))
	assert.False(t, IsBulkAcknowledgeable("member_dashboard"))
	assert.False(t, IsBulkAcknowledgeable("member_attendance"))
	assert.False(t, IsBulkAcknowledgeable("member_committees"))
	assert.False(t, IsBulkAcknowledgeable("mp_tour"))
	assert.True(t, IsBulkAcknowledgeable("member_questions"))
	assert.True(t, IsBulkAcknowledgeable("gallery"))
}

func TestOwnerColumnMapping(t *testing.T) {
	tests := []struct {
		table string
		owner string
	}{
		{"assurance", "mp_code"},
		{"gallery", "mp_code"},
		{"member_bills", "mp_code"},
		{"member_questions", "srno"},
		{"member_debates", "srno"},
		{"government_bills", "srno"},
		{"member_special_mentions", "srno"},
		{"mp_tour", "srno"},
	}
	for _, tt := range tests {
		table, ok := TableByName(tt.table)
		require.True(t, ok, tt.table)
		assert.Equal(t, tt.owner, table.OwnerColumn, tt.table)
	}
}

func TestPrimaryKeyMapping(t *testing.T) {
	q, ok := TableByName("member_questions")
	require.True(t, ok)
	assert.Equal(t, "questionId", q.PrimaryKey)

	d, ok := TableByName("member_debates")
	require.True(t, ok)
	assert.Equal(t, "debateId", d.PrimaryKey)
}

func TestTableByNameUnknown(t *testing.T) {
	_, ok := TableByName("not_a_real_table")
	assert.False(t, ok)
	assert.False(t, IsBulkAcknowledgeable("not_a_real_table"))
}

func TestMemberActivityKindsAreTracked(t *testing.T) {
	require.Len(t, MemberActivityKinds, 4)
	for _, kind := range MemberActivityKinds {
		_, ok := TableByName(kind.Table)
		assert.True(t, ok, "activity kind %q references untracked table %q", kind.Label, kind.Table)
	}
}

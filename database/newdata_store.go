// database/newdata_store.go
package database

import (
	"fmt"
	"log"

	"github.com/sansadwatch/loksabha-backend/models"
)

// Table names are interpolated into SQL here, so every function first
// resolves the name against the registry in models/tables.go. Anything not
// in the registry never reaches the database.

// CountUnseen returns the number of rows with is_new = TRUE in a tracked
// table.
func CountUnseen(tableName string) (int, error) {
	if DB == nil {
		return 0, fmt.Errorf("database connection is not initialized")
	}
	table, ok := models.TableByName(tableName)
	if !ok {
		return 0, fmt.Errorf("table %q is not tracked", tableName)
	}

	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM " + table.Name + " WHERE is_new = TRUE").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unseen rows in %s: %w", table.Name, err)
	}
	return count, nil
}

// CountUnseenForMember returns the number of unseen rows in a tracked table
// belonging to one member, matched on the table's configured owner column.
func CountUnseenForMember(tableName string, mpCode int64) (int, error) {
	if DB == nil {
		return 0, fmt.Errorf("database connection is not initialized")
	}
	table, ok := models.TableByName(tableName)
	if !ok {
		return 0, fmt.Errorf("table %q is not tracked", tableName)
	}

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ? AND is_new = TRUE", table.Name, table.OwnerColumn)
	err := DB.QueryRow(query, mpCode).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unseen rows in %s for member %d: %w", table.Name, mpCode, err)
	}
	return count, nil
}

// GetNewQuestions retrieves a page of unseen questions, most recently
// scraped first.
func GetNewQuestions(page, size int) ([]models.Question, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}
	total, err := CountUnseen("member_questions")
	if err != nil {
		return nil, 0, err
	}
	rows, err := DB.Query(
		"SELECT "+questionColumns+" FROM member_questions WHERE is_new = TRUE ORDER BY scraped_at DESC LIMIT ? OFFSET ?",
		size, (page-1)*size,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query new questions: %w", err)
	}
	defer rows.Close()
	items, err := scanQuestions(rows)
	return items, total, err
}

// GetNewDebates retrieves a page of unseen debates.
func GetNewDebates(page, size int) ([]models.Debate, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}
	total, err := CountUnseen("member_debates")
	if err != nil {
		return nil, 0, err
	}
	rows, err := DB.Query(
		"SELECT "+debateColumns+" FROM member_debates WHERE is_new = TRUE ORDER BY scraped_at DESC LIMIT ? OFFSET ?",
		size, (page-1)*size,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query new debates: %w", err)
	}
	defer rows.Close()
	items, err := scanDebates(rows)
	return items, total, err
}

// GetNewGovernmentBills retrieves a page of unseen government bills.
func GetNewGovernmentBills(page, size int) ([]models.GovernmentBill, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}
	total, err := CountUnseen("government_bills")
	if err != nil {
		return nil, 0, err
	}
	rows, err := DB.Query(
		"SELECT "+governmentBillColumns+" FROM government_bills WHERE is_new = TRUE ORDER BY scraped_at DESC LIMIT ? OFFSET ?",
		size, (page-1)*size,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query new government bills: %w", err)
	}
	defer rows.Close()
	items, err := scanGovernmentBills(rows)
	return items, total, err
}

// GetNewSpecialMentions retrieves a page of unseen special mentions.
func GetNewSpecialMentions(page, size int) ([]models.SpecialMention, int, error) {
	if DB == nil {
		return nil, 0, fmt.Errorf("database connection is not initialized")
	}
	total, err := CountUnseen("member_special_mentions")
	if err != nil {
		return nil, 0, err
	}
	rows, err := DB.Query(
		"SELECT "+specialMentionColumns+" FROM member_special_mentions WHERE is_new = TRUE ORDER BY scraped_at DESC LIMIT ? OFFSET ?",
		size, (page-1)*size,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query new special mentions: %w", err)
	}
	defer rows.Close()
	items, err := scanSpecialMentions(rows)
	return items, total, err
}

// MarkQuestionRead clears is_new on a single question and returns the number
// of rows affected. Zero means the questionId does not exist or was already
// read; the two cases are indistinguishable here.
func MarkQuestionRead(questionID int64) (int64, error) {
	if DB == nil {
		return 0, fmt.Errorf("database connection is not initialized")
	}
	result, err := DB.Exec("UPDATE member_questions SET is_new = FALSE WHERE questionId = ?", questionID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark question %d read: %w", questionID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows for question %d: %w", questionID, err)
	}
	return affected, nil
}

// MarkDebateRead clears is_new on a single debate and returns the number of
// rows affected.
func MarkDebateRead(debateID int64) (int64, error) {
	if DB == nil {
		return 0, fmt.Errorf("database connection is not initialized")
	}
	result, err := DB.Exec("UPDATE member_debates SET is_new = FALSE WHERE debateId = ?", debateID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark debate %d read: %w", debateID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows for debate %d: %w", debateID, err)
	}
	return affected, nil
}

// MarkAllRead clears is_new on every unseen row of a bulk-acknowledgeable
// table and returns how many rows were flipped. The single UPDATE is the
// only atomicity guarantee; concurrent scrapes may insert new unseen rows
// the moment it commits.
func MarkAllRead(tableName string) (int64, error) {
	if DB == nil {
		return 0, fmt.Errorf("database connection is not initialized")
	}
	if !models.IsBulkAcknowledgeable(tableName) {
		return 0, fmt.Errorf("table %q is not bulk-acknowledgeable", tableName)
	}

	result, err := DB.Exec("UPDATE " + tableName + " SET is_new = FALSE WHERE is_new = TRUE")
	if err != nil {
		return 0, fmt.Errorf("failed to mark all rows read in %s: %w", tableName, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows for %s: %w", tableName, err)
	}
	log.Printf("Database: Marked %d rows read in %s.\n", affected, tableName)
	return affected, nil
}

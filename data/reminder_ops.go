package data

import (
	"database/sql"
	"fmt"
	"time"

	"nlt_server_go/models"
)

// CreateReminder inserts a new reminder. The caller must have set ID,
// PracticeID and AgentID.
func CreateReminder(reminder *models.Reminder) error {
	now := time.Now().UTC()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now

	query := `INSERT INTO reminders (id, practice_id, agent_id, due_date, note, done, created_at, updated_at)
	          VALUES (:id, :practice_id, :agent_id, :due_date, :note, :done, :created_at, :updated_at)`
	if _, err := DB.NamedExec(query, reminder); err != nil {
		return fmt.Errorf("CreateReminder: failed to insert reminder: %w", err)
	}
	return nil
}

// GetReminderByID returns the reminder with the given id, or nil if not found.
func GetReminderByID(id string) (*models.Reminder, error) {
	reminder := &models.Reminder{}
	err := DB.Get(reminder, `SELECT * FROM reminders WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetReminderByID: failed to get reminder %s: %w", id, err)
	}
	return reminder, nil
}

// ListReminders returns reminders ordered by due date. An empty agentID
// returns all reminders (admin view). With openOnly resolved reminders are
// excluded. A non-zero dueBefore limits the result to reminders due before
// that instant (calendar views).
func ListReminders(agentID string, openOnly bool, dueBefore time.Time) ([]models.Reminder, error) {
	query := `SELECT * FROM reminders WHERE 1=1`
	var args []any
	if agentID != "" {
		query += ` AND agent_id = ?`
		args = append(args, agentID)
	}
	if openOnly {
		query += ` AND done = 0`
	}
	if !dueBefore.IsZero() {
		query += ` AND due_date < ?`
		args = append(args, dueBefore)
	}
	query += ` ORDER BY due_date`

	var reminders []models.Reminder
	if err := DB.Select(&reminders, query, args...); err != nil {
		return nil, fmt.Errorf("ListReminders: %w", err)
	}
	return reminders, nil
}

// ResolveReminder marks a reminder as done.
func ResolveReminder(id string) error {
	result, err := DB.Exec(`UPDATE reminders SET done = 1, updated_at = ? WHERE id = ?`, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("ResolveReminder: failed to resolve reminder %s: %w", id, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteReminder removes a reminder.
func DeleteReminder(id string) error {
	result, err := DB.Exec(`DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("DeleteReminder: failed to delete reminder %s: %w", id, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

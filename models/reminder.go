package models

import "time"

// Reminder is a follow-up attached to a practice.
type Reminder struct {
	ID         string    `json:"id" db:"id"`
	PracticeID string    `json:"practice_id" db:"practice_id"`
	AgentID    string    `json:"agent_id" db:"agent_id"`
	DueDate    time.Time `json:"due_date" db:"due_date"`
	Note       string    `json:"note" db:"note"`
	Done       bool      `json:"done" db:"done"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

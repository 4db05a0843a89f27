package controllers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nlt_server_go/data"
	"nlt_server_go/models"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ListRemindersHandler returns the reminders visible to the caller.
// Query parameters: open=true to exclude resolved reminders,
// due_before=RFC3339 for calendar views.
// GET /api/reminders
func ListRemindersHandler(w http.ResponseWriter, r *http.Request) {
	openOnly := r.URL.Query().Get("open") == "true"

	var dueBefore time.Time
	if raw := r.URL.Query().Get("due_before"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid due_before, expected RFC3339.")
			return
		}
		dueBefore = parsed
	}

	reminders, err := data.ListReminders(scopeAgentID(r), openOnly, dueBefore)
	if err != nil {
		log.Printf("reminders: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to list reminders.")
		return
	}
	respondJSON(w, http.StatusOK, reminders)
}

// CreateReminderHandler schedules a follow-up on one of the caller's
// practices.
// POST /api/reminders
func CreateReminderHandler(w http.ResponseWriter, r *http.Request) {
	var reminder models.Reminder
	if err := json.NewDecoder(r.Body).Decode(&reminder); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	if reminder.DueDate.IsZero() {
		respondError(w, http.StatusBadRequest, "Reminder due date is required.")
		return
	}

	practice, err := data.GetPracticeByID(reminder.PracticeID)
	if err != nil {
		log.Printf("reminders: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error while looking up practice.")
		return
	}
	if practice == nil {
		respondError(w, http.StatusBadRequest, "Unknown practice.")
		return
	}
	if !requestIsAdmin(r) && practice.AgentID != requestAgentID(r) {
		respondError(w, http.StatusForbidden, "Practice belongs to another agent.")
		return
	}

	reminder.ID = uuid.NewString()
	reminder.AgentID = practice.AgentID
	reminder.Done = false
	if err := data.CreateReminder(&reminder); err != nil {
		log.Printf("reminders: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create reminder.")
		return
	}
	respondJSON(w, http.StatusCreated, reminder)
}

// ResolveReminderHandler marks a reminder as done.
// POST /api/reminders/{id}/resolve
func ResolveReminderHandler(w http.ResponseWriter, r *http.Request) {
	reminder, ok := loadScopedReminder(w, r)
	if !ok {
		return
	}

	if err := data.ResolveReminder(reminder.ID); err != nil {
		log.Printf("reminders: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to resolve reminder.")
		return
	}
	reminder.Done = true
	respondJSON(w, http.StatusOK, reminder)
}

// DeleteReminderHandler removes a reminder.
// DELETE /api/reminders/{id}
func DeleteReminderHandler(w http.ResponseWriter, r *http.Request) {
	reminder, ok := loadScopedReminder(w, r)
	if !ok {
		return
	}

	if err := data.DeleteReminder(reminder.ID); err != nil {
		if err == sql.ErrNoRows {
			respondError(w, http.StatusNotFound, "Reminder not found.")
			return
		}
		log.Printf("reminders: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete reminder.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func loadScopedReminder(w http.ResponseWriter, r *http.Request) (*models.Reminder, bool) {
	reminder, err := data.GetReminderByID(mux.Vars(r)["id"])
	if err != nil {
		log.Printf("reminders: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error while looking up reminder.")
		return nil, false
	}
	if reminder == nil {
		respondError(w, http.StatusNotFound, "Reminder not found.")
		return nil, false
	}
	if !requestIsAdmin(r) && reminder.AgentID != requestAgentID(r) {
		respondError(w, http.StatusForbidden, "Reminder belongs to another agent.")
		return nil, false
	}
	return reminder, true
}

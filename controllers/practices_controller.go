package controllers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"nlt_server_go/data"
	"nlt_server_go/models"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ListPracticesHandler returns the practices visible to the caller,
// optionally filtered by phase.
// GET /api/practices?phase=negotiation
func ListPracticesHandler(w http.ResponseWriter, r *http.Request) {
	practices, err := data.ListPractices(scopeAgentID(r), r.URL.Query().Get("phase"))
	if err != nil {
		log.Printf("practices: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to list practices.")
		return
	}
	respondJSON(w, http.StatusOK, practices)
}

// CreatePracticeHandler opens a new practice in the negotiation phase for
// one of the caller's customers.
// POST /api/practices
func CreatePracticeHandler(w http.ResponseWriter, r *http.Request) {
	var practice models.Practice
	if err := json.NewDecoder(r.Body).Decode(&practice); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	customer, err := data.GetCustomerByID(practice.CustomerID)
	if err != nil {
		log.Printf("practices: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error while looking up customer.")
		return
	}
	if customer == nil {
		respondError(w, http.StatusBadRequest, "Unknown customer.")
		return
	}
	if !requestIsAdmin(r) && customer.AgentID != requestAgentID(r) {
		respondError(w, http.StatusForbidden, "Customer belongs to another agent.")
		return
	}

	practice.ID = uuid.NewString()
	practice.AgentID = customer.AgentID
	practice.Phase = models.PhaseNegotiation
	practice.NegotiationClosedAt = nil
	practice.CreditApprovedAt = nil
	practice.OrderedAt = nil

	if err := data.CreatePractice(&practice); err != nil {
		log.Printf("practices: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create practice.")
		return
	}
	respondJSON(w, http.StatusCreated, practice)
}

// GetPracticeHandler returns one practice if the caller may see it.
// GET /api/practices/{id}
func GetPracticeHandler(w http.ResponseWriter, r *http.Request) {
	practice, ok := loadScopedPractice(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, practice)
}

// UpdatePracticeHandler updates the deal fields of a practice.
// PUT /api/practices/{id}
func UpdatePracticeHandler(w http.ResponseWriter, r *http.Request) {
	practice, ok := loadScopedPractice(w, r)
	if !ok {
		return
	}

	var req models.Practice
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	practice.ProviderID = req.ProviderID
	practice.DealSource = req.DealSource
	practice.Vehicle = req.Vehicle
	practice.MonthlyFee = req.MonthlyFee
	practice.DurationMonths = req.DurationMonths
	practice.Deposit = req.Deposit
	practice.Revenue = req.Revenue

	if err := data.UpdatePractice(practice); err != nil {
		if err == sql.ErrNoRows {
			respondError(w, http.StatusNotFound, "Practice not found.")
			return
		}
		log.Printf("practices: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update practice.")
		return
	}
	respondJSON(w, http.StatusOK, practice)
}

// AdvancePracticeHandler moves a practice to its next phase.
// POST /api/practices/{id}/advance
func AdvancePracticeHandler(w http.ResponseWriter, r *http.Request) {
	practice, ok := loadScopedPractice(w, r)
	if !ok {
		return
	}

	updated, err := data.AdvancePracticePhase(practice.ID)
	if err != nil {
		if errors.Is(err, data.ErrPhaseCompleted) {
			respondError(w, http.StatusConflict, "Practice is already completed.")
			return
		}
		log.Printf("practices: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to advance practice phase.")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// ListDealSourcesHandler returns the distinct deal sources in use.
// GET /api/deal-sources (admin)
func ListDealSourcesHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := data.ListDealSources()
	if err != nil {
		log.Printf("practices: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to list deal sources.")
		return
	}
	respondJSON(w, http.StatusOK, sources)
}

func loadScopedPractice(w http.ResponseWriter, r *http.Request) (*models.Practice, bool) {
	practice, err := data.GetPracticeByID(mux.Vars(r)["id"])
	if err != nil {
		log.Printf("practices: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error while looking up practice.")
		return nil, false
	}
	if practice == nil {
		respondError(w, http.StatusNotFound, "Practice not found.")
		return nil, false
	}
	if !requestIsAdmin(r) && practice.AgentID != requestAgentID(r) {
		respondError(w, http.StatusForbidden, "Practice belongs to another agent.")
		return nil, false
	}
	return practice, true
}

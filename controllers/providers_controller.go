package controllers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"nlt_server_go/data"
	"nlt_server_go/models"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ListProvidersHandler returns providers. Non-admins only see active ones.
// GET /api/providers
func ListProvidersHandler(w http.ResponseWriter, r *http.Request) {
	providers, err := data.ListProviders(!requestIsAdmin(r))
	if err != nil {
		log.Printf("providers: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to list providers.")
		return
	}
	respondJSON(w, http.StatusOK, providers)
}

// CreateProviderHandler creates a provider.
// POST /api/providers (admin)
func CreateProviderHandler(w http.ResponseWriter, r *http.Request) {
	var provider models.Provider
	if err := json.NewDecoder(r.Body).Decode(&provider); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(provider.Name) == "" {
		respondError(w, http.StatusBadRequest, "Provider name must not be empty.")
		return
	}

	provider.ID = uuid.NewString()
	provider.IsActive = true
	if err := data.CreateProvider(&provider); err != nil {
		log.Printf("providers: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create provider.")
		return
	}
	respondJSON(w, http.StatusCreated, provider)
}

// UpdateProviderHandler updates a provider's fields and active flag.
// PUT /api/providers/{id} (admin)
func UpdateProviderHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, err := data.GetProviderByID(id)
	if err != nil {
		log.Printf("providers: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error while looking up provider.")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "Provider not found.")
		return
	}

	var provider models.Provider
	if err := json.NewDecoder(r.Body).Decode(&provider); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	provider.ID = id
	provider.CreatedAt = existing.CreatedAt
	if err := data.UpdateProvider(&provider); err != nil {
		if err == sql.ErrNoRows {
			respondError(w, http.StatusNotFound, "Provider not found.")
			return
		}
		log.Printf("providers: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update provider.")
		return
	}
	respondJSON(w, http.StatusOK, provider)
}

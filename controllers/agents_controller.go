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

// ListAgentsHandler returns all agents.
// GET /api/agents (admin)
func ListAgentsHandler(w http.ResponseWriter, r *http.Request) {
	agents, err := data.ListAgents()
	if err != nil {
		log.Printf("agents: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to list agents.")
		return
	}
	respondJSON(w, http.StatusOK, agents)
}

// CreateAgentHandler creates a new agent with a hashed PIN.
// POST /api/agents (admin)
func CreateAgentHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Code) == "" || strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Pin) == "" {
		respondError(w, http.StatusBadRequest, "Code, name and PIN must not be empty.")
		return
	}

	existing, err := data.GetAgentByCode(req.Code)
	if err != nil {
		log.Printf("agents: failed to check code %s: %v", req.Code, err)
		respondError(w, http.StatusInternalServerError, "Server error while checking agent code.")
		return
	}
	if existing != nil {
		respondError(w, http.StatusConflict, "An agent with this code already exists.")
		return
	}

	pinHash, err := data.HashPin(req.Pin)
	if err != nil {
		log.Printf("agents: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to hash PIN.")
		return
	}

	agent := &models.Agent{
		ID:       uuid.NewString(),
		Code:     req.Code,
		Name:     req.Name,
		PinHash:  pinHash,
		IsAdmin:  req.IsAdmin,
		IsActive: true,
	}
	if err := data.CreateAgent(agent); err != nil {
		log.Printf("agents: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create agent.")
		return
	}
	respondJSON(w, http.StatusCreated, agent)
}

// UpdateAgentHandler updates an agent's name, flags and optionally PIN.
// PUT /api/agents/{id} (admin)
func UpdateAgentHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	agent, err := data.GetAgentByID(id)
	if err != nil {
		log.Printf("agents: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error while looking up agent.")
		return
	}
	if agent == nil {
		respondError(w, http.StatusNotFound, "Agent not found.")
		return
	}

	if strings.TrimSpace(req.Name) != "" {
		agent.Name = req.Name
	}
	agent.IsAdmin = req.IsAdmin
	agent.IsActive = req.IsActive
	if req.Pin != nil && *req.Pin != "" {
		pinHash, err := data.HashPin(*req.Pin)
		if err != nil {
			log.Printf("agents: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to hash PIN.")
			return
		}
		agent.PinHash = pinHash
	}

	if err := data.UpdateAgent(agent); err != nil {
		if err == sql.ErrNoRows {
			respondError(w, http.StatusNotFound, "Agent not found.")
			return
		}
		log.Printf("agents: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update agent.")
		return
	}
	respondJSON(w, http.StatusOK, agent)
}

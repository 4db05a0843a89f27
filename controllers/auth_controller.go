package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"nlt_server_go/auth"
	"nlt_server_go/data"
	"nlt_server_go/models"
)

// LoginHandler authenticates an agent by code and PIN and returns a
// session token.
// POST /api/auth/login
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Code) == "" || strings.TrimSpace(req.Pin) == "" {
		respondError(w, http.StatusBadRequest, "Agent code and PIN must not be empty.")
		return
	}

	agent, err := data.GetAgentByCode(req.Code)
	if err != nil {
		log.Printf("login: failed to look up agent %s: %v", req.Code, err)
		respondError(w, http.StatusInternalServerError, "Server error while looking up agent.")
		return
	}

	if agent == nil || !agent.IsActive || !data.CheckPin(req.Pin, agent.PinHash) {
		respondError(w, http.StatusUnauthorized, "Invalid agent code or PIN.")
		return
	}

	tokenString, _, err := auth.GenerateToken(agent.ID, agent.Code, agent.IsAdmin)
	if err != nil {
		log.Printf("login: failed to generate token for agent %s: %v", agent.Code, err)
		respondError(w, http.StatusInternalServerError, "Could not generate access token.")
		return
	}

	respondJSON(w, http.StatusOK, models.AuthResponse{
		Token: tokenString,
		Agent: models.AgentPublicInfo{
			ID:      agent.ID,
			Code:    agent.Code,
			Name:    agent.Name,
			IsAdmin: agent.IsAdmin,
		},
	})
}

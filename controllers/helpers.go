package controllers

import (
	"encoding/json"
	"net/http"

	"nlt_server_go/middleware"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// requestAgentID returns the id of the authenticated agent.
func requestAgentID(r *http.Request) string {
	id, _ := r.Context().Value(middleware.AgentIDKey).(string)
	return id
}

// requestIsAdmin reports whether the authenticated agent is an administrator.
func requestIsAdmin(r *http.Request) bool {
	isAdmin, _ := r.Context().Value(middleware.IsAdminKey).(bool)
	return isAdmin
}

// scopeAgentID returns "" for admins (global view) and the agent's own id
// otherwise.
func scopeAgentID(r *http.Request) string {
	if requestIsAdmin(r) {
		return ""
	}
	return requestAgentID(r)
}

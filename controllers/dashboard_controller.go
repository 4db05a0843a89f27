package controllers

import (
	"log"
	"net/http"

	"nlt_server_go/data"
)

// GetDashboardHandler returns the aggregated landing page numbers, scoped
// to the calling agent unless they are an administrator.
// GET /api/dashboard
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	dashboard, err := data.GetDashboard(scopeAgentID(r))
	if err != nil {
		log.Printf("dashboard: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to build dashboard.")
		return
	}
	respondJSON(w, http.StatusOK, dashboard)
}

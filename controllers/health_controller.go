package controllers

import (
	"encoding/json"
	"net/http"
)

// HealthCheck reports that the server is up.
// GET /api/service/status
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "OK"})
}

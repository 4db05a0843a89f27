package models

// LoginRequest carries the agent code and PIN.
type LoginRequest struct {
	Code string `json:"code"`
	Pin  string `json:"pin"`
}

// AgentPublicInfo is the agent view returned to clients.
type AgentPublicInfo struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token string          `json:"token"`
	Agent AgentPublicInfo `json:"agent"`
}

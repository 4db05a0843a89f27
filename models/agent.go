package models

import "time"

// Agent is a portal user. Agents authenticate with their code and PIN;
// administrators additionally manage agents, providers and backups.
type Agent struct {
	ID        string    `json:"id" db:"id"`
	Code      string    `json:"code" db:"code"`
	Name      string    `json:"name" db:"name"`
	PinHash   string    `json:"-" db:"pin_hash"`
	IsAdmin   bool      `json:"is_admin" db:"is_admin"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateAgentRequest is the admin payload for creating an agent.
type CreateAgentRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Pin     string `json:"pin"`
	IsAdmin bool   `json:"is_admin"`
}

// UpdateAgentRequest updates name, admin and active flags and optionally
// resets the PIN.
type UpdateAgentRequest struct {
	Name     string  `json:"name"`
	Pin      *string `json:"pin,omitempty"`
	IsAdmin  bool    `json:"is_admin"`
	IsActive bool    `json:"is_active"`
}

package data

import (
	"database/sql"
	"fmt"
	"time"

	"nlt_server_go/models"

	"golang.org/x/crypto/bcrypt"
)

// HashPin hashes an agent PIN with bcrypt.
func HashPin(pin string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("HashPin: %w", err)
	}
	return string(bytes), nil
}

// CheckPin compares a plain PIN against its bcrypt hash.
func CheckPin(pin, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}

// CreateAgent inserts a new agent. The caller must have set ID and PinHash.
func CreateAgent(agent *models.Agent) error {
	now := time.Now().UTC()
	agent.CreatedAt = now
	agent.UpdatedAt = now

	query := `INSERT INTO agents (id, code, name, pin_hash, is_admin, is_active, created_at, updated_at)
	          VALUES (:id, :code, :name, :pin_hash, :is_admin, :is_active, :created_at, :updated_at)`
	if _, err := DB.NamedExec(query, agent); err != nil {
		return fmt.Errorf("CreateAgent: failed to insert agent %s: %w", agent.Code, err)
	}
	return nil
}

// GetAgentByID returns the agent with the given id, or nil if not found.
func GetAgentByID(id string) (*models.Agent, error) {
	agent := &models.Agent{}
	err := DB.Get(agent, `SELECT * FROM agents WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetAgentByID: failed to get agent %s: %w", id, err)
	}
	return agent, nil
}

// GetAgentByCode returns the agent with the given code, or nil if not found.
func GetAgentByCode(code string) (*models.Agent, error) {
	agent := &models.Agent{}
	err := DB.Get(agent, `SELECT * FROM agents WHERE code = ?`, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetAgentByCode: failed to get agent %s: %w", code, err)
	}
	return agent, nil
}

// ListAgents returns all agents ordered by code.
func ListAgents() ([]models.Agent, error) {
	var agents []models.Agent
	err := DB.Select(&agents, `SELECT * FROM agents ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("ListAgents: %w", err)
	}
	return agents, nil
}

// UpdateAgent updates name, flags and PIN hash of an existing agent.
func UpdateAgent(agent *models.Agent) error {
	agent.UpdatedAt = time.Now().UTC()
	query := `UPDATE agents SET
	            name = :name, pin_hash = :pin_hash, is_admin = :is_admin,
	            is_active = :is_active, updated_at = :updated_at
	          WHERE id = :id`
	result, err := DB.NamedExec(query, agent)
	if err != nil {
		return fmt.Errorf("UpdateAgent: failed to update agent %s: %w", agent.ID, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountAgents returns the number of agents, used for first-run bootstrap.
func CountAgents() (int, error) {
	var count int
	if err := DB.Get(&count, `SELECT COUNT(*) FROM agents`); err != nil {
		return 0, fmt.Errorf("CountAgents: %w", err)
	}
	return count, nil
}

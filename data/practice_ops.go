package data

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"nlt_server_go/models"
)

// ErrPhaseCompleted is returned when advancing a practice that already
// reached the final phase.
var ErrPhaseCompleted = errors.New("practice is already completed")

// CreatePractice inserts a new practice in the negotiation phase.
// The caller must have set ID, AgentID and CustomerID.
func CreatePractice(practice *models.Practice) error {
	now := time.Now().UTC()
	practice.CreatedAt = now
	practice.UpdatedAt = now
	if practice.Phase == "" {
		practice.Phase = models.PhaseNegotiation
	}

	query := `INSERT INTO practices (id, agent_id, customer_id, provider_id, deal_source,
	            vehicle, monthly_fee, duration_months, deposit, revenue, phase,
	            negotiation_closed_at, credit_approved_at, ordered_at, created_at, updated_at)
	          VALUES (:id, :agent_id, :customer_id, :provider_id, :deal_source,
	            :vehicle, :monthly_fee, :duration_months, :deposit, :revenue, :phase,
	            :negotiation_closed_at, :credit_approved_at, :ordered_at, :created_at, :updated_at)`
	if _, err := DB.NamedExec(query, practice); err != nil {
		return fmt.Errorf("CreatePractice: failed to insert practice: %w", err)
	}
	return nil
}

// GetPracticeByID returns the practice with the given id, or nil if not found.
func GetPracticeByID(id string) (*models.Practice, error) {
	practice := &models.Practice{}
	err := DB.Get(practice, `SELECT * FROM practices WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetPracticeByID: failed to get practice %s: %w", id, err)
	}
	return practice, nil
}

// ListPractices returns practices newest-first. An empty agentID returns all
// practices (admin view); a non-empty phase filters by phase.
func ListPractices(agentID, phase string) ([]models.Practice, error) {
	query := `SELECT * FROM practices WHERE 1=1`
	var args []any
	if agentID != "" {
		query += ` AND agent_id = ?`
		args = append(args, agentID)
	}
	if phase != "" {
		query += ` AND phase = ?`
		args = append(args, phase)
	}
	query += ` ORDER BY updated_at DESC`

	var practices []models.Practice
	if err := DB.Select(&practices, query, args...); err != nil {
		return nil, fmt.Errorf("ListPractices: %w", err)
	}
	return practices, nil
}

// UpdatePractice updates the deal fields of an existing practice. Phase and
// phase timestamps are only changed through AdvancePracticePhase.
func UpdatePractice(practice *models.Practice) error {
	practice.UpdatedAt = time.Now().UTC()
	query := `UPDATE practices SET
	            provider_id = :provider_id, deal_source = :deal_source, vehicle = :vehicle,
	            monthly_fee = :monthly_fee, duration_months = :duration_months,
	            deposit = :deposit, revenue = :revenue, updated_at = :updated_at
	          WHERE id = :id`
	result, err := DB.NamedExec(query, practice)
	if err != nil {
		return fmt.Errorf("UpdatePractice: failed to update practice %s: %w", practice.ID, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AdvancePracticePhase moves a practice to its next phase and stamps the
// completion time of the phase it leaves. Returns the updated practice.
func AdvancePracticePhase(id string) (*models.Practice, error) {
	practice, err := GetPracticeByID(id)
	if err != nil {
		return nil, err
	}
	if practice == nil {
		return nil, sql.ErrNoRows
	}

	next := models.NextPhase(practice.Phase)
	if next == "" {
		return nil, ErrPhaseCompleted
	}

	now := time.Now().UTC()
	switch practice.Phase {
	case models.PhaseNegotiation:
		practice.NegotiationClosedAt = &now
	case models.PhaseCredit:
		practice.CreditApprovedAt = &now
	case models.PhaseOrder:
		practice.OrderedAt = &now
	}
	practice.Phase = next
	practice.UpdatedAt = now

	query := `UPDATE practices SET
	            phase = :phase, negotiation_closed_at = :negotiation_closed_at,
	            credit_approved_at = :credit_approved_at, ordered_at = :ordered_at,
	            updated_at = :updated_at
	          WHERE id = :id`
	if _, err := DB.NamedExec(query, practice); err != nil {
		return nil, fmt.Errorf("AdvancePracticePhase: failed to update practice %s: %w", id, err)
	}
	return practice, nil
}

// ListDealSources returns the distinct deal source values in use, for the
// admin reference data screen.
func ListDealSources() ([]string, error) {
	var sources []string
	err := DB.Select(&sources, `SELECT DISTINCT deal_source FROM practices WHERE deal_source != '' ORDER BY deal_source`)
	if err != nil {
		return nil, fmt.Errorf("ListDealSources: %w", err)
	}
	return sources, nil
}

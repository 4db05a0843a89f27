package models

import "time"

// Practice phases. A practice advances strictly in this order; there is no
// way back to an earlier phase.
const (
	PhaseNegotiation = "negotiation"
	PhaseCredit      = "credit"
	PhaseOrder       = "order"
	PhaseCompleted   = "completed"
)

// PhaseOrdering lists the phases in their sequential order.
var PhaseOrdering = []string{PhaseNegotiation, PhaseCredit, PhaseOrder, PhaseCompleted}

// NextPhase returns the phase following the given one, or "" if the
// practice is already completed or the phase is unknown.
func NextPhase(phase string) string {
	for i, p := range PhaseOrdering {
		if p == phase && i+1 < len(PhaseOrdering) {
			return PhaseOrdering[i+1]
		}
	}
	return ""
}

// Practice is one customer deal tracked from negotiation to order.
type Practice struct {
	ID         string  `json:"id" db:"id"`
	AgentID    string  `json:"agent_id" db:"agent_id"`
	CustomerID string  `json:"customer_id" db:"customer_id"`
	ProviderID *string `json:"provider_id,omitempty" db:"provider_id"`
	DealSource string  `json:"deal_source" db:"deal_source"`

	Vehicle        string  `json:"vehicle" db:"vehicle"`
	MonthlyFee     float64 `json:"monthly_fee" db:"monthly_fee"`
	DurationMonths int     `json:"duration_months" db:"duration_months"`
	Deposit        float64 `json:"deposit" db:"deposit"`
	Revenue        float64 `json:"revenue" db:"revenue"`

	Phase               string     `json:"phase" db:"phase"`
	NegotiationClosedAt *time.Time `json:"negotiation_closed_at,omitempty" db:"negotiation_closed_at"`
	CreditApprovedAt    *time.Time `json:"credit_approved_at,omitempty" db:"credit_approved_at"`
	OrderedAt           *time.Time `json:"ordered_at,omitempty" db:"ordered_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

package data

import (
	"fmt"
	"time"

	"nlt_server_go/models"
)

// GetDashboard aggregates the portal landing page numbers. An empty agentID
// produces the global (admin) view.
func GetDashboard(agentID string) (*models.Dashboard, error) {
	dashboard := &models.Dashboard{
		PracticesByPhase: map[string]int{},
	}

	scope := ""
	var args []any
	if agentID != "" {
		scope = ` WHERE agent_id = ?`
		args = append(args, agentID)
	}

	type phaseCount struct {
		Phase string `db:"phase"`
		Count int    `db:"count"`
	}
	var counts []phaseCount
	err := DB.Select(&counts, `SELECT phase, COUNT(*) AS count FROM practices`+scope+` GROUP BY phase`, args...)
	if err != nil {
		return nil, fmt.Errorf("GetDashboard: failed to count practices: %w", err)
	}
	for _, c := range counts {
		dashboard.PracticesByPhase[c.Phase] = c.Count
	}

	err = DB.Get(&dashboard.OpenReminders, `SELECT COUNT(*) FROM reminders`+whereOpen(scope), args...)
	if err != nil {
		return nil, fmt.Errorf("GetDashboard: failed to count open reminders: %w", err)
	}

	overdueArgs := append(append([]any{}, args...), time.Now().UTC())
	err = DB.Get(&dashboard.OverdueReminders, `SELECT COUNT(*) FROM reminders`+whereOpen(scope)+` AND due_date < ?`, overdueArgs...)
	if err != nil {
		return nil, fmt.Errorf("GetDashboard: failed to count overdue reminders: %w", err)
	}

	// Revenue of completed practices grouped by order month, last 12 months.
	revenueQuery := `SELECT strftime('%Y-%m', ordered_at) AS month, SUM(revenue) AS revenue
	                 FROM practices
	                 WHERE ordered_at IS NOT NULL AND ordered_at >= ?`
	revenueArgs := []any{time.Now().UTC().AddDate(-1, 0, 0)}
	if agentID != "" {
		revenueQuery += ` AND agent_id = ?`
		revenueArgs = append(revenueArgs, agentID)
	}
	revenueQuery += ` GROUP BY month ORDER BY month`
	err = DB.Select(&dashboard.MonthlyRevenue, revenueQuery, revenueArgs...)
	if err != nil {
		return nil, fmt.Errorf("GetDashboard: failed to sum monthly revenue: %w", err)
	}

	return dashboard, nil
}

func whereOpen(scope string) string {
	if scope == "" {
		return ` WHERE done = 0`
	}
	return scope + ` AND done = 0`
}

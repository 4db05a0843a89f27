package models

// MonthlyRevenue is one month's summed revenue of completed practices.
type MonthlyRevenue struct {
	Month   string  `json:"month" db:"month"` // YYYY-MM
	Revenue float64 `json:"revenue" db:"revenue"`
}

// Dashboard aggregates the portal landing page numbers. For non-admin
// agents all values are scoped to their own practices and reminders.
type Dashboard struct {
	PracticesByPhase map[string]int   `json:"practices_by_phase"`
	OpenReminders    int              `json:"open_reminders"`
	OverdueReminders int              `json:"overdue_reminders"`
	MonthlyRevenue   []MonthlyRevenue `json:"monthly_revenue"`
}

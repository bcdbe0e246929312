package models

// DashboardSummary holds the derived metrics shown on the staff home page.
// Everything is computed at request time from the current appointment set.
type DashboardSummary struct {
	TotalCount    int           `json:"total_agendamentos"`
	FutureCount   int           `json:"agendamentos_futuros"`
	WeeklyAverage float64       `json:"media_semanal"`
	MonthCount    int           `json:"agendamentos_mes"`
	Upcoming      []Appointment `json:"proximos_agendamentos"` // at most 3, soonest first
}

package services

import (
	"time"

	"agenda_backend/internal/models"
	"agenda_backend/internal/repositories"
)

// DashboardService computes the metrics shown on the staff home page.
type DashboardService interface {
	GetSummary(now time.Time) (*models.DashboardSummary, error)
}

type dashboardService struct {
	appointmentRepo repositories.AppointmentRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo repositories.AppointmentRepository) DashboardService {
	return &dashboardService{appointmentRepo: repo}
}

// isFuture reports whether the appointment is strictly after the reference
// moment; a slot at exactly the current minute is already past. Dates and
// times are compared as their canonical strings, which order the same way
// the values do.
func isFuture(appointment models.Appointment, nowDate, nowTime string) bool {
	apptDate := appointment.Date.Format(DateLayout)
	if apptDate != nowDate {
		return apptDate > nowDate
	}
	return appointment.Time > nowTime
}

// GetSummary derives all dashboard metrics from a single snapshot of the
// appointment set, ordered by (date, time).
func (s *dashboardService) GetSummary(now time.Time) (*models.DashboardSummary, error) {
	appointments, err := s.appointmentRepo.GetAppointments(models.AppointmentFilters{OrderByDateTime: true})
	if err != nil {
		return nil, err
	}

	nowDate := now.Format(DateLayout)
	nowTime := now.Format(TimeLayout)

	// Monday is the first day of the week.
	weekStart := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
	weekStartDate := weekStart.Format(DateLayout)
	weekEndDate := weekStart.AddDate(0, 0, 6).Format(DateLayout)

	summary := &models.DashboardSummary{
		TotalCount: len(appointments),
		Upcoming:   []models.Appointment{},
	}

	weekCount := 0
	for _, appointment := range appointments {
		apptDate := appointment.Date.Format(DateLayout)

		if isFuture(appointment, nowDate, nowTime) {
			summary.FutureCount++
			if len(summary.Upcoming) < 3 {
				summary.Upcoming = append(summary.Upcoming, appointment)
			}
		}
		if apptDate >= weekStartDate && apptDate <= weekEndDate {
			weekCount++
		}
		// Month metric matches the month of year only, any year counts.
		if appointment.Date.Month() == now.Month() {
			summary.MonthCount++
		}
	}
	summary.WeeklyAverage = float64(weekCount) / 7.0

	return summary, nil
}

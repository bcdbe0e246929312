package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"agenda_backend/internal/models"
	"agenda_backend/internal/repositories"
)

// ReportService produces downloadable exports of the appointment book.
type ReportService interface {
	ExportAppointmentsCSV() ([]byte, error)
}

type reportService struct {
	appointmentRepo repositories.AppointmentRepository
}

// NewReportService creates a new ReportService.
func NewReportService(repo repositories.AppointmentRepository) ReportService {
	return &reportService{appointmentRepo: repo}
}

// ExportAppointmentsCSV renders every appointment as CSV, in insertion order,
// with dates formatted DD/MM/YYYY.
func (s *reportService) ExportAppointmentsCSV() ([]byte, error) {
	appointments, err := s.appointmentRepo.GetAppointments(models.AppointmentFilters{})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Cliente", "Data", "Horario", "Mensagem"}); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}

	for _, appointment := range appointments {
		message := ""
		if appointment.Message != nil {
			message = *appointment.Message
		}
		record := []string{
			appointment.ClientName,
			appointment.Date.Format("02/01/2006"),
			appointment.Time,
			message,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"agenda_backend/internal/models"
	"agenda_backend/internal/repositories"
	"agenda_backend/pkg/utils"
)

// Wire formats for the date and time fields of the booking form.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Service-specific errors
var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDateRequired        = errors.New("date is required")
	ErrInvalidDate         = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidTime         = errors.New("invalid time format, expected HH:MM")
)

// CreateAppointmentRequest carries the public booking form fields.
type CreateAppointmentRequest struct {
	Name    string `form:"nome" json:"nome" binding:"required"`
	Phone   string `form:"telefone" json:"telefone" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required"`
	Date    string `form:"data" json:"data" binding:"required"`
	Time    string `form:"horario" json:"horario" binding:"required"`
	Message string `form:"mensagem" json:"mensagem"`
}

// AppointmentService defines the interface for appointment business logic.
type AppointmentService interface {
	CreateAppointment(req CreateAppointmentRequest) (*models.Appointment, error)
	GetAppointments(dateFilter string) ([]models.Appointment, error)
	DeleteAppointment(id int64) error
	GetUnavailableTimes(date string) ([]string, error)
}

type appointmentService struct {
	appointmentRepo repositories.AppointmentRepository
	db              repositories.SQLExecutor
}

// NewAppointmentService creates a new AppointmentService.
func NewAppointmentService(repo repositories.AppointmentRepository, db repositories.SQLExecutor) AppointmentService {
	return &appointmentService{appointmentRepo: repo, db: db}
}

// parseDate validates and parses a YYYY-MM-DD form value.
func parseDate(value string) (time.Time, error) {
	if utils.IsEmpty(value) {
		return time.Time{}, ErrDateRequired
	}
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return date, nil
}

// CreateAppointment validates the form fields and records a new booking.
// No double-booking check happens here: two clients may hold the same slot.
func (s *appointmentService) CreateAppointment(req CreateAppointmentRequest) (*models.Appointment, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse(TimeLayout, req.Time); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.Time)
	}

	appointment := &models.Appointment{
		ClientName: req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Date:       date,
		Time:       req.Time,
		Message:    utils.NewNullString(req.Message),
	}

	return s.appointmentRepo.CreateAppointment(s.db, appointment)
}

// GetAppointments lists appointments in insertion order. The only supported
// filter is "hoje", which restricts the list to the current calendar date.
func (s *appointmentService) GetAppointments(dateFilter string) ([]models.Appointment, error) {
	filters := models.AppointmentFilters{}
	if dateFilter == "hoje" {
		today, _ := time.Parse(DateLayout, time.Now().Format(DateLayout))
		filters.Date = &today
	}
	return s.appointmentRepo.GetAppointments(filters)
}

func (s *appointmentService) DeleteAppointment(id int64) error {
	err := s.appointmentRepo.DeleteAppointment(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}
	return nil
}

// GetUnavailableTimes returns the distinct booked times for a date, sorted
// ascending. The client form greys these slots out; booking one anyway is
// still accepted.
func (s *appointmentService) GetUnavailableTimes(date string) ([]string, error) {
	parsedDate, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	booked, err := s.appointmentRepo.GetBookedTimes(parsedDate)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(booked))
	unavailable := []string{}
	for _, t := range booked {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		unavailable = append(unavailable, t)
	}
	sort.Strings(unavailable)
	return unavailable, nil
}

package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"agenda_backend/internal/models"
)

// AppointmentRepository defines the interface for appointment-related database
// operations.
type AppointmentRepository interface {
	CreateAppointment(executor SQLExecutor, appointment *models.Appointment) (*models.Appointment, error)
	GetAppointments(filters models.AppointmentFilters) ([]models.Appointment, error)
	DeleteAppointment(executor SQLExecutor, id int64) error
	GetBookedTimes(date time.Time) ([]string, error)
}

type appointmentRepository struct {
	db *sql.DB
}

// NewAppointmentRepository creates a new instance of AppointmentRepository.
func NewAppointmentRepository(db *sql.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

const selectAppointmentFields = `
	id, client_name, phone, email, date, time, message, created_at, updated_at
`

// scanAppointmentRow scans one appointment row.
func scanAppointmentRow(row scanner) (*models.Appointment, error) {
	var appointment models.Appointment
	var message sql.NullString

	err := row.Scan(
		&appointment.ID, &appointment.ClientName, &appointment.Phone, &appointment.Email,
		&appointment.Date, &appointment.Time, &message,
		&appointment.CreatedAt, &appointment.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanning appointment: %v", ErrDatabaseError, err)
	}

	if message.Valid {
		appointment.Message = &message.String
	}
	return &appointment, nil
}

func (r *appointmentRepository) CreateAppointment(executor SQLExecutor, appointment *models.Appointment) (*models.Appointment, error) {
	query := `INSERT INTO appointments
	            (client_name, phone, email, date, time, message, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id, created_at, updated_at`

	currentTime := time.Now()
	appointment.CreatedAt = currentTime
	appointment.UpdatedAt = currentTime

	err := executor.QueryRow(query,
		appointment.ClientName, appointment.Phone, appointment.Email,
		appointment.Date, appointment.Time, appointment.Message,
		appointment.CreatedAt, appointment.UpdatedAt,
	).Scan(&appointment.ID, &appointment.CreatedAt, &appointment.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: creating appointment: %v", ErrDatabaseError, err)
	}
	return appointment, nil
}

func (r *appointmentRepository) GetAppointments(filters models.AppointmentFilters) ([]models.Appointment, error) {
	appointments := []models.Appointment{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT " + selectAppointmentFields + " FROM appointments")

	var args []interface{}
	if filters.Date != nil {
		queryBuilder.WriteString(" WHERE date = $1")
		args = append(args, *filters.Date)
	}

	// Insertion order is the default; the dashboard asks for (date, time).
	if filters.OrderByDateTime {
		queryBuilder.WriteString(" ORDER BY date, time")
	} else {
		queryBuilder.WriteString(" ORDER BY id")
	}

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying appointments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		appointment, scanErr := scanAppointmentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		appointments = append(appointments, *appointment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating appointment rows: %v", ErrDatabaseError, err)
	}
	return appointments, nil
}

func (r *appointmentRepository) DeleteAppointment(executor SQLExecutor, id int64) error {
	query := `DELETE FROM appointments WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting appointment ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetBookedTimes returns every time value already booked on the given date.
// Duplicates are kept: two bookings at "09:00" yield "09:00" twice, the
// caller decides whether to dedupe.
func (r *appointmentRepository) GetBookedTimes(date time.Time) ([]string, error) {
	query := `SELECT time FROM appointments WHERE date = $1 ORDER BY time`
	rows, err := r.db.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("%w: querying booked times: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	times := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: scanning booked time: %v", ErrDatabaseError, err)
		}
		times = append(times, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating booked time rows: %v", ErrDatabaseError, err)
	}
	return times, nil
}

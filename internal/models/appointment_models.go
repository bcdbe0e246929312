package models

import "time"

// Appointment represents a single slot booked through the public form.
// Appointments are independent records: no foreign keys, never updated in
// place. Duplicate (date, time) pairs are permitted.
type Appointment struct {
	ID         int64     `json:"id"`
	ClientName string    `json:"client_name" db:"client_name"`
	Phone      string    `json:"phone" db:"phone"`
	Email      string    `json:"email" db:"email"`
	Date       time.Time `json:"date" db:"date"`                 // calendar date, time-of-day is always midnight
	Time       string    `json:"time" db:"time"`                 // fixed "HH:MM"
	Message    *string   `json:"message,omitempty" db:"message"` // optional free text
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// AppointmentFilters narrows appointment listings.
type AppointmentFilters struct {
	Date            *time.Time // exact calendar-date match (the "hoje" filter)
	OrderByDateTime bool       // (date, time) ascending instead of insertion order
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment.
// Only scheduled appointments occupy calendar time.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "S"
	AppointmentStatusCompleted AppointmentStatus = "C"
	AppointmentStatusCancelled AppointmentStatus = "X"
)

// CancellationNotice is the minimum advance notice a non-admin needs
// to cancel a scheduled appointment.
const CancellationNotice = 24 * time.Hour

// Appointment represents a booked consultation. Records are never
// deleted; cancellation is a status transition. The composite unique
// index on (doctor_id, start_time) is the storage-level backstop
// against two bookings landing on the same instant.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index;uniqueIndex:idx_appointments_doctor_start" json:"doctor_id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	StartTime       time.Time         `gorm:"not null;index;uniqueIndex:idx_appointments_doctor_start" json:"start_time"`
	DurationMinutes int               `gorm:"not null;default:30" json:"duration_minutes"`
	Status          AppointmentStatus `gorm:"type:char(1);not null;default:'S';index" json:"status"`
	Reason          string            `gorm:"type:text" json:"reason,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// EndTime returns the exclusive end of the occupied interval
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// IsScheduled checks if the appointment still occupies its slot
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCancelled checks if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if the appointment was completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// CanCancel reports whether a non-privileged actor may still cancel:
// the appointment must be scheduled and more than 24 hours away.
func (a *Appointment) CanCancel(now time.Time) bool {
	if !a.IsScheduled() {
		return false
	}
	return a.StartTime.Sub(now) > CancellationNotice
}

// IsUpcoming checks if the appointment is scheduled and in the future
func (a *Appointment) IsUpcoming(now time.Time) bool {
	return a.IsScheduled() && a.StartTime.After(now)
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// AvailabilityRequest lists a doctor's bookable slots starting from
// Date, scanning DaysToScan consecutive days.
type AvailabilityRequest struct {
	Date            string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	DurationMinutes int    `json:"duration_minutes" validate:"required,gte=5,lte=240"`
	DaysToScan      int    `json:"days_to_scan" validate:"required,gte=1,lte=30"`
}

type BookAppointmentRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
	// PatientID is ignored for patient actors (always themselves) and
	// required for admin/receptionist bookings.
	PatientID       *uuid.UUID `json:"patient_id" validate:"omitempty"`
	StartTime       string     `json:"start_time" validate:"required"` // RFC3339
	DurationMinutes int        `json:"duration_minutes" validate:"required,gte=5,lte=240"`
	Reason          string     `json:"reason" validate:"omitempty"`
}

type AppointmentFilterRequest struct {
	StartAt    string `json:"start_at" validate:"omitempty,datetime=2006-01-02"`
	EndAt      string `json:"end_at" validate:"omitempty,datetime=2006-01-02"`
	Status     string `json:"status" validate:"omitempty,oneof=S C X"`
	DoctorName string `json:"doctor_name" validate:"omitempty"`
}

// Response DTOs

// SlotResponse timestamps are RFC3339 in UTC.
type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityResponse struct {
	DoctorID        uuid.UUID      `json:"doctor_id"`
	DurationMinutes int            `json:"duration_minutes"`
	Slots           []SlotResponse `json:"slots"`
	Total           int            `json:"total"`
}

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	PatientID       uuid.UUID `json:"patient_id"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	PatientName     string    `json:"patient_name,omitempty"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CanCancel       bool      `json:"can_cancel"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

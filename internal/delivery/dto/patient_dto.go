package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdatePatientRequest struct {
	ContactInfo      *string `json:"contact_info" validate:"omitempty,max=100"`
	MedicalHistory   *string `json:"medical_history" validate:"omitempty"`
	AssignedDoctorID *string `json:"assigned_doctor_id" validate:"omitempty,uuid"`
}

// Response DTOs

type PatientResponse struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email,omitempty"`
	FullName         string     `json:"full_name,omitempty"`
	DateOfBirth      string     `json:"date_of_birth"`
	Gender           string     `json:"gender"`
	ContactInfo      string     `json:"contact_info,omitempty"`
	MedicalHistory   string     `json:"medical_history,omitempty"`
	AssignedDoctorID *uuid.UUID `json:"assigned_doctor_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

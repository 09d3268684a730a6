package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMedicalRecordRequest struct {
	PatientID     uuid.UUID `json:"patient_id" validate:"required"`
	VisitDate     string    `json:"visit_date" validate:"required,datetime=2006-01-02"`
	VisitNotes    string    `json:"visit_notes" validate:"omitempty"`
	Diagnosis     string    `json:"diagnosis" validate:"required"`
	Prescriptions string    `json:"prescriptions" validate:"omitempty"`
	LabResults    string    `json:"lab_results" validate:"omitempty"`
}

type UpdateMedicalRecordRequest struct {
	VisitNotes    *string `json:"visit_notes" validate:"omitempty"`
	Diagnosis     *string `json:"diagnosis" validate:"omitempty,min=1"`
	Prescriptions *string `json:"prescriptions" validate:"omitempty"`
	LabResults    *string `json:"lab_results" validate:"omitempty"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID            int64     `json:"id"`
	PatientID     uuid.UUID `json:"patient_id"`
	DoctorID      uuid.UUID `json:"doctor_id"`
	DoctorName    string    `json:"doctor_name,omitempty"`
	VisitDate     string    `json:"visit_date"`
	VisitNotes    string    `json:"visit_notes,omitempty"`
	Diagnosis     string    `json:"diagnosis"`
	Prescriptions string    `json:"prescriptions,omitempty"`
	LabResults    string    `json:"lab_results,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}

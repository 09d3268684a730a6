package dto

import (
	"time"

	"go-hospital-management/internal/scheduling"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type UpdateDoctorRequest struct {
	Specialization  string  `json:"specialization" validate:"omitempty,min=2"`
	DepartmentID    *int    `json:"department_id" validate:"omitempty,min=1"`
	ContactInfo     *string `json:"contact_info" validate:"omitempty,max=100"`
	ConsultationFee *string `json:"consultation_fee" validate:"omitempty"`
	Biography       *string `json:"biography" validate:"omitempty"`
}

// UpdateWorkingScheduleRequest replaces a doctor's weekly availability
// template. Entries are validated strictly before persisting.
type UpdateWorkingScheduleRequest struct {
	WorkingSchedule scheduling.WeeklySchedule `json:"working_schedule" validate:"required"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID                 `json:"id"`
	Email           string                    `json:"email,omitempty"`
	FullName        string                    `json:"full_name,omitempty"`
	Specialization  string                    `json:"specialization"`
	DepartmentID    int                       `json:"department_id"`
	DepartmentName  string                    `json:"department_name,omitempty"`
	ContactInfo     string                    `json:"contact_info,omitempty"`
	ConsultationFee decimal.Decimal           `json:"consultation_fee"`
	WorkingSchedule scheduling.WeeklySchedule `json:"working_schedule,omitempty"`
	Biography       string                    `json:"biography,omitempty"`
	IsActive        bool                      `json:"is_active"`
	CreatedAt       time.Time                 `json:"created_at,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
